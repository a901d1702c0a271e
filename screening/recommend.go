package screening

// moduleThresholds are the per-module scores below which a module-specific
// advisory fires.
var moduleThresholds = map[ModuleType]int{
	ModuleAcuity:      70,
	ModuleContrast:    70,
	ModuleColor:       70,
	ModuleNightVision: 65,
	ModulePeripheral:  65,
	ModuleAstigmatism: 65,
	ModuleFocus:       60,
	ModuleTracking:    60,
	ModuleDepth:       60,
	ModuleEyeStrain:   60,
}

var moduleAdvisories = map[ModuleType]Recommendation{
	ModuleAcuity:      {Title: "Reduced Visual Acuity", Message: "Possible need for corrective lenses or an updated prescription.", Priority: PriorityHigh},
	ModuleContrast:    {Title: "Low Contrast Sensitivity", Message: "Difficulty with contrast can affect night vision and may indicate retinal changes or early cataract.", Priority: PriorityMedium},
	ModuleColor:       {Title: "Possible Color Vision Deficiency", Message: "Difficulty perceiving certain colors. Usually harmless but worth confirming with a professional.", Priority: PriorityLow},
	ModuleNightVision: {Title: "Reduced Night Vision", Message: "Take extra care when driving at night and consider a low-light vision assessment.", Priority: PriorityMedium},
	ModulePeripheral:  {Title: "Reduced Peripheral Awareness", Message: "Difficulty detecting objects at the edge of your field of view warrants a visual field examination.", Priority: PriorityMedium},
	ModuleAstigmatism: {Title: "Possible Astigmatism", Message: "Uneven sharpness across line orientations can usually be corrected with lenses.", Priority: PriorityMedium},
	ModuleFocus:       {Title: "Focus Flexibility Below Average", Message: "Slow refocusing between near and far may indicate accommodative strain.", Priority: PriorityLow},
	ModuleTracking:    {Title: "Eye Tracking Difficulties", Message: "Trouble following moving targets can affect reading and driving comfort.", Priority: PriorityLow},
	ModuleDepth:       {Title: "Reduced Depth Perception", Message: "Difficulty judging distances may indicate a binocular vision imbalance.", Priority: PriorityLow},
	ModuleEyeStrain:   {Title: "Frequent Eye Strain Symptoms", Message: "Reported strain suggests reviewing screen habits and taking regular breaks.", Priority: PriorityLow},
}

// Recommendations derives the advisory list for a completed session. Rules
// are evaluated in fixed order and every matching rule fires; the normal-range
// entry is appended only when nothing else did. Pure function: identical
// inputs always yield identical output.
func Recommendations(result SessionResult, profile Profile) []Recommendation {
	var recs []Recommendation
	overall := result.OverallScore

	if overall < 60 {
		recs = append(recs, Recommendation{
			Title:    "Professional Evaluation Recommended",
			Message:  "Your results suggest possible vision problems. We recommend a consultation with an ophthalmologist.",
			Priority: PriorityHigh,
		})
	} else if overall < 80 {
		recs = append(recs, Recommendation{
			Title:    "Preventive Evaluation Suggested",
			Message:  "Some results may indicate visual changes. Consider a preventive eye examination.",
			Priority: PriorityMedium,
		})
	}

	for _, mr := range result.Results {
		threshold, ok := moduleThresholds[mr.Module]
		if ok && mr.Score < threshold {
			recs = append(recs, moduleAdvisories[mr.Module])
		}
	}

	if profile.Age > 40 && overall < 80 {
		recs = append(recs, Recommendation{
			Title:    "Regular Examinations Recommended",
			Message:  "After age 40, annual eye examinations become especially important.",
			Priority: PriorityLow,
		})
	}

	if len(profile.VisualDifficulties) > 0 {
		recs = append(recs, Recommendation{
			Title:    "Reported Symptoms Deserve Attention",
			Message:  "The visual difficulties you reported warrant attention from a specialist.",
			Priority: PriorityMedium,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Title:    "Results Within Normal Range",
			Message:  "Your results are within normal parameters. Keep up regular preventive checkups.",
			Priority: PriorityLow,
		})
	}

	return recs
}
