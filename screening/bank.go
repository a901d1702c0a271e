package screening

import "fmt"

// questionBank holds the static per-module question lists. Loaded at process
// start, never mutated. The eye_strain module is self-report: its first option
// is the baseline answer used for scoring consistency.
var questionBank = map[ModuleType][]Question{
	ModulePeripheral: {
		{ID: "peripheral_1", Module: ModulePeripheral, Kind: KindMultipleChoice, Prompt: "Keeping your eyes fixed on the central dot, how many dots flashed around it?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "3", Difficulty: 1},
		{ID: "peripheral_2", Module: ModulePeripheral, Kind: KindMultipleChoice, Prompt: "Without moving your eyes from the center, in which corner did the shape appear?", Options: []string{"Upper left", "Upper right", "Lower left", "Lower right"}, CorrectAnswer: "Upper right", Difficulty: 2},
		{ID: "peripheral_3", Module: ModulePeripheral, Kind: KindMultipleChoice, Prompt: "While fixating on the cross, how many bars appeared at the edge of the screen?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "5", Difficulty: 3},
		{ID: "peripheral_4", Module: ModulePeripheral, Kind: KindMultipleChoice, Prompt: "Which shape briefly appeared in your left field of view?", Options: []string{"Square", "Circle", "Triangle", "Star"}, CorrectAnswer: "Triangle", Difficulty: 4},
		{ID: "peripheral_5", Module: ModulePeripheral, Kind: KindMultipleChoice, Prompt: "Keeping central fixation, which number flashed near the screen edge?", Options: []string{"6", "7", "8", "9"}, CorrectAnswer: "9", Difficulty: 5},
	},
	ModuleAcuity: {
		{ID: "acuity_1", Module: ModuleAcuity, Kind: KindMultipleChoice, Prompt: "Which direction does the opening of the letter E point?", Options: []string{"Left", "Right", "Up", "Down"}, CorrectAnswer: "Right", Difficulty: 1},
		{ID: "acuity_2", Module: ModuleAcuity, Kind: KindMultipleChoice, Prompt: "Identify the direction of the opening of this smaller letter E:", Options: []string{"Left", "Right", "Up", "Down"}, CorrectAnswer: "Up", Difficulty: 2},
		{ID: "acuity_3", Module: ModuleAcuity, Kind: KindMultipleChoice, Prompt: "Where does the opening of this even smaller letter E point?", Options: []string{"Left", "Right", "Up", "Down"}, CorrectAnswer: "Left", Difficulty: 3},
		{ID: "acuity_4", Module: ModuleAcuity, Kind: KindMultipleChoice, Prompt: "Read this line of small letters:", Options: []string{"F P T O Z", "E P T O Z", "F B T O Z", "F P T Q Z"}, CorrectAnswer: "F P T O Z", Difficulty: 4},
		{ID: "acuity_5", Module: ModuleAcuity, Kind: KindMultipleChoice, Prompt: "Identify this very small sequence of letters:", Options: []string{"D F P O T E C", "D F B O T E C", "D F P Q T E C", "D E P O T E C"}, CorrectAnswer: "D F P O T E C", Difficulty: 5},
	},
	ModuleFocus: {
		{ID: "focus_1", Module: ModuleFocus, Kind: KindMultipleChoice, Prompt: "After switching from the near block of text to the far chart, which letter is on the top line?", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Difficulty: 1},
		{ID: "focus_2", Module: ModuleFocus, Kind: KindMultipleChoice, Prompt: "Which of the alternating rows of text appears sharpest right after the switch?", Options: []string{"Row 1", "Row 2", "Row 3", "Row 4"}, CorrectAnswer: "Row 2", Difficulty: 2},
		{ID: "focus_3", Module: ModuleFocus, Kind: KindMultipleChoice, Prompt: "Read the small word shown immediately after refocusing:", Options: []string{"CLEAR", "CLEAN", "CLAIM", "CREAM"}, CorrectAnswer: "CLEAR", Difficulty: 3},
		{ID: "focus_4", Module: ModuleFocus, Kind: KindMultipleChoice, Prompt: "Which number appears in the near panel once the far panel fades?", Options: []string{"2", "4", "6", "8"}, CorrectAnswer: "4", Difficulty: 4},
		{ID: "focus_5", Module: ModuleFocus, Kind: KindMultipleChoice, Prompt: "After rapidly alternating focus, identify the final small character shown:", Options: []string{"K", "X", "N", "H"}, CorrectAnswer: "N", Difficulty: 5},
	},
	ModuleColor: {
		{ID: "color_1", Module: ModuleColor, Kind: KindMultipleChoice, Prompt: "What color is the large letter shown on the screen?", Options: []string{"Red", "Green", "Blue", "Yellow"}, CorrectAnswer: "Red", Difficulty: 1},
		{ID: "color_2", Module: ModuleColor, Kind: KindMultipleChoice, Prompt: "Which number is hidden in this pattern of colored dots?", Options: []string{"12", "15", "17", "74"}, CorrectAnswer: "15", Difficulty: 2},
		{ID: "color_3", Module: ModuleColor, Kind: KindMultipleChoice, Prompt: "What color is the circle standing out from the background?", Options: []string{"Green", "Orange", "Purple", "Brown"}, CorrectAnswer: "Green", Difficulty: 3},
		{ID: "color_4", Module: ModuleColor, Kind: KindMultipleChoice, Prompt: "Which number do you see in this red-green dot pattern?", Options: []string{"3", "5", "8", "No number"}, CorrectAnswer: "5", Difficulty: 4},
		{ID: "color_5", Module: ModuleColor, Kind: KindMultipleChoice, Prompt: "Identify the shape traced by the subtly different colored dots:", Options: []string{"Star", "Heart", "Arrow", "Diamond"}, CorrectAnswer: "Heart", Difficulty: 5},
	},
	ModuleTracking: {
		{ID: "tracking_1", Module: ModuleTracking, Kind: KindMultipleChoice, Prompt: "Following the moving dot with your eyes only, where did it stop?", Options: []string{"Top", "Bottom", "Left", "Right"}, CorrectAnswer: "Top", Difficulty: 1},
		{ID: "tracking_2", Module: ModuleTracking, Kind: KindMultipleChoice, Prompt: "How many times did the dot change direction during its path?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "4", Difficulty: 2},
		{ID: "tracking_3", Module: ModuleTracking, Kind: KindMultipleChoice, Prompt: "Which letter did the moving target pass through?", Options: []string{"M", "W", "V", "Z"}, CorrectAnswer: "W", Difficulty: 3},
		{ID: "tracking_4", Module: ModuleTracking, Kind: KindMultipleChoice, Prompt: "Two dots moved at once. Which one reached the edge first?", Options: []string{"The red dot", "The blue dot", "Both together", "Neither"}, CorrectAnswer: "The blue dot", Difficulty: 4},
		{ID: "tracking_5", Module: ModuleTracking, Kind: KindMultipleChoice, Prompt: "After following the fast zigzag, what number appeared where the dot vanished?", Options: []string{"1", "3", "7", "9"}, CorrectAnswer: "7", Difficulty: 5},
	},
	ModuleContrast: {
		{ID: "contrast_1", Module: ModuleContrast, Kind: KindMultipleChoice, Prompt: "How many circles can you see in this low-contrast image?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "3", Difficulty: 1},
		{ID: "contrast_2", Module: ModuleContrast, Kind: KindMultipleChoice, Prompt: "Which shape is hidden against the light gray background?", Options: []string{"Square", "Circle", "Triangle", "Diamond"}, CorrectAnswer: "Circle", Difficulty: 2},
		{ID: "contrast_3", Module: ModuleContrast, Kind: KindMultipleChoice, Prompt: "Identify the number shown with very low contrast:", Options: []string{"6", "8", "9", "0"}, CorrectAnswer: "8", Difficulty: 3},
		{ID: "contrast_4", Module: ModuleContrast, Kind: KindMultipleChoice, Prompt: "How many vertical lines do you see in this faint grid?", Options: []string{"4", "5", "6", "7"}, CorrectAnswer: "5", Difficulty: 4},
		{ID: "contrast_5", Module: ModuleContrast, Kind: KindMultipleChoice, Prompt: "Which letter can you identify in the faintest panel?", Options: []string{"B", "E", "F", "P"}, CorrectAnswer: "B", Difficulty: 5},
	},
	ModuleAstigmatism: {
		{ID: "astigmatism_1", Module: ModuleAstigmatism, Kind: KindMultipleChoice, Prompt: "Looking at the fan of lines, which lines appear darkest or sharpest?", Options: []string{"Verticals", "Horizontals", "Diagonals", "All equal"}, CorrectAnswer: "Verticals", Difficulty: 1},
		{ID: "astigmatism_2", Module: ModuleAstigmatism, Kind: KindMultipleChoice, Prompt: "At which angle do the lines look most blurred?", Options: []string{"0° (horizontal)", "45° (diagonal)", "90° (vertical)", "None"}, CorrectAnswer: "45° (diagonal)", Difficulty: 2},
		{ID: "astigmatism_3", Module: ModuleAstigmatism, Kind: KindMultipleChoice, Prompt: "Comparing the two line groups, which looks more uniform?", Options: []string{"Group A (horizontals)", "Group B (verticals)", "Both equal", "Neither"}, CorrectAnswer: "Group B (verticals)", Difficulty: 3},
		{ID: "astigmatism_4", Module: ModuleAstigmatism, Kind: KindMultipleChoice, Prompt: "In the radial chart, which spokes seem to fade first?", Options: []string{"Horizontals", "Verticals", "Upper diagonals", "Lower diagonals"}, CorrectAnswer: "Horizontals", Difficulty: 4},
		{ID: "astigmatism_5", Module: ModuleAstigmatism, Kind: KindMultipleChoice, Prompt: "Which half of the sunburst pattern appears sharper?", Options: []string{"Superior", "Inferior", "Left", "Right"}, CorrectAnswer: "Superior", Difficulty: 5},
	},
	ModuleNightVision: {
		{ID: "night_1", Module: ModuleNightVision, Kind: KindMultipleChoice, Prompt: "In the dark panel, how many dim stars can you count?", Options: []string{"5", "6", "7", "8"}, CorrectAnswer: "7", Difficulty: 1},
		{ID: "night_2", Module: ModuleNightVision, Kind: KindMultipleChoice, Prompt: "Which shape is faintly visible in the dark background?", Options: []string{"Full moon", "Crescent moon", "Star", "Cloud"}, CorrectAnswer: "Crescent moon", Difficulty: 2},
		{ID: "night_3", Module: ModuleNightVision, Kind: KindMultipleChoice, Prompt: "Identify the dim number in the low-light scene:", Options: []string{"2", "4", "6", "8"}, CorrectAnswer: "4", Difficulty: 3},
		{ID: "night_4", Module: ModuleNightVision, Kind: KindMultipleChoice, Prompt: "How many dark silhouettes stand in front of the night sky?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "3", Difficulty: 4},
		{ID: "night_5", Module: ModuleNightVision, Kind: KindMultipleChoice, Prompt: "Which object is hidden in the darkest corner of the image?", Options: []string{"House", "Car", "Tree", "Bench"}, CorrectAnswer: "Tree", Difficulty: 5},
	},
	ModuleDepth: {
		{ID: "depth_1", Module: ModuleDepth, Kind: KindMultipleChoice, Prompt: "Which of the circles appears closest to you?", Options: []string{"Left circle", "Middle circle", "Right circle", "All equal"}, CorrectAnswer: "Middle circle", Difficulty: 1},
		{ID: "depth_2", Module: ModuleDepth, Kind: KindMultipleChoice, Prompt: "Of the overlapping shapes, which one sits in front?", Options: []string{"Square", "Circle", "Triangle", "Cannot tell"}, CorrectAnswer: "Triangle", Difficulty: 2},
		{ID: "depth_3", Module: ModuleDepth, Kind: KindMultipleChoice, Prompt: "Which row of posts appears farthest away?", Options: []string{"Row 1", "Row 2", "Row 3", "Row 4"}, CorrectAnswer: "Row 4", Difficulty: 3},
		{ID: "depth_4", Module: ModuleDepth, Kind: KindMultipleChoice, Prompt: "In the stereo pattern, which quadrant appears raised?", Options: []string{"Upper left", "Upper right", "Lower left", "Lower right"}, CorrectAnswer: "Lower left", Difficulty: 4},
		{ID: "depth_5", Module: ModuleDepth, Kind: KindMultipleChoice, Prompt: "Order the three objects from near to far. Which ordering is correct?", Options: []string{"Ball, box, cone", "Box, ball, cone", "Cone, ball, box", "Ball, cone, box"}, CorrectAnswer: "Cone, ball, box", Difficulty: 5},
	},
	ModuleEyeStrain: {
		{ID: "strain_1", Module: ModuleEyeStrain, Kind: KindSelfReport, Prompt: "How often do your eyes feel tired after screen use?", Options: []string{"Rarely or never", "A few times a week", "Daily", "Constantly"}, CorrectAnswer: "Rarely or never", Difficulty: 1},
		{ID: "strain_2", Module: ModuleEyeStrain, Kind: KindSelfReport, Prompt: "Do you experience headaches after long periods of reading?", Options: []string{"No", "Occasionally", "Frequently", "Almost always"}, CorrectAnswer: "No", Difficulty: 1},
		{ID: "strain_3", Module: ModuleEyeStrain, Kind: KindSelfReport, Prompt: "How often does your vision blur at the end of the day?", Options: []string{"Never", "Sometimes", "Most days", "Every day"}, CorrectAnswer: "Never", Difficulty: 1},
		{ID: "strain_4", Module: ModuleEyeStrain, Kind: KindSelfReport, Prompt: "Do your eyes feel dry or irritated while working?", Options: []string{"Rarely", "Sometimes", "Often", "Always"}, CorrectAnswer: "Rarely", Difficulty: 1},
		{ID: "strain_5", Module: ModuleEyeStrain, Kind: KindSelfReport, Prompt: "How frequently do you take breaks from near work?", Options: []string{"Every 20-30 minutes", "Every hour", "A few times a day", "Almost never"}, CorrectAnswer: "Every 20-30 minutes", Difficulty: 1},
	},
}

func init() {
	if err := validateBank(); err != nil {
		panic(err)
	}
}

// QuestionsFor returns the fixed ordered question list for a module.
// The returned slice must not be modified.
func QuestionsFor(module ModuleType) []Question {
	return questionBank[module]
}

func validateBank() error {
	seen := make(map[string]bool)
	for _, module := range DefaultModuleOrder() {
		questions := questionBank[module]
		if len(questions) == 0 {
			return fmt.Errorf("screening: module %s has no questions", module)
		}
		for _, q := range questions {
			if q.ID == "" || seen[q.ID] {
				return fmt.Errorf("screening: module %s has missing or duplicate question id %q", module, q.ID)
			}
			seen[q.ID] = true
			if q.Prompt == "" {
				return fmt.Errorf("screening: question %s has an empty prompt", q.ID)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("screening: question %s needs at least two options", q.ID)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("screening: question %s correct answer %q not among options", q.ID, q.CorrectAnswer)
			}
		}
	}
	return nil
}
