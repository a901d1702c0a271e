package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithScores(scores map[ModuleType]int) SessionResult {
	var results []ModuleResult
	for _, module := range DefaultModuleOrder() {
		score, ok := scores[module]
		if !ok {
			score = 100
		}
		results = append(results, ModuleResult{Module: module, Score: score})
	}
	return SessionResult{Results: results, OverallScore: OverallScore(results)}
}

func hasTitle(recs []Recommendation, title string) bool {
	for _, r := range recs {
		if r.Title == title {
			return true
		}
	}
	return false
}

func hasPriority(recs []Recommendation, p Priority) bool {
	for _, r := range recs {
		if r.Priority == p {
			return true
		}
	}
	return false
}

func TestRecommendationsAlwaysNonEmpty(t *testing.T) {
	recs := Recommendations(sessionWithScores(nil), Profile{Age: 25})
	require.NotEmpty(t, recs)
	assert.Len(t, recs, 1)
	assert.Equal(t, "Results Within Normal Range", recs[0].Title)
}

func TestRecommendationsLowOverallScore(t *testing.T) {
	result := SessionResult{
		Results: []ModuleResult{
			{Module: ModuleAcuity, Score: 40},
			{Module: ModuleColor, Score: 50},
			{Module: ModuleContrast, Score: 45},
		},
		OverallScore: 45,
	}

	recs := Recommendations(result, Profile{Age: 25})
	assert.True(t, hasPriority(recs, PriorityHigh))
	assert.True(t, hasTitle(recs, "Professional Evaluation Recommended"))
	assert.False(t, hasTitle(recs, "Results Within Normal Range"))
}

func TestRecommendationsMediumOverallScore(t *testing.T) {
	result := SessionResult{
		Results:      []ModuleResult{{Module: ModuleFocus, Score: 70}},
		OverallScore: 70,
	}

	recs := Recommendations(result, Profile{Age: 25})
	assert.True(t, hasTitle(recs, "Preventive Evaluation Suggested"))
	assert.False(t, hasTitle(recs, "Professional Evaluation Recommended"))
}

func TestRecommendationsModuleThresholds(t *testing.T) {
	result := sessionWithScores(map[ModuleType]int{ModuleAcuity: 65})

	recs := Recommendations(result, Profile{Age: 25})
	assert.True(t, hasTitle(recs, "Reduced Visual Acuity"))
	assert.False(t, hasTitle(recs, "Results Within Normal Range"))
}

func TestRecommendationsAgeRuleRequiresLowScore(t *testing.T) {
	// Overall 90 at age 45: the age rule requires overall < 80, so only the
	// normal-range entry is returned.
	result := SessionResult{
		Results: []ModuleResult{
			{Module: ModuleAcuity, Score: 90},
			{Module: ModuleColor, Score: 85},
			{Module: ModuleContrast, Score: 95},
		},
		OverallScore: 90,
	}

	recs := Recommendations(result, Profile{Age: 45, VisualDifficulties: []string{}})
	require.Len(t, recs, 1)
	assert.Equal(t, "Results Within Normal Range", recs[0].Title)
}

func TestRecommendationsAgeRuleFires(t *testing.T) {
	result := sessionWithScores(map[ModuleType]int{ModuleFocus: 0, ModuleTracking: 0, ModuleDepth: 0})
	require.Less(t, result.OverallScore, 80)

	recs := Recommendations(result, Profile{Age: 45})
	assert.True(t, hasTitle(recs, "Regular Examinations Recommended"))
}

func TestRecommendationsReportedDifficulties(t *testing.T) {
	recs := Recommendations(sessionWithScores(nil), Profile{Age: 25, VisualDifficulties: []string{"blurred vision"}})
	assert.True(t, hasTitle(recs, "Reported Symptoms Deserve Attention"))
	assert.False(t, hasTitle(recs, "Results Within Normal Range"))
}

func TestRecommendationsIdempotent(t *testing.T) {
	result := sessionWithScores(map[ModuleType]int{ModuleAcuity: 50, ModuleNightVision: 60})
	profile := Profile{Age: 52, VisualDifficulties: []string{"halos"}}

	first := Recommendations(result, profile)
	second := Recommendations(result, profile)
	assert.Equal(t, first, second)
}
