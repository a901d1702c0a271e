package screeningController

import (
	"encoding/json"
	"testing"
	"time"

	"visiocheck/screening"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSessionResult() (screening.Profile, screening.SessionResult) {
	profile := screening.Profile{
		UserID:             42,
		Name:               "Ana Souza",
		Age:                45,
		Gender:             "female",
		UsesGlasses:        true,
		LensType:           "near",
		VisualDifficulties: []string{"blurred vision"},
		HealthHistory:      []string{"diabetes"},
	}

	completed := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	result := screening.SessionResult{
		SessionID: "session-1",
		UserID:    42,
		Results: []screening.ModuleResult{
			{
				Module: screening.ModuleAcuity,
				Score:  80,
				Level:  2,
				Responses: []screening.Response{
					{QuestionID: "acuity_1", Answer: "Right", CorrectAnswer: "Right", Correct: true, AnsweredAt: completed},
				},
				CompletedAt: completed,
			},
			{Module: screening.ModuleColor, Score: 90, Level: 2, CompletedAt: completed},
		},
		OverallScore: 85,
		CompletedAt:  completed,
	}
	return profile, result
}

func TestBuildExportShape(t *testing.T) {
	profile, result := sampleSessionResult()
	recs := screening.Recommendations(result, profile)

	report := buildExport(profile, result, recs)

	assert.Equal(t, "session-1", report.SessionID)
	assert.Equal(t, "Ana Souza", report.User.Name)
	assert.Equal(t, 45, report.User.Age)
	assert.Equal(t, []string{"blurred vision"}, report.User.VisualDifficulties)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "acuity", report.Results[0].ModuleType)
	assert.Equal(t, "Visual Acuity", report.Results[0].ModuleName)
	assert.Equal(t, 80, report.Results[0].Score)
	assert.Equal(t, 2, report.Summary.TotalModules)
	assert.Equal(t, 85, report.Summary.OverallScore)
	assert.NotEmpty(t, report.Summary.Recommendations)
}

func TestBuildExportJSONFields(t *testing.T) {
	profile, result := sampleSessionResult()
	report := buildExport(profile, result, screening.Recommendations(result, profile))

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, field := range []string{"exportDate", "sessionId", "user", "results", "summary"} {
		assert.Contains(t, decoded, field)
	}

	summary := decoded["summary"].(map[string]any)
	for _, field := range []string{"totalModules", "overallScore", "recommendations"} {
		assert.Contains(t, summary, field)
	}

	results := decoded["results"].([]any)
	first := results[0].(map[string]any)
	for _, field := range []string{"moduleType", "moduleName", "score", "level", "completedAt", "responses"} {
		assert.Contains(t, first, field)
	}

	responses := first["responses"].([]any)
	response := responses[0].(map[string]any)
	for _, field := range []string{"questionId", "answer", "correctAnswer", "correct", "answeredAt"} {
		assert.Contains(t, response, field)
	}
}

func TestRenderReportPDF(t *testing.T) {
	profile, result := sampleSessionResult()
	report := buildExport(profile, result, screening.Recommendations(result, profile))

	pdfBytes, err := renderReportPDF(report)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
