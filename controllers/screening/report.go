package screeningController

import (
	"bytes"
	"fmt"
	"time"

	"visiocheck/middleware"
	"visiocheck/screening"

	"github.com/gofiber/fiber/v2"
	"github.com/jung-kurt/gofpdf"
)

type exportUser struct {
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	UsesGlasses        bool     `json:"usesGlasses"`
	LensType           string   `json:"lensType,omitempty"`
	VisualDifficulties []string `json:"visualDifficulties"`
	HealthHistory      []string `json:"healthHistory"`
}

type exportModuleResult struct {
	ModuleType  string               `json:"moduleType"`
	ModuleName  string               `json:"moduleName"`
	Score       int                  `json:"score"`
	Level       int                  `json:"level"`
	CompletedAt time.Time            `json:"completedAt"`
	Responses   []screening.Response `json:"responses"`
}

type exportSummary struct {
	TotalModules    int                        `json:"totalModules"`
	OverallScore    int                        `json:"overallScore"`
	Recommendations []screening.Recommendation `json:"recommendations"`
}

type exportReport struct {
	ExportDate string               `json:"exportDate"`
	SessionID  string               `json:"sessionId"`
	User       exportUser           `json:"user"`
	Results    []exportModuleResult `json:"results"`
	Summary    exportSummary        `json:"summary"`
}

// buildExport assembles the downloadable report document.
func buildExport(profile screening.Profile, result screening.SessionResult, recommendations []screening.Recommendation) exportReport {
	results := make([]exportModuleResult, len(result.Results))
	for i, mr := range result.Results {
		results[i] = exportModuleResult{
			ModuleType:  string(mr.Module),
			ModuleName:  screening.ModuleName(mr.Module),
			Score:       mr.Score,
			Level:       mr.Level,
			CompletedAt: mr.CompletedAt,
			Responses:   mr.Responses,
		}
	}

	return exportReport{
		ExportDate: time.Now().Format(time.RFC3339),
		SessionID:  result.SessionID,
		User: exportUser{
			Name:               profile.Name,
			Age:                profile.Age,
			Gender:             profile.Gender,
			UsesGlasses:        profile.UsesGlasses,
			LensType:           profile.LensType,
			VisualDifficulties: profile.VisualDifficulties,
			HealthHistory:      profile.HealthHistory,
		},
		Results: results,
		Summary: exportSummary{
			TotalModules:    len(result.Results),
			OverallScore:    result.OverallScore,
			Recommendations: recommendations,
		},
	}
}

// ExportReport offers the completed session as a downloadable JSON document.
func ExportReport(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, ok := screening.Live.Get(userID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active session!", nil)
	}

	result, done := session.Result()
	if !done {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not yet complete!", nil)
	}

	report := buildExport(session.Profile, result, screening.Recommendations(result, session.Profile))

	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="visiocheck-report-%s.json"`, result.SessionID))
	return c.Status(fiber.StatusOK).JSON(report)
}

// ExportReportPDF offers the completed session as a downloadable PDF.
func ExportReportPDF(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, ok := screening.Live.Get(userID)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active session!", nil)
	}

	result, done := session.Result()
	if !done {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not yet complete!", nil)
	}

	report := buildExport(session.Profile, result, screening.Recommendations(result, session.Profile))

	pdfBytes, err := renderReportPDF(report)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render report!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="visiocheck-report-%s.pdf"`, result.SessionID))
	return c.Status(fiber.StatusOK).Send(pdfBytes)
}

// renderReportPDF lays the report out as a single-column A4 document.
func renderReportPDF(report exportReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 10, "VisioCheck Screening Report", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	info := fmt.Sprintf("Name: %s\nAge: %d\nGender: %s\nOverall score: %d%%\nExported: %s\n",
		report.User.Name, report.User.Age, report.User.Gender, report.Summary.OverallScore, report.ExportDate)
	pdf.MultiCell(0, 8, info, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.MultiCell(0, 8, "Module results", "", "L", false)
	pdf.SetFont("Arial", "", 11)
	for _, mr := range report.Results {
		correct := 0
		for _, r := range mr.Responses {
			if r.Correct {
				correct++
			}
		}
		line := fmt.Sprintf("%s: %d%% (%d/%d correct, level %d)",
			mr.ModuleName, mr.Score, correct, len(mr.Responses), mr.Level)
		pdf.MultiCell(0, 7, line, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.MultiCell(0, 8, "Recommendations", "", "L", false)
	pdf.SetFont("Arial", "", 11)
	for _, rec := range report.Summary.Recommendations {
		pdf.MultiCell(0, 7, fmt.Sprintf("[%s] %s: %s", rec.Priority, rec.Title, rec.Message), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
