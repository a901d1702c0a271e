package screeningRoutes

import (
	screeningController "visiocheck/controllers/screening"
	"visiocheck/middleware"
	screeningValidator "visiocheck/validators/screening"

	"github.com/gofiber/fiber/v2"
)

func SetupScreeningRoutes(app *fiber.App) {
	screeningGroup := app.Group("/screening")

	screeningGroup.Post("/start", middleware.SessionTokenMiddleware, screeningController.StartSession)
	screeningGroup.Get("/question", middleware.SessionTokenMiddleware, screeningController.GetCurrentQuestion)
	screeningGroup.Post("/answer", screeningValidator.SubmitAnswer(), middleware.SessionTokenMiddleware, screeningController.SubmitAnswer)
	screeningGroup.Post("/restart", middleware.SessionTokenMiddleware, screeningController.RestartSession)
	screeningGroup.Get("/results", middleware.SessionTokenMiddleware, screeningController.GetResults)
	screeningGroup.Get("/history", middleware.SessionTokenMiddleware, screeningController.GetHistory)
	screeningGroup.Get("/report/export", middleware.SessionTokenMiddleware, screeningController.ExportReport)
	screeningGroup.Get("/report/pdf", middleware.SessionTokenMiddleware, screeningController.ExportReportPDF)
	screeningGroup.Get("/stats/today", middleware.SessionTokenMiddleware, screeningController.GetTodayStats)
}
