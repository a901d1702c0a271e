package paymentRoutes

import (
	paymentController "visiocheck/controllers/payment"
	"visiocheck/middleware"
	paymentValidator "visiocheck/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/create", paymentValidator.CreatePayment(), middleware.SessionTokenMiddleware, paymentController.CreatePayment)
	paymentGroup.Post("/process", paymentValidator.ProcessPayment(), middleware.SessionTokenMiddleware, paymentController.ProcessPayment)
	paymentGroup.Post("/cancel", paymentValidator.ProcessPayment(), middleware.SessionTokenMiddleware, paymentController.CancelPayment)
	paymentGroup.Get("/status", middleware.SessionTokenMiddleware, paymentController.GetPaymentStatus)
}
