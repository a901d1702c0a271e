package userRoutes

import (
	userController "visiocheck/controllers/user"
	"visiocheck/middleware"
	userValidator "visiocheck/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Post("/register", userValidator.RegisterProfile(), userController.RegisterProfile)
	userGroup.Get("/profile", middleware.SessionTokenMiddleware, userController.GetProfile)
}
