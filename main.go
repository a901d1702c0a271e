package main

import (
	"log"

	"visiocheck/config"
	"visiocheck/database"
	paymentRoutes "visiocheck/routers/paymentRoutes"
	screeningRoutes "visiocheck/routers/screeningRoutes"
	userRoutes "visiocheck/routers/userRoutes"
	"visiocheck/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	userRoutes.SetupUserRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	screeningRoutes.SetupScreeningRoutes(app)

	utils.StartWebhookScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
