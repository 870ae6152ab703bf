package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp creates the Fiber app with the shared middleware stack.
// Immutable is set because submitted report fields outlive the request.
func NewApp(logRequests bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Kottakkal Traffic API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		Immutable:    true,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	if logRequests {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	return app
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	// Incident intake
	app.Post("/report", handler.SubmitReport)

	api := app.Group("/api")
	{
		api.Get("/traffic", handler.GetTraffic)
		api.Get("/reports", handler.GetReports)
		api.Get("/route", handler.GetRoute)
		api.Get("/dashboard", handler.GetDashboard)
		api.Get("/locations", handler.GetLocations)
	}
}
