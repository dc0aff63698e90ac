package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilabs/flipdisc/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Analysis routes
	apiGroup.Post("/analyze", Analyze)

	// Book routes
	apiGroup.Post("/book/lookup", LookupPositions)
	apiGroup.Post("/book/playouts", SubmitPlayouts)
	apiGroup.Get("/book/stats", GetBookStats)

	// Selfplay client routes
	apiGroup.Post("/clients/register", RegisterClient)
	apiGroup.Post("/clients/heartbeat", Heartbeat)
	apiGroup.Get("/clients", GetClients)
}
