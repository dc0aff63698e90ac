package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilabs/flipdisc/internal/routes/api"
	"github.com/reversilabs/flipdisc/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"service": "flipdisc",
	})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
