package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/reversilabs/flipdisc/internal/analysis"
	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/repository"
)

// Analyze runs a playout search for the submitted board and returns the best
// move with per-candidate statistics. The result is merged into the book as a
// side effect.
func Analyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, err := req.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response, entry, err := analysis.Run(board, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewBookRepository(c)
	payload := models.PlayoutsPayload{Playouts: []models.BookEntry{entry}}
	if err := repo.SubmitPlayouts(c.Context(), payload); err != nil {
		// The analysis itself succeeded; losing the book write is not
		// worth failing the request over.
		slog.Error("Failed to store analysis in book", "error", err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
