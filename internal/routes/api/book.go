package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/repository"
)

// LookupPositions returns the book entries for the requested positions.
func LookupPositions(c *fiber.Ctx) error {
	var payload models.LookupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	repo := repository.NewBookRepository(c)
	entries, err := repo.LookupPositions(c.Context(), payload.Positions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

// SubmitPlayouts merges a batch of playout tallies into the book. Used by
// selfplay clients.
func SubmitPlayouts(c *fiber.Ctx) error {
	clientID, err := lookupClient(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var payload models.PlayoutsPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	repo := repository.NewBookRepository(c)
	if err := repo.SubmitPlayouts(c.Context(), payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	clients := repository.NewClientRepository(c)
	if err := clients.AddSubmission(c.Context(), clientID, len(payload.Playouts)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetBookStats returns per-disc-count book totals.
func GetBookStats(c *fiber.Ctx) error {
	repo := repository.NewBookRepository(c)
	stats, err := repo.GetBookStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
