package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/repository"
)

// RegisterClient handles selfplay client registration.
func RegisterClient(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	repo := repository.NewClientRepository(c)
	resp, err := repo.RegisterClient(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// lookupClient checks that the request carries a registered client ID.
func lookupClient(c *fiber.Ctx) (string, error) {
	clientID := c.Get("x-client-id")
	if clientID == "" {
		return "", errors.New("missing client ID")
	}

	repo := repository.NewClientRepository(c)
	if _, err := repo.GetClientStats(c.Context(), clientID); err != nil {
		return "", err
	}

	return clientID, nil
}

// Heartbeat handles client heartbeat updates.
func Heartbeat(c *fiber.Ctx) error {
	clientID, err := lookupClient(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewClientRepository(c)
	if err = repo.UpdateHeartbeat(c.Context(), clientID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetClients returns statistics for all registered clients.
func GetClients(c *fiber.Ctx) error {
	repo := repository.NewClientRepository(c)
	stats, err := repo.GetClientStatsList(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
