package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/services"
)

const (
	clientsKey = "selfplay_clients"
	clientsTTL = 300 * time.Second
)

// ErrClientNotFound is returned when a client ID is not registered or its
// registration expired.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository tracks registered selfplay clients in Redis. Entries
// expire unless refreshed by heartbeats.
type ClientRepository struct {
	services *services.Services
}

func NewClientRepository(c *fiber.Ctx) *ClientRepository {
	return &ClientRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewClientRepositoryFromServices(services *services.Services) *ClientRepository {
	return &ClientRepository{
		services: services,
	}
}

// RegisterClient registers a new selfplay client and returns its ID.
func (repo *ClientRepository) RegisterClient(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	clientID := uuid.New().String()

	clientStats := models.ClientStats{
		ID:         clientID,
		Hostname:   req.Hostname,
		GitCommit:  req.GitCommit,
		LastActive: time.Now(),
	}

	if err := repo.storeClient(ctx, clientStats); err != nil {
		return models.RegisterResponse{}, err
	}

	return models.RegisterResponse{ClientID: clientID}, nil
}

// GetClientStats returns the stats of a single client.
func (repo *ClientRepository) GetClientStats(ctx context.Context, clientID string) (models.ClientStats, error) {
	jsonData, err := repo.services.Redis.HGet(ctx, clientsKey, clientID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.ClientStats{}, fmt.Errorf("%w: %s", ErrClientNotFound, clientID)
		}
		return models.ClientStats{}, fmt.Errorf("error getting client: %w", err)
	}

	var clientStats models.ClientStats
	if err = json.Unmarshal(jsonData, &clientStats); err != nil {
		return models.ClientStats{}, fmt.Errorf("error unmarshaling client stats: %w", err)
	}

	return clientStats, nil
}

// UpdateHeartbeat refreshes the last-active timestamp for a client.
func (repo *ClientRepository) UpdateHeartbeat(ctx context.Context, clientID string) error {
	clientStats, err := repo.GetClientStats(ctx, clientID)
	if err != nil {
		return err
	}

	clientStats.LastActive = time.Now()

	return repo.storeClient(ctx, clientStats)
}

// AddSubmission records a completed selfplay game and the number of playout
// entries the client submitted for it.
func (repo *ClientRepository) AddSubmission(ctx context.Context, clientID string, playouts int) error {
	clientStats, err := repo.GetClientStats(ctx, clientID)
	if err != nil {
		return err
	}

	clientStats.GamesPlayed++
	clientStats.PlayoutsSubmitted += playouts
	clientStats.LastActive = time.Now()

	return repo.storeClient(ctx, clientStats)
}

// GetClientStatsList retrieves statistics for all registered clients, most
// recently active first.
func (repo *ClientRepository) GetClientStatsList(ctx context.Context) (models.StatsResponse, error) {
	clients, err := repo.services.Redis.HGetAll(ctx, clientsKey).Result()
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("error getting clients: %w", err)
	}

	stats := make([]models.ClientStats, 0, len(clients))
	for _, jsonData := range clients {
		var clientStats models.ClientStats
		if err := json.Unmarshal([]byte(jsonData), &clientStats); err != nil {
			return models.StatsResponse{}, fmt.Errorf("error unmarshaling client stats: %w", err)
		}
		stats = append(stats, clientStats)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].LastActive.After(stats[j].LastActive)
	})

	return models.StatsResponse{
		ActiveClients: len(stats),
		Clients:       stats,
	}, nil
}

// storeClient writes the client stats to the Redis hash and refreshes the TTL.
func (repo *ClientRepository) storeClient(ctx context.Context, clientStats models.ClientStats) error {
	jsonData, err := json.Marshal(clientStats)
	if err != nil {
		return fmt.Errorf("error marshaling client stats: %w", err)
	}

	redisConn := repo.services.Redis

	if err = redisConn.HSet(ctx, clientsKey, clientStats.ID, jsonData).Err(); err != nil {
		return fmt.Errorf("error storing client: %w", err)
	}

	if err = redisConn.Expire(ctx, clientsKey, clientsTTL).Err(); err != nil {
		return fmt.Errorf("error setting TTL: %w", err)
	}

	return nil
}
