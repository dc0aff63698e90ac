package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/reversilabs/flipdisc/internal/models"
	"github.com/reversilabs/flipdisc/internal/services"
)

const (
	bookStatsKey = "book_stats"
	bookStatsTTL = time.Minute
)

// BookRepository handles storage of accumulated playout statistics. Rows live
// in Postgres; the stats summary is cached in Redis.
type BookRepository struct {
	services *services.Services
}

// NewBookRepository creates a new BookRepository from a request context.
func NewBookRepository(c *fiber.Ctx) *BookRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &BookRepository{
		services: services,
	}
}

func NewBookRepositoryFromServices(services *services.Services) *BookRepository {
	return &BookRepository{
		services: services,
	}
}

// SubmitPlayouts merges a batch of playout tallies into the book. Counters
// accumulate across submissions; the stored best move is the one from the
// latest submission.
func (repo *BookRepository) SubmitPlayouts(ctx context.Context, payload models.PlayoutsPayload) error {
	if len(payload.Playouts) == 0 {
		return nil
	}

	pgConn := repo.services.Postgres

	valuesClause := ""
	params := make([]interface{}, 0, len(payload.Playouts)*7) //nolint:mnd

	for i, entry := range payload.Playouts {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid book entry: %w", err)
		}

		if i > 0 {
			valuesClause += ", "
		}
		valuesClause += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*7+1, i*7+2, i*7+3, i*7+4, i*7+5, i*7+6, i*7+7) //nolint:mnd

		params = append(params,
			entry.Position,
			entry.DiscCount,
			entry.Playouts,
			entry.Wins,
			entry.Draws,
			entry.Losses,
			entry.BestMove,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO playouts (position, disc_count, playouts, wins, draws, losses, best_move)
		VALUES %s
		ON CONFLICT (position)
		DO UPDATE SET
			playouts = playouts.playouts + EXCLUDED.playouts,
			wins = playouts.wins + EXCLUDED.wins,
			draws = playouts.draws + EXCLUDED.draws,
			losses = playouts.losses + EXCLUDED.losses,
			best_move = EXCLUDED.best_move;
	`, valuesClause)

	if _, err := pgConn.ExecContext(ctx, query, params...); err != nil {
		return fmt.Errorf("error submitting playouts: %w", err)
	}

	// The cached stats summary is stale now.
	if err := repo.services.Redis.Del(ctx, bookStatsKey).Err(); err != nil {
		return fmt.Errorf("error invalidating book stats cache: %w", err)
	}

	return nil
}

// LookupPositions returns the book entries for the given positions. Positions
// without an entry are absent from the result.
func (repo *BookRepository) LookupPositions(ctx context.Context, positions []string) ([]models.BookEntry, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT position, disc_count, playouts, wins, draws, losses, best_move
		FROM playouts
		WHERE position = ANY($1)
		ORDER BY disc_count, position;
	`

	entries := make([]models.BookEntry, 0, len(positions))
	if err := pgConn.SelectContext(ctx, &entries, query, pq.Array(positions)); err != nil {
		return nil, fmt.Errorf("error looking up positions: %w", err)
	}

	return entries, nil
}

// GetBookStats returns per-disc-count book totals, served from the Redis
// cache when fresh.
func (repo *BookRepository) GetBookStats(ctx context.Context) ([]models.BookStats, error) {
	redisConn := repo.services.Redis

	cached, err := redisConn.Get(ctx, bookStatsKey).Bytes()
	if err == nil {
		var stats []models.BookStats
		if err = json.Unmarshal(cached, &stats); err == nil {
			return stats, nil
		}
		// Fall through to Postgres on a corrupt cache entry.
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("error reading book stats cache: %w", err)
	}

	query := `
		SELECT disc_count, COUNT(*) AS positions, SUM(playouts) AS playouts
		FROM playouts
		GROUP BY disc_count
		ORDER BY disc_count;
	`

	rows, err := repo.services.Postgres.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying book stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.BookStats, 0)
	for rows.Next() {
		var stat models.BookStats
		if err = rows.Scan(&stat.DiscCount, &stat.Positions, &stat.Playouts); err != nil {
			return nil, fmt.Errorf("error scanning book stats: %w", err)
		}
		stats = append(stats, stat)
	}

	jsonData, err := json.Marshal(stats)
	if err != nil {
		return nil, fmt.Errorf("error marshaling book stats: %w", err)
	}

	if err = redisConn.Set(ctx, bookStatsKey, jsonData, bookStatsTTL).Err(); err != nil {
		return nil, fmt.Errorf("error caching book stats: %w", err)
	}

	return stats, nil
}
