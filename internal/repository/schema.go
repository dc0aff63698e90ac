package repository

import (
	"context"
	"fmt"

	"github.com/reversilabs/flipdisc/internal/services"
)

const createPlayoutsTable = `
	CREATE TABLE IF NOT EXISTS playouts (
		position TEXT PRIMARY KEY,
		disc_count INTEGER NOT NULL,
		playouts INTEGER NOT NULL,
		wins INTEGER NOT NULL,
		draws INTEGER NOT NULL,
		losses INTEGER NOT NULL,
		best_move TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS playouts_disc_count_idx ON playouts (disc_count);
`

// EnsureSchema creates the book tables when they do not exist yet.
func EnsureSchema(ctx context.Context, services *services.Services) error {
	if _, err := services.Postgres.ExecContext(ctx, createPlayoutsTable); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}
