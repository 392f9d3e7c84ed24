package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crackd/api/internal/core/ports"
)

type counterRepository struct {
	db *sql.DB
}

func NewCounterRepository(db *sql.DB) ports.CounterRepository {
	return &counterRepository{
		db: db,
	}
}

// RecountVotes overwrites a startup's materialized counters with an exact
// aggregate over its vote rows. A startup with no votes goes back to 0/0.
func (r *counterRepository) RecountVotes(ctx context.Context, startupName string) error {
	query := `
		UPDATE startups SET
			cracked_count = COALESCE(c.cracked, 0),
			cooked_count = COALESCE(c.cooked, 0)
		FROM (
			SELECT
				COUNT(*) FILTER (WHERE choice = 'CRACKED') AS cracked,
				COUNT(*) FILTER (WHERE choice = 'COOKED') AS cooked
			FROM votes
			WHERE startup_name = $1
		) c
		WHERE startups.name = $1
	`

	_, err := r.db.ExecContext(ctx, query, startupName)
	if err != nil {
		return fmt.Errorf("failed to recount votes for startup %s: %w", startupName, err)
	}

	return nil
}
