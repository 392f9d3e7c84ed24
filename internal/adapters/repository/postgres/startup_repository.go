package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type startupRepository struct {
	db *sql.DB
}

func NewStartupRepository(db *sql.DB) ports.StartupRepository {
	return &startupRepository{
		db: db,
	}
}

func (r *startupRepository) Save(ctx context.Context, startup *domain.Startup) error {
	query := `
		INSERT INTO startups (id, name, description, image_url, category, cracked_count, cooked_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		startup.ID, startup.Name, startup.Description, startup.ImageURL,
		startup.Category, startup.CrackedCount, startup.CookedCount, startup.CreatedAt,
	)
	if err != nil {
		// The unique index on name backstops the service-level duplicate check.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrStartupExists
		}
		return fmt.Errorf("failed to save startup: %w", err)
	}
	return nil
}

func (r *startupRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error) {
	query := `
		SELECT id, name, description, image_url, category, cracked_count, cooked_count, created_at
		FROM startups
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *startupRepository) GetByName(ctx context.Context, name string) (*domain.Startup, error) {
	query := `
		SELECT id, name, description, image_url, category, cracked_count, cooked_count, created_at
		FROM startups
		WHERE name = $1
	`
	startup, err := r.scanOne(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, domain.ErrStartupNotFound) {
		return nil, nil
	}
	return startup, err
}

func (r *startupRepository) GetAll(ctx context.Context) ([]*domain.Startup, error) {
	query := `
		SELECT id, name, description, image_url, category, cracked_count, cooked_count, created_at
		FROM startups
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all startups: %w", err)
	}
	defer rows.Close()

	var startups []*domain.Startup
	for rows.Next() {
		var s domain.Startup
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.ImageURL, &s.Category,
			&s.CrackedCount, &s.CookedCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan startup: %w", err)
		}
		startups = append(startups, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating startups: %w", err)
	}
	return startups, nil
}

func (r *startupRepository) scanOne(row *sql.Row) (*domain.Startup, error) {
	var s domain.Startup
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.ImageURL, &s.Category,
		&s.CrackedCount, &s.CookedCount, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStartupNotFound
		}
		return nil, fmt.Errorf("failed to get startup: %w", err)
	}
	return &s, nil
}
