package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/google/uuid"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// RecordVote runs the whole insert-or-overwrite mutation in one transaction:
// lock the startup row, find the caller's prior vote, replace it in place
// (decrementing the old counter) or insert a fresh one, bump the counter for
// the new choice, and write both counters back. The FOR UPDATE lock
// serializes concurrent votes on the same startup so counter updates are
// never lost.
func (r *voteRepository) RecordVote(ctx context.Context, startupName string, userID uuid.UUID, choice domain.Choice) (uuid.UUID, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		startupID    uuid.UUID
		crackedCount int64
		cookedCount  int64
	)
	err = tx.QueryRowContext(ctx, `
		SELECT id, cracked_count, cooked_count
		FROM startups
		WHERE name = $1
		FOR UPDATE
	`, startupName).Scan(&startupID, &crackedCount, &cookedCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, domain.ErrStartupNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get startup: %w", err)
	}

	var (
		voteID      uuid.UUID
		priorChoice domain.Choice
	)
	err = tx.QueryRowContext(ctx, `
		SELECT id, choice
		FROM votes
		WHERE startup_name = $1 AND user_id = $2
	`, startupName, userID).Scan(&voteID, &priorChoice)

	switch {
	case err == nil:
		// Overwrite in place, keeping the row's identity.
		_, err = tx.ExecContext(ctx, `
			UPDATE votes SET choice = $1, created_at = NOW() WHERE id = $2
		`, choice, voteID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to update vote: %w", err)
		}
		if priorChoice == domain.ChoiceCracked {
			crackedCount--
		} else {
			cookedCount--
		}
	case errors.Is(err, sql.ErrNoRows):
		voteID = uuid.New()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO votes (id, startup_name, user_id, choice, created_at)
			VALUES ($1, $2, $3, $4, NOW())
		`, voteID, startupName, userID, choice)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert vote: %w", err)
		}
	default:
		return uuid.Nil, fmt.Errorf("failed to check existing vote: %w", err)
	}

	if choice == domain.ChoiceCracked {
		crackedCount++
	} else {
		cookedCount++
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE startups SET cracked_count = $1, cooked_count = $2 WHERE id = $3
	`, crackedCount, cookedCount, startupID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to update startup counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return voteID, nil
}

func (r *voteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Vote, error) {
	query := `
		SELECT id, startup_name, user_id, choice, created_at
		FROM votes
		WHERE user_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.StartupName, &v.UserID, &v.Choice, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}
