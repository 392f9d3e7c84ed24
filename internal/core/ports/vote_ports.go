package ports

import (
	"context"

	"github.com/crackd/api/internal/core/domain"
	"github.com/google/uuid"
)

type VoteRepository interface {
	// RecordVote inserts or overwrites the caller's vote for a startup and
	// adjusts the startup's counters, all within one transaction. It returns
	// the vote's ID, which is stable across overwrites.
	RecordVote(ctx context.Context, startupName string, userID uuid.UUID, choice domain.Choice) (uuid.UUID, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Vote, error)
}

type RecordVoteInput struct {
	StartupName string
	Choice      string
	Identity    *Identity
}

type VoteService interface {
	RecordVote(ctx context.Context, input RecordVoteInput) (uuid.UUID, error)
	ListMyVotes(ctx context.Context, identity *Identity) ([]*domain.Vote, error)
}
