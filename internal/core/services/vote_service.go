package services

import (
	"context"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/google/uuid"
)

type voteService struct {
	voteRepo ports.VoteRepository
}

func NewVoteService(voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		voteRepo: voteRepo,
	}
}

// RecordVote records the caller's vote for a startup. The repository
// performs the lookup, insert-or-overwrite and counter adjustment in a
// single transaction; re-voting the same choice is a no-op on counters but
// still refreshes the vote's timestamp.
func (s *voteService) RecordVote(ctx context.Context, input ports.RecordVoteInput) (uuid.UUID, error) {
	if input.Identity == nil {
		return uuid.Nil, domain.ErrUnauthorized
	}

	choice, err := domain.ParseChoice(input.Choice)
	if err != nil {
		return uuid.Nil, err
	}

	return s.voteRepo.RecordVote(ctx, input.StartupName, input.Identity.UserID, choice)
}

func (s *voteService) ListMyVotes(ctx context.Context, identity *ports.Identity) ([]*domain.Vote, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.voteRepo.ListByUser(ctx, identity.UserID)
}
