package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/google/uuid"
)

type startupService struct {
	repo ports.StartupRepository
}

func NewStartupService(repo ports.StartupRepository) ports.StartupService {
	return &startupService{
		repo: repo,
	}
}

// Create validates and inserts a new startup. Validation order matters:
// missing name, then missing admin capability, then duplicate name.
func (s *startupService) Create(ctx context.Context, input ports.CreateStartupInput) (*domain.Startup, error) {
	if input.Name == "" {
		return nil, domain.ErrNameRequired
	}

	if input.Identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if !input.Identity.Admin {
		return nil, domain.ErrAdminRequired
	}

	existing, err := s.repo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing startup: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrStartupExists
	}

	startup := &domain.Startup{
		ID:           uuid.New(),
		Name:         input.Name,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		Category:     input.Category,
		CrackedCount: 0,
		CookedCount:  0,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Save(ctx, startup); err != nil {
		return nil, err
	}

	return startup, nil
}

func (s *startupService) GetStartup(ctx context.Context, id string) (*domain.Startup, error) {
	startupID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrStartupNotFound
	}

	return s.repo.GetByID(ctx, startupID)
}

func (s *startupService) ListStartups(ctx context.Context) ([]*domain.Startup, error) {
	return s.repo.GetAll(ctx)
}

func (s *startupService) Leaderboard(ctx context.Context) ([]domain.Entry, error) {
	startups, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch startups: %w", err)
	}
	return domain.Rank(startups), nil
}
