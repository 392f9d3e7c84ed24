package ports

import (
	"context"

	"github.com/crackd/api/internal/core/domain"
	"github.com/google/uuid"
)

type StartupRepository interface {
	Save(ctx context.Context, startup *domain.Startup) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Startup, error)
	GetByName(ctx context.Context, name string) (*domain.Startup, error)
	GetAll(ctx context.Context) ([]*domain.Startup, error)
}

// Identity is the resolved caller identity, as produced by the auth
// middleware from the access token.
type Identity struct {
	UserID uuid.UUID
	Admin  bool
}

type CreateStartupInput struct {
	Name        string
	Description string
	ImageURL    string
	Category    string
	Identity    *Identity
}

type StartupService interface {
	Create(ctx context.Context, input CreateStartupInput) (*domain.Startup, error)
	GetStartup(ctx context.Context, id string) (*domain.Startup, error)
	ListStartups(ctx context.Context) ([]*domain.Startup, error)
	Leaderboard(ctx context.Context) ([]domain.Entry, error)
}
