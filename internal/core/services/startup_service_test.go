package services

import (
	"context"
	"testing"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStartupRepo struct {
	byName map[string]*domain.Startup
	byID   map[uuid.UUID]*domain.Startup
	saved  []*domain.Startup
}

func newFakeStartupRepo(startups ...*domain.Startup) *fakeStartupRepo {
	r := &fakeStartupRepo{
		byName: make(map[string]*domain.Startup),
		byID:   make(map[uuid.UUID]*domain.Startup),
	}
	for _, s := range startups {
		r.byName[s.Name] = s
		r.byID[s.ID] = s
	}
	return r
}

func (r *fakeStartupRepo) Save(_ context.Context, startup *domain.Startup) error {
	if _, ok := r.byName[startup.Name]; ok {
		return domain.ErrStartupExists
	}
	r.byName[startup.Name] = startup
	r.byID[startup.ID] = startup
	r.saved = append(r.saved, startup)
	return nil
}

func (r *fakeStartupRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Startup, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStartupNotFound
	}
	return s, nil
}

func (r *fakeStartupRepo) GetByName(_ context.Context, name string) (*domain.Startup, error) {
	return r.byName[name], nil
}

func (r *fakeStartupRepo) GetAll(_ context.Context) ([]*domain.Startup, error) {
	var out []*domain.Startup
	for _, s := range r.byName {
		out = append(out, s)
	}
	return out, nil
}

func admin() *ports.Identity {
	return &ports.Identity{UserID: uuid.New(), Admin: true}
}

func TestCreateStartup(t *testing.T) {
	repo := newFakeStartupRepo()
	svc := NewStartupService(repo)

	startup, err := svc.Create(context.Background(), ports.CreateStartupInput{
		Name:        "Acme",
		Description: "rockets",
		Category:    "aerospace",
		Identity:    admin(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", startup.Name)
	assert.EqualValues(t, 0, startup.CrackedCount)
	assert.EqualValues(t, 0, startup.CookedCount)
	assert.False(t, startup.CreatedAt.IsZero())
	require.Len(t, repo.saved, 1)
}

func TestCreateStartupRequiresName(t *testing.T) {
	svc := NewStartupService(newFakeStartupRepo())

	// The name check runs before the identity check.
	_, err := svc.Create(context.Background(), ports.CreateStartupInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestCreateStartupRequiresAdmin(t *testing.T) {
	repo := newFakeStartupRepo()
	svc := NewStartupService(repo)

	_, err := svc.Create(context.Background(), ports.CreateStartupInput{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Create(context.Background(), ports.CreateStartupInput{
		Name:     "Acme",
		Identity: &ports.Identity{UserID: uuid.New(), Admin: false},
	})
	assert.ErrorIs(t, err, domain.ErrAdminRequired)

	assert.Empty(t, repo.saved)
}

func TestCreateStartupDuplicateName(t *testing.T) {
	repo := newFakeStartupRepo()
	svc := NewStartupService(repo)

	_, err := svc.Create(context.Background(), ports.CreateStartupInput{Name: "Acme", Identity: admin()})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), ports.CreateStartupInput{Name: "Acme", Identity: admin()})
	assert.ErrorIs(t, err, domain.ErrStartupExists)
	assert.Len(t, repo.saved, 1)
}

func TestGetStartupInvalidID(t *testing.T) {
	svc := NewStartupService(newFakeStartupRepo())

	_, err := svc.GetStartup(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrStartupNotFound)
}

func TestLeaderboard(t *testing.T) {
	repo := newFakeStartupRepo(
		&domain.Startup{ID: uuid.New(), Name: "x", CrackedCount: 8, CookedCount: 2},
		&domain.Startup{ID: uuid.New(), Name: "y", CrackedCount: 3, CookedCount: 7},
		&domain.Startup{ID: uuid.New(), Name: "z"},
	)
	svc := NewStartupService(repo)

	entries, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "x", entries[0].Startup.Name)
	assert.Equal(t, "y", entries[1].Startup.Name)
	assert.Equal(t, "z", entries[2].Startup.Name)
}
