package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/crackd/api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounterRepo struct {
	mu        sync.Mutex
	recounted []string
	failFor   string
}

func (r *fakeCounterRepo) RecountVotes(_ context.Context, startupName string) error {
	if startupName == r.failFor {
		return errors.New("recount failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recounted = append(r.recounted, startupName)
	return nil
}

func TestRecountAll(t *testing.T) {
	startupRepo := newFakeStartupRepo(
		&domain.Startup{ID: uuid.New(), Name: "a"},
		&domain.Startup{ID: uuid.New(), Name: "b"},
		&domain.Startup{ID: uuid.New(), Name: "c"},
	)
	counterRepo := &fakeCounterRepo{}
	svc := NewRecountService(startupRepo, counterRepo)

	require.NoError(t, svc.RecountAll(context.Background()))

	sort.Strings(counterRepo.recounted)
	assert.Equal(t, []string{"a", "b", "c"}, counterRepo.recounted)
}

func TestRecountAllPropagatesFailure(t *testing.T) {
	startupRepo := newFakeStartupRepo(
		&domain.Startup{ID: uuid.New(), Name: "a"},
		&domain.Startup{ID: uuid.New(), Name: "b"},
	)
	svc := NewRecountService(startupRepo, &fakeCounterRepo{failFor: "b"})

	err := svc.RecountAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b")
}
