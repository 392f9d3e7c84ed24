package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStartupService struct {
	createErr error
	startup   *domain.Startup
	entries   []domain.Entry
}

func (s *stubStartupService) Create(_ context.Context, input ports.CreateStartupInput) (*domain.Startup, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &domain.Startup{ID: uuid.New(), Name: input.Name}, nil
}

func (s *stubStartupService) GetStartup(_ context.Context, _ string) (*domain.Startup, error) {
	if s.startup == nil {
		return nil, domain.ErrStartupNotFound
	}
	return s.startup, nil
}

func (s *stubStartupService) ListStartups(_ context.Context) ([]*domain.Startup, error) {
	if s.startup == nil {
		return nil, nil
	}
	return []*domain.Startup{s.startup}, nil
}

func (s *stubStartupService) Leaderboard(_ context.Context) ([]domain.Entry, error) {
	return s.entries, nil
}

type stubVoteService struct {
	recordErr error
	voteID    uuid.UUID
	lastInput ports.RecordVoteInput
}

func (s *stubVoteService) RecordVote(_ context.Context, input ports.RecordVoteInput) (uuid.UUID, error) {
	s.lastInput = input
	if s.recordErr != nil {
		return uuid.Nil, s.recordErr
	}
	return s.voteID, nil
}

func (s *stubVoteService) ListMyVotes(_ context.Context, identity *ports.Identity) ([]*domain.Vote, error) {
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	return []*domain.Vote{{ID: uuid.New(), StartupName: "Acme", UserID: identity.UserID, Choice: domain.ChoiceCooked}}, nil
}

type stubAuthService struct {
	identity *ports.Identity
}

func (s *stubAuthService) LoginWithGoogle(context.Context, string) (string, string, error) {
	return "", "", nil
}

func (s *stubAuthService) RefreshAccessToken(context.Context, string) (string, string, error) {
	return "", "", nil
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) VerifyAccessToken(token string) (*ports.Identity, error) {
	if token == "valid" && s.identity != nil {
		return s.identity, nil
	}
	return nil, domain.ErrUnauthorized
}

func newTestRouter(startupSvc ports.StartupService, voteSvc ports.VoteService, authSvc ports.AuthService) http.Handler {
	return NewHandler(
		NewStartupHandler(startupSvc),
		NewVoteHandler(voteSvc),
		nil,
		nil,
		authSvc,
		[]string{"*"},
	)
}

func TestRecordVoteRequiresIdentity(t *testing.T) {
	voteSvc := &stubVoteService{voteID: uuid.New()}
	router := newTestRouter(&stubStartupService{}, voteSvc, &stubAuthService{})

	body := bytes.NewReader([]byte(`{"choice":"CRACKED"}`))
	req := httptest.NewRequest("POST", "/api/startups/Acme/votes", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The service must not be reached without a resolved identity.
	assert.Empty(t, voteSvc.lastInput.StartupName)
}

func TestRecordVoteAuthenticated(t *testing.T) {
	identity := &ports.Identity{UserID: uuid.New()}
	voteSvc := &stubVoteService{voteID: uuid.New()}
	router := newTestRouter(&stubStartupService{}, voteSvc, &stubAuthService{identity: identity})

	body := bytes.NewReader([]byte(`{"choice":"CRACKED"}`))
	req := httptest.NewRequest("POST", "/api/startups/Acme/votes", body)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "valid"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, voteSvc.voteID.String(), resp["vote_id"])
	assert.Equal(t, "Acme", voteSvc.lastInput.StartupName)
	assert.Equal(t, identity.UserID, voteSvc.lastInput.Identity.UserID)
}

func TestRecordVoteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"invalid choice", domain.ErrInvalidChoice, http.StatusBadRequest},
		{"startup not found", domain.ErrStartupNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(
				&stubStartupService{},
				&stubVoteService{recordErr: tt.serviceErr},
				&stubAuthService{identity: &ports.Identity{UserID: uuid.New()}},
			)

			body := bytes.NewReader([]byte(`{"choice":"CRACKED"}`))
			req := httptest.NewRequest("POST", "/api/startups/Acme/votes", body)
			req.AddCookie(&http.Cookie{Name: "access_token", Value: "valid"})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateStartupErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing name", domain.ErrNameRequired, http.StatusBadRequest},
		{"not admin", domain.ErrAdminRequired, http.StatusUnauthorized},
		{"unauthenticated", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"duplicate", domain.ErrStartupExists, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubStartupService{createErr: tt.serviceErr}, &stubVoteService{}, &stubAuthService{})

			body := bytes.NewReader([]byte(`{"name":"Acme"}`))
			req := httptest.NewRequest("POST", "/api/startups", body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestListMyVotes(t *testing.T) {
	identity := &ports.Identity{UserID: uuid.New()}
	router := newTestRouter(&stubStartupService{}, &stubVoteService{}, &stubAuthService{identity: identity})

	req := httptest.NewRequest("GET", "/api/votes/mine", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("GET", "/api/votes/mine", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "valid"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var votes []domain.Vote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&votes))
	require.Len(t, votes, 1)
	assert.Equal(t, domain.ChoiceCooked, votes[0].Choice)
}

func TestLeaderboardEndpoint(t *testing.T) {
	entries := []domain.Entry{
		{Position: 1, Startup: &domain.Startup{Name: "x", CrackedCount: 8, CookedCount: 2}, Ratio: 0.8, Trend: domain.TrendCracked},
		{Position: 2, Startup: &domain.Startup{Name: "y", CrackedCount: 3, CookedCount: 7}, Ratio: 0.3, Trend: domain.TrendCooked},
	}
	router := newTestRouter(&stubStartupService{entries: entries}, &stubVoteService{}, &stubAuthService{})

	req := httptest.NewRequest("GET", "/api/startups/leaderboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "x", got[0].Startup.Name)
	assert.Equal(t, domain.TrendCracked, got[0].Trend)
}
