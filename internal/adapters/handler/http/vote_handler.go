package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type recordVoteRequest struct {
	Choice string `json:"choice"`
}

type recordVoteResponse struct {
	VoteID string `json:"vote_id"`
}

// RecordVote godoc
// @Summary      Records the caller's CRACKED/COOKED vote for a startup
// @Description  A second vote by the same user overwrites the first.
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      401
// @Failure      404
// @Router       /api/startups/{name}/votes [post]
func (h *VoteHandler) RecordVote(w http.ResponseWriter, r *http.Request) {
	startupName := chi.URLParam(r, "name")
	if startupName == "" {
		http.Error(w, "missing startup name", http.StatusBadRequest)
		return
	}

	var req recordVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	identity := identityFrom(r)
	if identity == nil {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	input := ports.RecordVoteInput{
		StartupName: startupName,
		Choice:      req.Choice,
		Identity:    identity,
	}

	voteID, err := h.service.RecordVote(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidChoice) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if errors.Is(err, domain.ErrStartupNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recordVoteResponse{VoteID: voteID.String()}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *VoteHandler) ListMyVotes(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	if identity == nil {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	votes, err := h.service.ListMyVotes(r.Context(), identity)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if votes == nil {
		votes = []*domain.Vote{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(votes); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
