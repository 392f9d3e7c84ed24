package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type StartupHandler struct {
	service ports.StartupService
}

func NewStartupHandler(service ports.StartupService) *StartupHandler {
	return &StartupHandler{
		service: service,
	}
}

type createStartupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

type createStartupResponse struct {
	ID string `json:"id"`
}

// CreateStartup godoc
// @Summary      Registers a new votable startup
// @Description  Requires an authenticated identity carrying the admin claim.
// @Tags         startups
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      401
// @Failure      409
// @Router       /api/startups [post]
func (h *StartupHandler) CreateStartup(w http.ResponseWriter, r *http.Request) {
	var req createStartupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateStartupInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Identity:    identityFrom(r),
	}

	startup, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrAdminRequired) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if errors.Is(err, domain.ErrStartupExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(createStartupResponse{ID: startup.ID.String()}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *StartupHandler) ListStartups(w http.ResponseWriter, r *http.Request) {
	startups, err := h.service.ListStartups(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if startups == nil {
		startups = []*domain.Startup{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(startups); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *StartupHandler) GetStartup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing startup id", http.StatusBadRequest)
		return
	}

	startup, err := h.service.GetStartup(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStartupNotFound) {
			http.Error(w, "startup not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(startup); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Leaderboard returns all startups ranked by cracked ratio, best first.
func (h *StartupHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
