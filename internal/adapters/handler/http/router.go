package http

import (
	"net/http"

	"github.com/crackd/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewHandler(
	startupHandler *StartupHandler,
	voteHandler *VoteHandler,
	userHandler *UserHandler,
	authHandler *AuthHandler,
	authService ports.AuthService,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(Authenticator(authService))

	r.Route("/api", func(r chi.Router) {
		r.Route("/startups", func(r chi.Router) {
			r.Get("/", startupHandler.ListStartups)
			r.Post("/", startupHandler.CreateStartup)
			r.Get("/leaderboard", startupHandler.Leaderboard)
			r.Get("/{id}", startupHandler.GetStartup)
			r.Post("/{name}/votes", voteHandler.RecordVote)
		})

		r.Route("/votes", func(r chi.Router) {
			r.Get("/mine", voteHandler.ListMyVotes)
		})

		if userHandler != nil {
			r.Get("/me", userHandler.GetMe)
		}
	})

	if authHandler != nil {
		r.Route("/oauth", func(r chi.Router) {
			r.Post("/callback", authHandler.GoogleCallback)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})
	}

	return r
}
