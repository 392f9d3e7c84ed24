package http

import (
	"context"
	"net/http"

	"github.com/crackd/api/internal/core/ports"
)

type contextKey string

// IdentityKey holds the resolved *ports.Identity for authenticated requests.
const IdentityKey contextKey = "identity"

// Authenticator resolves the caller identity from the access_token cookie
// and stores it in the request context. Requests without a valid token pass
// through unauthenticated; handlers that need an identity reject those with
// 401 themselves.
func Authenticator(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("access_token")
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := authService.VerifyAccessToken(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFrom(r *http.Request) *ports.Identity {
	identity, ok := r.Context().Value(IdentityKey).(*ports.Identity)
	if !ok {
		return nil
	}
	return identity
}
