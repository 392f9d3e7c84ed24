package ports

import (
	"context"

	"github.com/crackd/api/internal/core/domain"
)

type AuthRepository interface {
	StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
}

// TokenPayload is the verified identity-provider claim set.
type TokenPayload struct {
	Email string
	Name  string
}

// TokenVerifier validates an identity-provider credential (a Google ID
// token in production) and returns its payload.
type TokenVerifier interface {
	Verify(ctx context.Context, token string, clientID string) (*TokenPayload, error)
}

type AuthService interface {
	// LoginWithGoogle exchanges a Google credential for an access token and
	// a refresh token.
	LoginWithGoogle(ctx context.Context, googleToken string) (string, string, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	// VerifyAccessToken parses a signed access token into the caller identity.
	VerifyAccessToken(tokenString string) (*Identity, error)
}
