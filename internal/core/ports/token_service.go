package ports

import (
	"time"

	"github.com/homebase/household-api/internal/core/domain"
)

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	// Issue signs a token for identity. A non-positive ttl selects the default.
	Issue(identity domain.Identity, ttl time.Duration) (string, error)
}

// TokenVerifier checks tokens presented by clients.
type TokenVerifier interface {
	// Verify returns domain.ErrTokenExpired or domain.ErrTokenMalformed on failure.
	Verify(token string) (domain.Identity, error)
}

// TokenService issues and verifies identity tokens.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
