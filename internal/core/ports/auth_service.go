package ports

import (
	"context"

	"github.com/homebase/household-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     string
	Address  string
	Work     string
	Image    string
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// AccountService handles operations on the caller's own account.
type AccountService interface {
	Me(ctx context.Context, identity domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, identity domain.Identity, userID string, update domain.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, identity domain.Identity, userID, currentPassword, newPassword string) error
	ChangeEmail(ctx context.Context, identity domain.Identity, userID, newEmail string) (*domain.User, error)
}

// LoginThrottle counts failed logins per account.
type LoginThrottle interface {
	// Blocked reports whether further attempts for key are refused.
	Blocked(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
