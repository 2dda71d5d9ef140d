package ports

import (
	"context"

	"github.com/homebase/household-api/internal/core/domain"
)

// UserRepository is the credential store. Email lookups are case-insensitive.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrEmailInUse when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// UpdateEmail returns domain.ErrEmailInUse when another user holds the address.
	UpdateEmail(ctx context.Context, id, email string) (*domain.User, error)
}
