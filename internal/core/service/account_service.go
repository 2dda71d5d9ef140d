package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
)

// AccountService serves the caller's own account. Operations addressed to
// another user's id report domain.ErrUserNotFound.
type AccountService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	log    zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, hasher PasswordHasher, log zerolog.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		hasher: hasher,
		log:    log.With().Str("component", "account").Logger(),
	}
}

func (s *AccountService) Me(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if identity.UserID == "" {
		return nil, domain.ErrAuthMissing
	}
	return s.repo.FindByID(ctx, identity.UserID)
}

// UpdateProfile changes the non-empty fields of update. Blank values are
// ignored rather than clearing the stored field.
func (s *AccountService) UpdateProfile(ctx context.Context, identity domain.Identity, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	if !identity.Owns(userID) {
		return nil, domain.ErrUserNotFound
	}

	update = domain.ProfileUpdate{
		FullName: nonBlank(update.FullName),
		Address:  nonBlank(update.Address),
		Work:     nonBlank(update.Work),
		Image:    nonBlank(update.Image),
	}
	if update.Empty() {
		return nil, domain.Invalid("no profile fields supplied")
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, identity domain.Identity, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.Invalid("currentPassword and newPassword are required")
	}
	if !identity.Owns(userID) {
		return domain.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Matches(user.PasswordHash, currentPassword) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func (s *AccountService) ChangeEmail(ctx context.Context, identity domain.Identity, userID, newEmail string) (*domain.User, error) {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" {
		return nil, domain.Invalid("newEmail is required")
	}
	if err := validateEmail(newEmail); err != nil {
		return nil, err
	}
	if !identity.Owns(userID) {
		return nil, domain.ErrUserNotFound
	}

	existing, err := s.repo.FindByEmail(ctx, newEmail)
	switch {
	case err == nil && existing.ID != userID:
		return nil, domain.ErrEmailInUse
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("change email: %w", err)
	}

	user, err := s.repo.UpdateEmail(ctx, userID, newEmail)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("email changed")
	return user, nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
