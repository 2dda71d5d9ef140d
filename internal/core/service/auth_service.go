package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenIssuer
	hasher   PasswordHasher
	throttle ports.LoginThrottle
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthService wires the credential store and token issuer. A nil throttle
// disables login lockout.
func NewAuthService(repo ports.UserRepository, tokens ports.TokenIssuer, hasher PasswordHasher, throttle ports.LoginThrottle, log zerolog.Logger) *AuthService {
	if throttle == nil {
		throttle = noThrottle{}
	}
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		hasher:   hasher,
		throttle: throttle,
		log:      log.With().Str("component", "auth").Logger(),
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if fullName == "" || email == "" || in.Password == "" || strings.TrimSpace(in.Role) == "" {
		return nil, domain.Invalid("fullName, email, password and role are required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailInUse
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Address:      strings.TrimSpace(in.Address),
		Work:         strings.TrimSpace(in.Work),
		Image:        in.Image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, domain.Invalid("email and password are required")
	}

	key := domain.EmailKey(email)
	if s.blocked(ctx, key) {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, key)
			return "", nil, err
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Matches(user.PasswordHash, password) {
		s.recordFailure(ctx, key)
		s.log.Warn().Str("user_id", user.ID).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role, Email: user.Email}, 0)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	if err := s.throttle.Reset(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("login throttle reset failed")
	}
	return token, user, nil
}

// blocked fails open: a throttle outage must not lock every user out.
func (s *AuthService) blocked(ctx context.Context, key string) bool {
	blocked, err := s.throttle.Blocked(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle unavailable")
		return false
	}
	return blocked
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if err := s.throttle.RecordFailure(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.Invalid("email must be a valid address")
	}
	return nil
}

type noThrottle struct{}

func (noThrottle) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noThrottle) RecordFailure(context.Context, string) error   { return nil }
func (noThrottle) Reset(context.Context, string) error           { return nil }
