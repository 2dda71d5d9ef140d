// Package testutil holds in-memory stores that mirror the MongoDB
// repositories closely enough for service and router tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homebase/household-api/internal/core/domain"
)

// UserStore is an in-memory ports.UserRepository keyed by case-folded email.
type UserStore struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	byEmail map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.EmailKey(user.Email)
	if _, taken := s.byEmail[key]; taken {
		return nil, domain.ErrEmailInUse
	}
	stored := *user
	stored.ID = primitive.NewObjectID().Hex()
	s.byID[stored.ID] = &stored
	s.byEmail[key] = stored.ID

	out := stored
	return &out, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[domain.EmailKey(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *s.byID[id]
	return &out, nil
}

func (s *UserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (s *UserStore) UpdateProfile(_ context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.Work != nil {
		u.Work = *update.Work
	}
	if update.Image != nil {
		u.Image = *update.Image
	}
	u.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	out := *u
	return &out, nil
}

func (s *UserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *UserStore) UpdateEmail(_ context.Context, id, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	key := domain.EmailKey(email)
	if holder, taken := s.byEmail[key]; taken && holder != id {
		return nil, domain.ErrEmailInUse
	}
	delete(s.byEmail, domain.EmailKey(u.Email))
	u.Email = email
	s.byEmail[key] = id

	out := *u
	return &out, nil
}
