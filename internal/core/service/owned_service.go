package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
)

// ownedDoc constrains P to be *T and to carry the owned-document hooks.
type ownedDoc[T any] interface {
	*T
	domain.Owned
}

// OwnedService implements per-user CRUD over one collection. The caller's
// identity is the only source of ownership: client supplied owner fields are
// overwritten on create and stripped from updates.
type OwnedService[T any, P ownedDoc[T]] struct {
	repo ports.OwnedRepository[T]
	kind domain.ResourceKind
	log  zerolog.Logger
	now  func() time.Time
}

func NewOwnedService[T any, P ownedDoc[T]](repo ports.OwnedRepository[T], log zerolog.Logger) *OwnedService[T, P] {
	var zero T
	kind := P(&zero).Kind()
	return &OwnedService[T, P]{
		repo: repo,
		kind: kind,
		log:  log.With().Str("resource", string(kind)).Logger(),
		now:  time.Now,
	}
}

func (s *OwnedService[T, P]) Create(ctx context.Context, identity domain.Identity, doc *T) (*T, error) {
	owner, err := ownerOf(identity)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.Invalid("document is required")
	}

	p := P(doc)
	if err := p.Normalize(); err != nil {
		return nil, err
	}
	p.Initialize(primitive.NewObjectID(), owner, s.timestamp())

	if err := s.repo.Insert(ctx, doc); err != nil {
		s.log.Error().Err(err).Str("user_id", identity.UserID).Msg("insert failed")
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}
	s.log.Debug().Str("user_id", identity.UserID).Msg("created")
	return doc, nil
}

func (s *OwnedService[T, P]) List(ctx context.Context, identity domain.Identity) ([]T, error) {
	owner, err := ownerOf(identity)
	if err != nil {
		return nil, err
	}
	docs, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (s *OwnedService[T, P]) Get(ctx context.Context, identity domain.Identity, id string) (*T, error) {
	owner, docID, err := s.keys(identity, id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOwned(ctx, docID, owner)
}

// Update applies patch to the caller's document and returns the result.
func (s *OwnedService[T, P]) Update(ctx context.Context, identity domain.Identity, id string, patch domain.Patch) (*T, error) {
	owner, docID, err := s.keys(identity, id)
	if err != nil {
		return nil, err
	}

	set := patch.Sanitized()
	if len(set) == 0 {
		return nil, domain.Invalid("no updatable fields supplied")
	}
	set["updated_at"] = s.timestamp()

	doc, err := s.repo.UpdateOwned(ctx, docID, owner, set)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", identity.UserID).Str("id", id).Msg("updated")
	return doc, nil
}

func (s *OwnedService[T, P]) Delete(ctx context.Context, identity domain.Identity, id string) (*T, error) {
	owner, docID, err := s.keys(identity, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.repo.DeleteOwned(ctx, docID, owner)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("user_id", identity.UserID).Str("id", id).Msg("deleted")
	return doc, nil
}

// keys resolves the owner and document ids. An unparseable document id is
// indistinguishable from a missing one.
func (s *OwnedService[T, P]) keys(identity domain.Identity, id string) (primitive.ObjectID, primitive.ObjectID, error) {
	owner, err := ownerOf(identity)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	docID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrNotFound
	}
	return owner, docID, nil
}

// Stored timestamps keep millisecond precision.
func (s *OwnedService[T, P]) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func ownerOf(identity domain.Identity) (primitive.ObjectID, error) {
	if identity.UserID == "" {
		return primitive.NilObjectID, domain.ErrAuthMissing
	}
	owner, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return primitive.NilObjectID, domain.ErrTokenMalformed
	}
	return owner, nil
}

var (
	_ ports.OwnedService[domain.Bill] = (*OwnedService[domain.Bill, *domain.Bill])(nil)
	_ ports.AuthService               = (*AuthService)(nil)
	_ ports.AccountService            = (*AccountService)(nil)
	_ ports.TokenService              = (*TokenService)(nil)
)
