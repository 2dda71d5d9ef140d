package testutil

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homebase/household-api/internal/core/domain"
)

// OwnedStore is an in-memory ports.OwnedRepository. Documents are kept as
// BSON so that field names, patches and time precision behave as they do in
// MongoDB.
type OwnedStore[T any] struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]bson.M
	order []primitive.ObjectID
}

func NewOwnedStore[T any]() *OwnedStore[T] {
	return &OwnedStore[T]{docs: make(map[primitive.ObjectID]bson.M)}
}

func (s *OwnedStore[T]) Insert(_ context.Context, doc *T) error {
	m, err := toM(doc)
	if err != nil {
		return err
	}
	id, ok := m["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		return fmt.Errorf("insert: document has no _id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[id]; exists {
		return fmt.Errorf("insert: duplicate _id %s", id.Hex())
	}
	s.docs[id] = m
	s.order = append(s.order, id)
	return nil
}

// ListByOwner returns the owner's documents, newest first.
func (s *OwnedStore[T]) ListByOwner(_ context.Context, owner primitive.ObjectID) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []T{}
	for i := len(s.order) - 1; i >= 0; i-- {
		m, ok := s.docs[s.order[i]]
		if !ok || m["user_id"] != owner {
			continue
		}
		doc, err := fromM[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (s *OwnedStore[T]) FindOwned(_ context.Context, id, owner primitive.ObjectID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.owned(id, owner)
	if err != nil {
		return nil, err
	}
	return fromM[T](m)
}

func (s *OwnedStore[T]) UpdateOwned(_ context.Context, id, owner primitive.ObjectID, set domain.Patch) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.owned(id, owner)
	if err != nil {
		return nil, err
	}
	for k, v := range set {
		m[k] = v
	}
	// Round-trip so the stored form matches what a decode would produce.
	m, err = toM(m)
	if err != nil {
		return nil, err
	}
	s.docs[id] = m
	return fromM[T](m)
}

func (s *OwnedStore[T]) DeleteOwned(_ context.Context, id, owner primitive.ObjectID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.owned(id, owner)
	if err != nil {
		return nil, err
	}
	delete(s.docs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return fromM[T](m)
}

// Len returns the number of stored documents across all owners.
func (s *OwnedStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *OwnedStore[T]) owned(id, owner primitive.ObjectID) (bson.M, error) {
	m, ok := s.docs[id]
	if !ok || m["user_id"] != owner {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func toM(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromM[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
