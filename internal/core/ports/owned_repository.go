package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homebase/household-api/internal/core/domain"
)

// OwnedRepository persists documents of one per-user collection. Every read
// and write takes the owner and conjoins it into the same store query, so a
// document owned by someone else is reported as domain.ErrNotFound.
type OwnedRepository[T any] interface {
	Insert(ctx context.Context, doc *T) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]T, error)
	FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*T, error)
	// UpdateOwned applies set and returns the document after the update.
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, set domain.Patch) (*T, error)
	// DeleteOwned removes the document and returns it as it was.
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*T, error)
}
