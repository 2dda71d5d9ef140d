package ports

import (
	"context"

	"github.com/homebase/household-api/internal/core/domain"
)

// OwnedService is the per-user CRUD contract shared by appliances, bills,
// inventory and tasks.
type OwnedService[T any] interface {
	Create(ctx context.Context, identity domain.Identity, doc *T) (*T, error)
	List(ctx context.Context, identity domain.Identity) ([]T, error)
	Get(ctx context.Context, identity domain.Identity, id string) (*T, error)
	Update(ctx context.Context, identity domain.Identity, id string, patch domain.Patch) (*T, error)
	Delete(ctx context.Context, identity domain.Identity, id string) (*T, error)
}
