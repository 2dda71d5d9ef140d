package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homebase/household-api/internal/core/domain"
)

const (
	collectionAppliances = "appliances"
	collectionBills      = "bills"
	collectionInventory  = "inventory"
	collectionTasks      = "tasks"
)

// OwnedRepository stores one per-user collection. Every filter conjoins the
// document id with user_id, so another user's document is never matched.
type OwnedRepository[T any] struct {
	col *mongo.Collection
}

func NewOwnedRepository[T any](db *mongo.Database, collection string) *OwnedRepository[T] {
	return &OwnedRepository[T]{col: db.Collection(collection)}
}

func NewApplianceRepository(db *mongo.Database) *OwnedRepository[domain.Appliance] {
	return NewOwnedRepository[domain.Appliance](db, collectionAppliances)
}

func NewBillRepository(db *mongo.Database) *OwnedRepository[domain.Bill] {
	return NewOwnedRepository[domain.Bill](db, collectionBills)
}

func NewInventoryRepository(db *mongo.Database) *OwnedRepository[domain.InventoryItem] {
	return NewOwnedRepository[domain.InventoryItem](db, collectionInventory)
}

func NewTaskRepository(db *mongo.Database) *OwnedRepository[domain.Task] {
	return NewOwnedRepository[domain.Task](db, collectionTasks)
}

func (r *OwnedRepository[T]) Insert(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}
	return nil
}

// ListByOwner returns the owner's documents, newest first.
func (r *OwnedRepository[T]) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return out, nil
}

func (r *OwnedRepository[T]) FindOwned(ctx context.Context, id, owner primitive.ObjectID) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.decode(r.col.FindOne(ctx, ownedFilter(id, owner)))
}

func (r *OwnedRepository[T]) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, set domain.Patch) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return r.decode(r.col.FindOneAndUpdate(ctx, ownedFilter(id, owner), bson.M{"$set": bson.M(set)}, opts))
}

func (r *OwnedRepository[T]) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.decode(r.col.FindOneAndDelete(ctx, ownedFilter(id, owner)))
}

// EnsureIndexes creates the owner listing index.
func (r *OwnedRepository[T]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func (r *OwnedRepository[T]) decode(res *mongo.SingleResult) (*T, error) {
	var doc T
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", r.col.Name(), err)
	}
	return &doc, nil
}

func ownedFilter(id, owner primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "user_id": owner}
}
