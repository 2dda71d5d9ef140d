package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceKind names a per-user collection.
type ResourceKind string

const (
	KindAppliance ResourceKind = "appliance"
	KindBill      ResourceKind = "bill"
	KindInventory ResourceKind = "inventory"
	KindTask      ResourceKind = "task"
)

// Owned is implemented by pointers to documents that belong to exactly one user.
type Owned interface {
	Kind() ResourceKind
	// Initialize stamps a new document with its id, owner and timestamps.
	Initialize(id, owner primitive.ObjectID, now time.Time)
	// Normalize applies defaults and rejects documents missing required fields.
	Normalize() error
}

// Ownership is embedded by every owned document.
type Ownership struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id"`
	UserID    primitive.ObjectID `json:"userId"    bson:"user_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

func (o *Ownership) Initialize(id, owner primitive.ObjectID, now time.Time) {
	o.ID = id
	o.UserID = owner
	o.CreatedAt = now
	o.UpdatedAt = now
}

// Patch is a partial update keyed by stored field name.
type Patch map[string]any

var protectedFields = []string{"_id", "user_id", "created_at", "updated_at"}

// Sanitized returns a copy of p without identity, ownership or timestamp fields.
func (p Patch) Sanitized() Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, f := range protectedFields {
		delete(out, f)
	}
	return out
}
