package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/testutil"
)

var (
	alice = domain.Identity{UserID: primitive.NewObjectID().Hex(), Role: domain.RoleMember}
	bob   = domain.Identity{UserID: primitive.NewObjectID().Hex(), Role: domain.RoleAdmin}
)

func newBillService() (*OwnedService[domain.Bill, *domain.Bill], *testutil.OwnedStore[domain.Bill]) {
	store := testutil.NewOwnedStore[domain.Bill]()
	return NewOwnedService[domain.Bill, *domain.Bill](store, zerolog.Nop()), store
}

func newBill() *domain.Bill {
	return &domain.Bill{
		BillType: "Electricity",
		Amount:   42.5,
		DueDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOwnedService_CreateStampsOwner(t *testing.T) {
	svc, _ := newBillService()

	spoofed := newBill()
	spoofed.UserID = primitive.NewObjectID()

	created, err := svc.Create(context.Background(), alice, spoofed)
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, created.UserID.Hex())
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, domain.BillPending, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestOwnedService_CreateRoundTrip(t *testing.T) {
	svc, _ := newBillService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, newBill())
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, alice, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, *created, *fetched)
}

func TestOwnedService_CreateRejectsInvalid(t *testing.T) {
	svc, store := newBillService()

	bill := newBill()
	bill.BillType = " "
	_, err := svc.Create(context.Background(), alice, bill)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, store.Len())

	_, err = svc.Create(context.Background(), domain.Identity{}, newBill())
	assert.ErrorIs(t, err, domain.ErrAuthMissing)
}

func TestOwnedService_ListIsolation(t *testing.T) {
	svc, _ := newBillService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, alice, newBill())
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, bob, newBill())
	require.NoError(t, err)

	aliceBills, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceBills, 2)
	for _, b := range aliceBills {
		assert.Equal(t, alice.UserID, b.UserID.Hex())
	}

	empty, err := svc.List(ctx, domain.Identity{UserID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestOwnedService_ForeignDocumentsLookMissing(t *testing.T) {
	svc, store := newBillService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, newBill())
	require.NoError(t, err)
	id := created.ID.Hex()

	_, err = svc.Get(ctx, bob, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Update(ctx, bob, id, domain.Patch{"status": domain.BillPaid})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Delete(ctx, bob, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 1, store.Len())
	unchanged, err := svc.Get(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, domain.BillPending, unchanged.Status)
}

func TestOwnedService_MalformedID(t *testing.T) {
	svc, _ := newBillService()

	_, err := svc.Get(context.Background(), alice, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOwnedService_UpdateKeepsOwnership(t *testing.T) {
	svc, _ := newBillService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, newBill())
	require.NoError(t, err)

	start := created.CreatedAt
	svc.now = func() time.Time { return start.Add(time.Minute) }

	updated, err := svc.Update(ctx, alice, created.ID.Hex(), domain.Patch{
		"status":     domain.BillPaid,
		"user_id":    primitive.NewObjectID(),
		"created_at": time.Time{},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BillPaid, updated.Status)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, start.Add(time.Minute), updated.UpdatedAt)
	assert.Equal(t, created.BillType, updated.BillType)

	_, err = svc.Update(ctx, alice, created.ID.Hex(), domain.Patch{"_id": primitive.NewObjectID()})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOwnedService_DeleteReturnsDocument(t *testing.T) {
	svc, store := newBillService()
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, newBill())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, alice, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Zero(t, store.Len())

	_, err = svc.Get(ctx, alice, created.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
