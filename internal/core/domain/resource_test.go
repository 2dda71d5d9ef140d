package domain

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDefaults(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	bill := &Bill{BillType: " Water ", Amount: 10, DueDate: due}
	if err := bill.Normalize(); err != nil {
		t.Fatalf("bill: unexpected error: %v", err)
	}
	if bill.Status != BillPending || bill.BillType != "Water" {
		t.Fatalf("bill: unexpected defaults: %+v", bill)
	}

	item := &InventoryItem{Name: "Rice", Category: "Pantry", Quantity: 2}
	if err := item.Normalize(); err != nil {
		t.Fatalf("inventory: unexpected error: %v", err)
	}
	if item.Status != InventoryAvailable {
		t.Fatalf("inventory: expected Available, got %q", item.Status)
	}

	task := &Task{Title: "Mop"}
	if err := task.Normalize(); err != nil {
		t.Fatalf("task: unexpected error: %v", err)
	}
	if task.Status != TaskPending || task.Description == nil {
		t.Fatalf("task: unexpected defaults: %+v", task)
	}

	appliance := &Appliance{Name: "Fridge", DateBought: due}
	if err := appliance.Normalize(); err != nil {
		t.Fatalf("appliance: unexpected error: %v", err)
	}
	if appliance.MaintenanceHistory == nil {
		t.Fatalf("appliance: expected empty history, got nil")
	}
}

func TestNormalizeRejects(t *testing.T) {
	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]Owned{
		"bill without type":       &Bill{Amount: 1, DueDate: due},
		"bill negative amount":    &Bill{BillType: "Gas", Amount: -1, DueDate: due},
		"bill without due date":   &Bill{BillType: "Gas", Amount: 1},
		"bill unknown status":     &Bill{BillType: "Gas", Amount: 1, DueDate: due, Status: "Overdue"},
		"inventory without cat":   &InventoryItem{Name: "Rice"},
		"inventory bad status":    &InventoryItem{Name: "Rice", Category: "Pantry", Status: "Gone"},
		"inventory negative qty":  &InventoryItem{Name: "Rice", Category: "Pantry", Quantity: -2},
		"task without title":      &Task{},
		"task unknown status":     &Task{Title: "Mop", Status: "Doing"},
		"appliance without date":  &Appliance{Name: "Fridge"},
		"appliance without name":  &Appliance{DateBought: due},
	}
	for name, doc := range cases {
		if err := doc.Normalize(); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestInitialize(t *testing.T) {
	id, owner := primitive.NewObjectID(), primitive.NewObjectID()
	now := time.Now().UTC()

	task := &Task{Title: "Mop"}
	task.Initialize(id, owner, now)

	if task.ID != id || task.UserID != owner {
		t.Fatalf("unexpected ids: %+v", task.Ownership)
	}
	if !task.CreatedAt.Equal(now) || !task.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", task.Ownership)
	}
}

func TestPatchSanitized(t *testing.T) {
	p := Patch{
		"status":     "Paid",
		"_id":        primitive.NewObjectID(),
		"user_id":    primitive.NewObjectID(),
		"created_at": time.Now(),
		"updated_at": time.Now(),
	}

	got := p.Sanitized()
	if len(got) != 1 || got["status"] != "Paid" {
		t.Fatalf("unexpected sanitized patch: %v", got)
	}
	if len(p) != 5 {
		t.Fatalf("expected original patch untouched, got %v", p)
	}
}
