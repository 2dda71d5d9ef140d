package domain

import (
	"strings"
	"time"
)

// InventoryStatus tells whether an item is in stock.
type InventoryStatus string

const (
	InventoryAvailable  InventoryStatus = "Available"
	InventoryOutOfStock InventoryStatus = "Out of Stock"
)

// InventoryItem is a stocked household supply.
type InventoryItem struct {
	Ownership      `bson:",inline"`
	Name           string          `json:"name"                     bson:"name"`
	Category       string          `json:"category"                 bson:"category"`
	Quantity       float64         `json:"quantity"                 bson:"quantity"`
	Unit           string          `json:"unit"                     bson:"unit"`
	PurchaseDate   *time.Time      `json:"purchaseDate,omitempty"   bson:"purchase_date,omitempty"`
	ExpirationDate *time.Time      `json:"expirationDate,omitempty" bson:"expiration_date,omitempty"`
	Location       string          `json:"location"                 bson:"location"`
	Status         InventoryStatus `json:"status"                   bson:"status"`
}

func (i *InventoryItem) Kind() ResourceKind { return KindInventory }

func (i *InventoryItem) Normalize() error {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
	if i.Name == "" {
		return Invalid("name is required")
	}
	if i.Category == "" {
		return Invalid("category is required")
	}
	if i.Quantity < 0 {
		return Invalid("quantity must not be negative")
	}
	switch i.Status {
	case "":
		i.Status = InventoryAvailable
	case InventoryAvailable, InventoryOutOfStock:
	default:
		return Invalid("status must be one of: Available, Out of Stock")
	}
	return nil
}
