package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
)

type createInventoryRequest struct {
	Name           string   `json:"name"           validate:"required"`
	Category       string   `json:"category"       validate:"required"`
	Quantity       *float64 `json:"quantity"       validate:"required,gte=0"`
	Unit           string   `json:"unit"`
	PurchaseDate   string   `json:"purchaseDate"   validate:"omitempty,date"`
	ExpirationDate string   `json:"expirationDate" validate:"omitempty,date"`
	Location       string   `json:"location"`
	Status         string   `json:"status"         validate:"omitempty,oneof='Available' 'Out of Stock'"`
}

type updateInventoryRequest struct {
	Name           *string  `json:"name"           validate:"omitempty,min=1"`
	Category       *string  `json:"category"       validate:"omitempty,min=1"`
	Quantity       *float64 `json:"quantity"       validate:"omitempty,gte=0"`
	Unit           *string  `json:"unit"`
	PurchaseDate   *string  `json:"purchaseDate"   validate:"omitempty,date"`
	ExpirationDate *string  `json:"expirationDate" validate:"omitempty,date"`
	Location       *string  `json:"location"`
	Status         *string  `json:"status"         validate:"omitempty,oneof='Available' 'Out of Stock'"`
}

// InventorySchema is the wire format of /inventory.
var InventorySchema = ResourceSchema[domain.InventoryItem]{
	Kind:         domain.KindInventory,
	DecodeCreate: decodeInventoryCreate,
	DecodePatch:  decodeInventoryPatch,
}

func decodeInventoryCreate(c echo.Context) (*domain.InventoryItem, error) {
	var req createInventoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	purchased, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		return nil, domain.Invalid("purchaseDate must be a date")
	}
	expires, err := parseOptionalDate(req.ExpirationDate)
	if err != nil {
		return nil, domain.Invalid("expirationDate must be a date")
	}

	return &domain.InventoryItem{
		Name:           req.Name,
		Category:       req.Category,
		Quantity:       *req.Quantity,
		Unit:           req.Unit,
		PurchaseDate:   purchased,
		ExpirationDate: expires,
		Location:       req.Location,
		Status:         domain.InventoryStatus(req.Status),
	}, nil
}

func decodeInventoryPatch(c echo.Context) (domain.Patch, error) {
	var req updateInventoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return newPatch().
		str("name", req.Name).
		str("category", req.Category).
		num("quantity", req.Quantity).
		str("unit", req.Unit).
		date("purchase_date", req.PurchaseDate).
		date("expiration_date", req.ExpirationDate).
		str("location", req.Location).
		str("status", req.Status).
		build()
}
