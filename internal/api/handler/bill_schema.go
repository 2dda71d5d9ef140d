package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
)

type createBillRequest struct {
	BillType string   `json:"billType" validate:"required"`
	Amount   *float64 `json:"amount"   validate:"required,gte=0"`
	DueDate  string   `json:"dueDate"  validate:"required,date"`
	Status   string   `json:"status"   validate:"omitempty,oneof=Pending Paid"`
}

type updateBillRequest struct {
	BillType *string  `json:"billType" validate:"omitempty,min=1"`
	Amount   *float64 `json:"amount"   validate:"omitempty,gte=0"`
	DueDate  *string  `json:"dueDate"  validate:"omitempty,date"`
	Status   *string  `json:"status"   validate:"omitempty,oneof=Pending Paid"`
}

// BillSchema is the wire format of /bills.
var BillSchema = ResourceSchema[domain.Bill]{
	Kind:         domain.KindBill,
	DecodeCreate: decodeBillCreate,
	DecodePatch:  decodeBillPatch,
}

func decodeBillCreate(c echo.Context) (*domain.Bill, error) {
	var req createBillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	due, err := parseDate(req.DueDate)
	if err != nil {
		return nil, domain.Invalid("dueDate must be a date")
	}

	return &domain.Bill{
		BillType: req.BillType,
		Amount:   *req.Amount,
		DueDate:  due,
		Status:   domain.BillStatus(req.Status),
	}, nil
}

func decodeBillPatch(c echo.Context) (domain.Patch, error) {
	var req updateBillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return newPatch().
		str("bill_type", req.BillType).
		num("amount", req.Amount).
		date("due_date", req.DueDate).
		str("status", req.Status).
		build()
}
