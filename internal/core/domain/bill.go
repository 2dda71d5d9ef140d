package domain

import (
	"strings"
	"time"
)

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillPending BillStatus = "Pending"
	BillPaid    BillStatus = "Paid"
)

// Bill is a recurring or one-off household expense.
type Bill struct {
	Ownership `bson:",inline"`
	BillType  string     `json:"billType" bson:"bill_type"`
	Amount    float64    `json:"amount"   bson:"amount"`
	DueDate   time.Time  `json:"dueDate"  bson:"due_date"`
	Status    BillStatus `json:"status"   bson:"status"`
}

func (b *Bill) Kind() ResourceKind { return KindBill }

func (b *Bill) Normalize() error {
	b.BillType = strings.TrimSpace(b.BillType)
	if b.BillType == "" {
		return Invalid("billType is required")
	}
	if b.Amount < 0 {
		return Invalid("amount must not be negative")
	}
	if b.DueDate.IsZero() {
		return Invalid("dueDate is required")
	}
	switch b.Status {
	case "":
		b.Status = BillPending
	case BillPending, BillPaid:
	default:
		return Invalid("status must be one of: Pending, Paid")
	}
	return nil
}
