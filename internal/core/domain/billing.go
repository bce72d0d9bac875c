package domain

import (
	"errors"
	"time"
)

// BillStatus represents the payment state of a bill.
type BillStatus string

const (
	BillPaid    BillStatus = "PAID"
	BillPending BillStatus = "PENDING"
	BillOverdue BillStatus = "OVERDUE"
)

var (
	ErrBillNotFound      = errors.New("bill not found")
	ErrInvalidBillStatus = errors.New("invalid billing status")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)

// ValidBillStatus reports whether s is a known billing status.
func ValidBillStatus(s BillStatus) bool {
	switch s {
	case BillPaid, BillPending, BillOverdue:
		return true
	}
	return false
}

// Bill is a flat billing document.
type Bill struct {
	ID         string     `json:"id"`
	BillNumber string     `json:"billNumber"`
	Amount     float64    `json:"amount"`
	Status     BillStatus `json:"status"`
	DueDate    time.Time  `json:"dueDate"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// BillUpdate carries the fields of a bill that may change after creation.
// Nil fields are left untouched.
type BillUpdate struct {
	BillNumber *string
	Amount     *float64
	Status     *BillStatus
	DueDate    *time.Time
}
