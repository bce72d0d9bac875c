package ports

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
)

// BillingRepository defines persistence for billing documents.
type BillingRepository interface {
	List(ctx context.Context) ([]domain.Bill, error)
	Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
	Update(ctx context.Context, id string, update domain.BillUpdate) (*domain.Bill, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateBillInput carries the fields accepted when creating a bill.
type CreateBillInput struct {
	BillNumber string
	Amount     float64
	Status     domain.BillStatus
	DueDate    string
}

// BillingService fronts billing CRUD with status defaulting and validation.
type BillingService interface {
	ListBills(ctx context.Context) ([]domain.Bill, error)
	CreateBill(ctx context.Context, input CreateBillInput) (*domain.Bill, error)
	UpdateBill(ctx context.Context, id string, update domain.BillUpdate) (*domain.Bill, error)
	DeleteBill(ctx context.Context, id string) error
}
