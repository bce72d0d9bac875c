package service

import (
	"context"
	"time"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// BillingService fronts billing CRUD. Status defaults to PENDING and is
// validated against the closed status set on create and update.
type BillingService struct {
	repo ports.BillingRepository
}

func NewBillingService(repo ports.BillingRepository) *BillingService {
	return &BillingService{repo: repo}
}

func (s *BillingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return s.repo.List(ctx)
}

func (s *BillingService) CreateBill(ctx context.Context, input ports.CreateBillInput) (*domain.Bill, error) {
	status := input.Status
	if status == "" {
		status = domain.BillPending
	}
	if !domain.ValidBillStatus(status) {
		return nil, domain.ErrInvalidBillStatus
	}

	dueDate, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Bill{
		BillNumber: input.BillNumber,
		Amount:     input.Amount,
		Status:     status,
		DueDate:    dueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *BillingService) UpdateBill(ctx context.Context, id string, update domain.BillUpdate) (*domain.Bill, error) {
	if update.Status != nil && !domain.ValidBillStatus(*update.Status) {
		return nil, domain.ErrInvalidBillStatus
	}
	return s.repo.Update(ctx, id, update)
}

func (s *BillingService) DeleteBill(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
