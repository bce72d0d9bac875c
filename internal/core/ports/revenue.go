package ports

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
)

// RevenueRepository defines persistence for revenue entries.
type RevenueRepository interface {
	List(ctx context.Context) ([]domain.RevenueEntry, error)
	Create(ctx context.Context, entry *domain.RevenueEntry) (*domain.RevenueEntry, error)
	Count(ctx context.Context) (int64, error)
	Total(ctx context.Context) (float64, error)
}

// CreateRevenueInput carries the fields accepted when recording revenue.
// Date defaults to now, Type to "daily".
type CreateRevenueInput struct {
	Date   string
	Amount float64
	Type   string
}

// RevenueService fronts revenue recording and listing.
type RevenueService interface {
	ListRevenue(ctx context.Context) ([]domain.RevenueEntry, error)
	RecordRevenue(ctx context.Context, input CreateRevenueInput) (*domain.RevenueEntry, error)
}
