package service

import (
	"context"
	"time"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// RevenueService records and lists revenue entries. Date defaults to now,
// Type to "daily", matching how entries were recorded historically.
type RevenueService struct {
	repo ports.RevenueRepository
}

func NewRevenueService(repo ports.RevenueRepository) *RevenueService {
	return &RevenueService{repo: repo}
}

func (s *RevenueService) ListRevenue(ctx context.Context) ([]domain.RevenueEntry, error) {
	return s.repo.List(ctx)
}

func (s *RevenueService) RecordRevenue(ctx context.Context, input ports.CreateRevenueInput) (*domain.RevenueEntry, error) {
	date := time.Now().UTC()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		date = parsed
	}

	entryType := input.Type
	if entryType == "" {
		entryType = "daily"
	}

	return s.repo.Create(ctx, &domain.RevenueEntry{
		Date:      date,
		Amount:    input.Amount,
		Type:      entryType,
		CreatedAt: time.Now().UTC(),
	})
}
