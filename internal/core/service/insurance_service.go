package service

import (
	"context"
	"time"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// InsuranceService fronts claim CRUD. Status defaults to SUBMITTED.
type InsuranceService struct {
	repo ports.InsuranceRepository
}

func NewInsuranceService(repo ports.InsuranceRepository) *InsuranceService {
	return &InsuranceService{repo: repo}
}

func (s *InsuranceService) ListClaims(ctx context.Context) ([]domain.InsuranceClaim, error) {
	return s.repo.List(ctx)
}

func (s *InsuranceService) CreateClaim(ctx context.Context, input ports.CreateClaimInput) (*domain.InsuranceClaim, error) {
	status := input.Status
	if status == "" {
		status = domain.ClaimSubmitted
	}
	if !domain.ValidClaimStatus(status) {
		return nil, domain.ErrInvalidClaimStatus
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.InsuranceClaim{
		ClaimNumber:  input.ClaimNumber,
		PolicyHolder: input.PolicyHolder,
		Status:       status,
		ClaimAmount:  input.ClaimAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *InsuranceService) UpdateClaim(ctx context.Context, id string, update domain.ClaimUpdate) (*domain.InsuranceClaim, error) {
	if update.Status != nil && !domain.ValidClaimStatus(*update.Status) {
		return nil, domain.ErrInvalidClaimStatus
	}
	return s.repo.Update(ctx, id, update)
}

func (s *InsuranceService) DeleteClaim(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
