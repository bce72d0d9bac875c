package ports

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
)

// InsuranceRepository defines persistence for insurance claim documents.
type InsuranceRepository interface {
	List(ctx context.Context) ([]domain.InsuranceClaim, error)
	Create(ctx context.Context, claim *domain.InsuranceClaim) (*domain.InsuranceClaim, error)
	Update(ctx context.Context, id string, update domain.ClaimUpdate) (*domain.InsuranceClaim, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateClaimInput carries the fields accepted when filing a claim.
type CreateClaimInput struct {
	ClaimNumber  string
	PolicyHolder string
	Status       domain.ClaimStatus
	ClaimAmount  float64
}

// InsuranceService fronts claim CRUD with status defaulting and validation.
type InsuranceService interface {
	ListClaims(ctx context.Context) ([]domain.InsuranceClaim, error)
	CreateClaim(ctx context.Context, input CreateClaimInput) (*domain.InsuranceClaim, error)
	UpdateClaim(ctx context.Context, id string, update domain.ClaimUpdate) (*domain.InsuranceClaim, error)
	DeleteClaim(ctx context.Context, id string) error
}
