package ports

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
)

// AccountRepository defines persistence for base identity records.
// Email uniqueness is enforced by the store itself, so two concurrent
// creates with the same email resolve to one success and one ErrEmailTaken.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	UpdateName(ctx context.Context, id, firstName, lastName string) (*domain.Account, error)
	// Delete exists for registration rollback only; no API operation
	// removes accounts.
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// ProfileRepository defines persistence for the auxiliary role records
// created alongside doctor and admin accounts.
type ProfileRepository interface {
	CreateDoctor(ctx context.Context, profile *domain.DoctorProfile) error
	CreateAdmin(ctx context.Context, profile *domain.AdminProfile) error
	ListDoctors(ctx context.Context) ([]domain.DoctorProfile, error)
	FindDoctorsByIDs(ctx context.Context, ids []string) ([]domain.DoctorProfile, error)
}
