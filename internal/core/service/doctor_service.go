package service

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// DoctorService exposes the doctor directory.
type DoctorService struct {
	profiles ports.ProfileRepository
}

func NewDoctorService(profiles ports.ProfileRepository) *DoctorService {
	return &DoctorService{profiles: profiles}
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]domain.DoctorProfile, error) {
	return s.profiles.ListDoctors(ctx)
}
