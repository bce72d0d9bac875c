package service

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// AdminService aggregates record counts for the admin dashboard.
type AdminService struct {
	accounts  ports.AccountRepository
	billing   ports.BillingRepository
	insurance ports.InsuranceRepository
	revenue   ports.RevenueRepository
}

func NewAdminService(accounts ports.AccountRepository, billing ports.BillingRepository, insurance ports.InsuranceRepository, revenue ports.RevenueRepository) *AdminService {
	return &AdminService{
		accounts:  accounts,
		billing:   billing,
		insurance: insurance,
		revenue:   revenue,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	stats := &ports.AdminStats{}

	var err error
	if stats.Patients, err = s.accounts.CountByRole(ctx, domain.RolePatient); err != nil {
		return nil, err
	}
	if stats.Doctors, err = s.accounts.CountByRole(ctx, domain.RoleDoctor); err != nil {
		return nil, err
	}
	if stats.Admins, err = s.accounts.CountByRole(ctx, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if stats.Bills, err = s.billing.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Claims, err = s.insurance.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RevenueCount, err = s.revenue.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RevenueTotal, err = s.revenue.Total(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
