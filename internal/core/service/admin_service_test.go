package service

import (
	"context"
	"testing"

	"github.com/medicore/hospital-api/internal/core/domain"
)

type stubInsuranceRepo struct {
	claims []domain.InsuranceClaim
}

func (r *stubInsuranceRepo) List(_ context.Context) ([]domain.InsuranceClaim, error) {
	return append([]domain.InsuranceClaim(nil), r.claims...), nil
}

func (r *stubInsuranceRepo) Create(_ context.Context, claim *domain.InsuranceClaim) (*domain.InsuranceClaim, error) {
	r.claims = append(r.claims, *claim)
	clone := *claim
	return &clone, nil
}

func (r *stubInsuranceRepo) Update(_ context.Context, id string, update domain.ClaimUpdate) (*domain.InsuranceClaim, error) {
	return nil, domain.ErrClaimNotFound
}

func (r *stubInsuranceRepo) Delete(_ context.Context, id string) error {
	return domain.ErrClaimNotFound
}

func (r *stubInsuranceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.claims)), nil
}

type stubRevenueRepo struct {
	entries []domain.RevenueEntry
}

func (r *stubRevenueRepo) List(_ context.Context) ([]domain.RevenueEntry, error) {
	return append([]domain.RevenueEntry(nil), r.entries...), nil
}

func (r *stubRevenueRepo) Create(_ context.Context, entry *domain.RevenueEntry) (*domain.RevenueEntry, error) {
	r.entries = append(r.entries, *entry)
	clone := *entry
	return &clone, nil
}

func (r *stubRevenueRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *stubRevenueRepo) Total(_ context.Context) (float64, error) {
	var total float64
	for _, e := range r.entries {
		total += e.Amount
	}
	return total, nil
}

func TestAdminService_Stats(t *testing.T) {
	accounts := newStubAccountRepo()
	authSvc := newTestAuthService(accounts, &stubProfileRepo{}, nil)
	for _, in := range []struct {
		email string
		role  domain.Role
	}{
		{"p1@example.com", domain.RolePatient},
		{"p2@example.com", domain.RolePatient},
		{"d1@example.com", domain.RoleDoctor},
		{"a1@example.com", domain.RoleAdmin},
	} {
		if err := authSvc.Register(context.Background(), registerInput(in.email, in.role)); err != nil {
			t.Fatalf("register %s failed: %v", in.email, err)
		}
	}

	billing := newStubBillingRepo()
	billing.bills["bill_1"] = &domain.Bill{ID: "bill_1", Amount: 10}

	insurance := &stubInsuranceRepo{claims: []domain.InsuranceClaim{{ClaimNumber: "C-1"}}}
	revenue := &stubRevenueRepo{entries: []domain.RevenueEntry{
		{Amount: 100.5},
		{Amount: 49.5},
	}}

	svc := NewAdminService(accounts, billing, insurance, revenue)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.Patients != 2 || stats.Doctors != 1 || stats.Admins != 1 {
		t.Fatalf("unexpected account counts: %+v", stats)
	}
	if stats.Bills != 1 || stats.Claims != 1 || stats.RevenueCount != 2 {
		t.Fatalf("unexpected record counts: %+v", stats)
	}
	if stats.RevenueTotal != 150 {
		t.Fatalf("expected revenue total 150, got %v", stats.RevenueTotal)
	}
}
