package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	copy := cloneAccount(account)
	copy.ID = fmt.Sprintf("acc_%d", r.nextID)
	r.accounts[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmailAndRole(_ context.Context, email string, role domain.Role) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email && a.Role == role {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) UpdateName(_ context.Context, id, firstName, lastName string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.FirstName = firstName
	a.LastName = lastName
	a.UpdatedAt = time.Now().UTC()
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

type stubProfileRepo struct {
	doctors    []domain.DoctorProfile
	admins     []domain.AdminProfile
	failCreate error
}

func (r *stubProfileRepo) CreateDoctor(_ context.Context, profile *domain.DoctorProfile) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.doctors = append(r.doctors, *profile)
	return nil
}

func (r *stubProfileRepo) CreateAdmin(_ context.Context, profile *domain.AdminProfile) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.admins = append(r.admins, *profile)
	return nil
}

func (r *stubProfileRepo) ListDoctors(_ context.Context) ([]domain.DoctorProfile, error) {
	return append([]domain.DoctorProfile(nil), r.doctors...), nil
}

func (r *stubProfileRepo) FindDoctorsByIDs(_ context.Context, ids []string) ([]domain.DoctorProfile, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.DoctorProfile
	for _, d := range r.doctors {
		if _, ok := want[d.ID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) Blocked(_ context.Context, _ string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, _ string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

func newTestAuthService(accounts *stubAccountRepo, profiles *stubProfileRepo, throttle ports.LoginThrottle) *AuthService {
	return NewAuthService(accounts, profiles, NewTokenService("secret", time.Hour), throttle, nil)
}

func registerInput(email string, role domain.Role) ports.RegisterInput {
	return ports.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "s3cret1",
		Role:      role,
	}
}

func TestAuthService_Register_Patient(t *testing.T) {
	accounts := newStubAccountRepo()
	profiles := &stubProfileRepo{}
	svc := newTestAuthService(accounts, profiles, nil)

	if err := svc.Register(context.Background(), registerInput("ada@example.com", domain.RolePatient)); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored, err := accounts.FindByEmailAndRole(context.Background(), "ada@example.com", domain.RolePatient)
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.PasswordHash == "s3cret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(profiles.doctors) != 0 || len(profiles.admins) != 0 {
		t.Fatalf("patient signup must not create a role profile")
	}
}

func TestAuthService_Register_DoctorProfile(t *testing.T) {
	accounts := newStubAccountRepo()
	profiles := &stubProfileRepo{}
	svc := newTestAuthService(accounts, profiles, nil)

	input := registerInput("doc@example.com", domain.RoleDoctor)
	input.Specialization = "cardiology"
	input.LicenseNumber = "LIC-42"
	if err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if len(profiles.doctors) != 1 {
		t.Fatalf("expected 1 doctor profile, got %d", len(profiles.doctors))
	}
	doc := profiles.doctors[0]
	if doc.Email != "doc@example.com" || doc.Specialty != "cardiology" || doc.LicenseNumber != "LIC-42" {
		t.Fatalf("unexpected doctor profile: %+v", doc)
	}
}

func TestAuthService_Register_AdminProfile(t *testing.T) {
	accounts := newStubAccountRepo()
	profiles := &stubProfileRepo{}
	svc := newTestAuthService(accounts, profiles, nil)

	if err := svc.Register(context.Background(), registerInput("root@example.com", domain.RoleAdmin)); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if len(profiles.admins) != 1 {
		t.Fatalf("expected 1 admin profile, got %d", len(profiles.admins))
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, &stubProfileRepo{}, nil)

	if err := svc.Register(context.Background(), registerInput("dup@example.com", domain.RolePatient)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := svc.Register(context.Background(), registerInput("dup@example.com", domain.RoleDoctor)); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), &stubProfileRepo{}, nil)

	input := registerInput("", domain.RolePatient)
	if err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}

	input = registerInput("eve@example.com", "superuser")
	if err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_RollbackOnProfileFailure(t *testing.T) {
	accounts := newStubAccountRepo()
	profiles := &stubProfileRepo{failCreate: errors.New("write failed")}
	svc := newTestAuthService(accounts, profiles, nil)

	err := svc.Register(context.Background(), registerInput("doc@example.com", domain.RoleDoctor))
	if err == nil {
		t.Fatalf("expected error when profile write fails")
	}

	if _, err := accounts.FindByEmailAndRole(context.Background(), "doc@example.com", domain.RoleDoctor); err != domain.ErrAccountNotFound {
		t.Fatalf("expected account rollback, got %v", err)
	}
}

type failingDeleteAccountRepo struct {
	*stubAccountRepo
}

func (r *failingDeleteAccountRepo) Delete(_ context.Context, _ string) error {
	return errors.New("delete failed")
}

type recordingAuditSink struct {
	events []domain.AuditEvent
}

func (s *recordingAuditSink) Record(event domain.AuditEvent) {
	s.events = append(s.events, event)
}

func TestAuthService_Register_AuditsWhenRollbackFails(t *testing.T) {
	accounts := &failingDeleteAccountRepo{stubAccountRepo: newStubAccountRepo()}
	profiles := &stubProfileRepo{failCreate: errors.New("write failed")}
	audit := &recordingAuditSink{}
	svc := NewAuthService(accounts, profiles, NewTokenService("secret", time.Hour), nil, audit)

	err := svc.Register(context.Background(), registerInput("doc@example.com", domain.RoleDoctor))
	if err == nil {
		t.Fatalf("expected error when profile write and rollback both fail")
	}

	if len(audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.events))
	}
	if audit.events[0].Action != domain.AuditSignupFailed {
		t.Fatalf("unexpected audit action: %s", audit.events[0].Action)
	}
	if audit.events[0].Reason != "profile write failed" {
		t.Fatalf("unexpected audit reason: %q", audit.events[0].Reason)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	accounts := newStubAccountRepo()
	throttle := &stubThrottle{}
	svc := newTestAuthService(accounts, &stubProfileRepo{}, throttle)

	if err := svc.Register(context.Background(), registerInput("carol@example.com", domain.RolePatient)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret1", domain.RolePatient)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Role != domain.RolePatient {
		t.Fatalf("unexpected role: %s", result.Role)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != domain.RolePatient {
		t.Fatalf("expected role patient in claims, got %s", claims.Role)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}
}

func TestAuthService_Login_UniformFailures(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := newTestAuthService(accounts, &stubProfileRepo{}, nil)

	if err := svc.Register(context.Background(), registerInput("dave@example.com", domain.RolePatient)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown email, wrong role and wrong password must be indistinguishable.
	cases := []struct {
		name     string
		email    string
		password string
		role     domain.Role
	}{
		{"unknown email", "ghost@example.com", "s3cret1", domain.RolePatient},
		{"wrong role", "dave@example.com", "s3cret1", domain.RoleDoctor},
		{"wrong password", "dave@example.com", "badpass", domain.RolePatient},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.email, tc.password, tc.role); err != domain.ErrInvalidCredentials {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	accounts := newStubAccountRepo()
	throttle := &stubThrottle{blocked: true}
	svc := newTestAuthService(accounts, &stubProfileRepo{}, throttle)

	if _, err := svc.Login(context.Background(), "dave@example.com", "s3cret1", domain.RolePatient); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_RecordsFailures(t *testing.T) {
	accounts := newStubAccountRepo()
	throttle := &stubThrottle{}
	svc := newTestAuthService(accounts, &stubProfileRepo{}, throttle)

	if err := svc.Register(context.Background(), registerInput("erin@example.com", domain.RolePatient)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _ = svc.Login(context.Background(), "erin@example.com", "wrong", domain.RolePatient)
	_, _ = svc.Login(context.Background(), "ghost@example.com", "wrong", domain.RolePatient)

	if throttle.failures != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", throttle.failures)
	}
}
