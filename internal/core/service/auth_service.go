package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/hospital-api/internal/api/metrics"
	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

// AuthService implements the registration and authentication workflows.
// Registration is a two-phase write: the account first, then the role
// profile for doctors and admins. If the profile write fails the account is
// deleted again, so a doctor or admin always has both records or neither.
type AuthService struct {
	accounts ports.AccountRepository
	profiles ports.ProfileRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	audit    ports.AuditSink
}

func NewAuthService(accounts ports.AccountRepository, profiles ports.ProfileRepository, tokens ports.TokenService, throttle ports.LoginThrottle, audit ports.AuditSink) *AuthService {
	return &AuthService{
		accounts: accounts,
		profiles: profiles,
		tokens:   tokens,
		throttle: throttle,
		audit:    audit,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if input.Email == "" || input.Password == "" {
		return domain.ErrInvalidCredentials
	}
	if !input.Role.Valid() {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	account, err := s.accounts.Create(ctx, &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.recordAudit(domain.AuditSignupFailed, input.Email, input.Role, err.Error())
		metrics.SignupFailuresTotal.WithLabelValues(signupFailureReason(err)).Inc()
		return err
	}

	if err := s.createRoleProfile(ctx, account, input); err != nil {
		s.recordAudit(domain.AuditSignupFailed, input.Email, input.Role, "profile write failed")
		metrics.SignupFailuresTotal.WithLabelValues("profile_write").Inc()
		// Roll back the account so registration never leaves a doctor or
		// admin with only half its records.
		if delErr := s.accounts.Delete(ctx, account.ID); delErr != nil {
			return fmt.Errorf("create %s profile: %w (account rollback also failed: %v)", input.Role, err, delErr)
		}
		return fmt.Errorf("create %s profile: %w", input.Role, err)
	}

	s.recordAudit(domain.AuditSignup, input.Email, input.Role, "")
	metrics.SignupsTotal.WithLabelValues(string(input.Role)).Inc()
	return nil
}

// createRoleProfile dispatches over the closed role set. Patients carry no
// auxiliary record.
func (s *AuthService) createRoleProfile(ctx context.Context, account *domain.Account, input ports.RegisterInput) error {
	switch account.Role {
	case domain.RoleDoctor:
		return s.profiles.CreateDoctor(ctx, &domain.DoctorProfile{
			FirstName:     account.FirstName,
			LastName:      account.LastName,
			Email:         account.Email,
			Specialty:     input.Specialization,
			LicenseNumber: input.LicenseNumber,
			PhoneNumber:   input.PhoneNumber,
			CreatedAt:     account.CreatedAt,
		})
	case domain.RoleAdmin:
		return s.profiles.CreateAdmin(ctx, &domain.AdminProfile{
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			CreatedAt: account.CreatedAt,
		})
	case domain.RolePatient:
		return nil
	}
	return fmt.Errorf("unknown role %q", account.Role)
}

// Login validates credentials and issues a token. Unknown email, wrong role
// and wrong password all fail with the same ErrInvalidCredentials so the
// response leaks nothing about which factor was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*ports.LoginResult, error) {
	if email == "" || password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.accounts.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return nil, s.failLogin(ctx, email, role, "account not found")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, s.failLogin(ctx, email, role, "password mismatch")
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}
	s.recordAudit(domain.AuditLogin, email, role, "")
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return &ports.LoginResult{Token: token, Role: account.Role}, nil
}

func (s *AuthService) failLogin(ctx context.Context, email string, role domain.Role, reason string) error {
	if s.throttle != nil {
		_ = s.throttle.RecordFailure(ctx, email)
	}
	s.recordAudit(domain.AuditLoginFailed, email, role, reason)
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	return domain.ErrInvalidCredentials
}

func (s *AuthService) recordAudit(action domain.AuditAction, email string, role domain.Role, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Action:    action,
		Email:     email,
		Role:      role,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}

func signupFailureReason(err error) string {
	if err == domain.ErrEmailTaken {
		return "email_taken"
	}
	return "store_fault"
}
