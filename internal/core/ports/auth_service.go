package ports

import (
	"context"

	"github.com/medicore/hospital-api/internal/core/domain"
)

// RegisterInput is the signup payload. Specialization, PhoneNumber and
// LicenseNumber are only meaningful for the doctor role.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Role           domain.Role
	Specialization string
	PhoneNumber    string
	LicenseNumber  string
}

// LoginResult is returned on a successful authentication.
type LoginResult struct {
	Token string
	Role  domain.Role
}

// AuthService implements the registration and authentication workflows.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string, role domain.Role) (*LoginResult, error)
}

// LoginThrottle bounds failed login attempts per email.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuditSink accepts authentication audit events for asynchronous recording.
// Implementations must not block the caller.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
