package domain

import "time"

// AuditAction identifies what an audit event records.
type AuditAction string

const (
	AuditSignup       AuditAction = "signup"
	AuditSignupFailed AuditAction = "signup_failed"
	AuditLogin        AuditAction = "login"
	AuditLoginFailed  AuditAction = "login_failed"
)

// AuditEvent is an append-only record of an authentication outcome.
type AuditEvent struct {
	Action    AuditAction `json:"action"`
	Email     string      `json:"email"`
	Role      Role        `json:"role"`
	Reason    string      `json:"reason,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
