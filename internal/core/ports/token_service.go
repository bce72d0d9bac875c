package ports

import "github.com/medicore/hospital-api/internal/core/domain"

// Claims is the identity payload carried inside a bearer token.
type Claims struct {
	AccountID string
	Role      domain.Role
}

// TokenService mints and validates signed bearer tokens. Verification is
// stateless: it never consults the credential store, so a token stays valid
// until its expiry regardless of later account changes.
type TokenService interface {
	Issue(accountID string, role domain.Role) (string, error)
	Verify(token string) (*Claims, error)
}
