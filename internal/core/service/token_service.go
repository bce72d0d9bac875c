package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medicore/hospital-api/internal/core/domain"
	"github.com/medicore/hospital-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService mints and validates HS256 bearer tokens. The signing secret
// is injected at construction so issuance and verification always share one
// consistent key.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token carrying the account id and role, expiring
// ttl from now.
func (s *TokenService) Issue(accountID string, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  accountID,
		"role": string(role),
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and decodes the claims. It never
// consults the credential store.
func (s *TokenService) Verify(token string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role := domain.Role("")
	if r, ok := claims["role"].(string); ok {
		role = domain.Role(r)
	}
	if sub == "" || !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &ports.Claims{AccountID: sub, Role: role}, nil
}
