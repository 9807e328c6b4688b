package service

//go:generate mockgen -destination=../../mocks/mock_token_signer.go -package=mocks github.com/mkobayashi/account-service/internal/account/service TokenSigner

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkobayashi/account-service/internal/account/domain"
	"github.com/mkobayashi/account-service/internal/apperr"
)

// DefaultValiditySeconds is the freshness window of an issued token: 24 hours.
const DefaultValiditySeconds = 86400

type TokenSigner interface {
	Issue(account *domain.Account) (string, error)
	Parse(tokenString string) (*SessionClaims, *apperr.Error)
}

// SessionClaims is the payload embedded in a session token. UpdatedAt is the
// issuance-time stamp that opens the validity window; it intentionally shares
// its name with the account column it is later compared against, but it is
// re-stamped to "now" at issuance rather than copied from the account.
type SessionClaims struct {
	jwt.RegisteredClaims
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	UpdatedAt    int64  `json:"updated_at"`
	ValidityTime int64  `json:"validity_time"`
}

// Validate is the payload shape check, invoked by jwt.ParseWithClaims after
// the signature has been verified.
func (c *SessionClaims) Validate() error {
	if c.ID == 0 || c.Email == "" || c.Tag == "" || c.Name == "" ||
		c.UpdatedAt <= 0 || c.ValidityTime <= 0 {
		return errors.New("session payload is missing required fields")
	}
	return nil
}

// TokenService signs and parses session tokens with a process-wide HMAC
// secret. The secret is loaded once at startup and never rotated at runtime.
type TokenService struct {
	Secret          []byte
	ValiditySeconds int64
	Now             func() time.Time
}

func NewTokenService(secret string, validitySeconds int64) *TokenService {
	if validitySeconds <= 0 {
		validitySeconds = DefaultValiditySeconds
	}
	return &TokenService{
		Secret:          []byte(secret),
		ValiditySeconds: validitySeconds,
		Now:             time.Now,
	}
}

func (ts *TokenService) Issue(account *domain.Account) (string, error) {
	claims := &SessionClaims{
		ID:           account.ID,
		Email:        account.Email,
		Tag:          account.Tag,
		Name:         account.Name,
		UpdatedAt:    ts.Now().Unix(),
		ValidityTime: ts.ValiditySeconds,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.Secret)
}

// Parse verifies the token signature and decodes the session payload.
// Signature failures map to invalid_signature; anything structurally or
// semantically unparseable maps to invalid_payload_format. Expiry and
// staleness are not evaluated here.
func (ts *TokenService) Parse(tokenString string) (*SessionClaims, *apperr.Error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.Secret, nil
	})

	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return nil, apperr.InvalidSignature("token signature does not verify")
	default:
		return nil, apperr.InvalidPayload("token payload does not match the session format")
	}
}
