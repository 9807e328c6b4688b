package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkobayashi/account-service/internal/account/domain"
	"github.com/mkobayashi/account-service/internal/apperr"
)

var testAccount = &domain.Account{
	ID:           7,
	Email:        "a@example.com",
	Tag:          "@bob",
	Name:         "Bob",
	PasswordHash: strings.Repeat("ab", 32),
	PasswordSalt: "0123abcd",
	UpdatedAt:    1000,
}

func TestNewTokenService(t *testing.T) {
	t.Run("explicit validity", func(t *testing.T) {
		ts := NewTokenService("secret", 3600)
		assert.Equal(t, []byte("secret"), ts.Secret)
		assert.Equal(t, int64(3600), ts.ValiditySeconds)
	})

	t.Run("zero validity falls back to default", func(t *testing.T) {
		ts := NewTokenService("secret", 0)
		assert.Equal(t, int64(DefaultValiditySeconds), ts.ValiditySeconds)
	})
}

func TestTokenService_IssueAndParse(t *testing.T) {
	ts := NewTokenService("test-secret-key", 86400)
	ts.Now = func() time.Time { return time.Unix(1000, 0) }

	token, err := ts.Issue(testAccount)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, appErr := ts.Parse(token)
	require.Nil(t, appErr)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "@bob", claims.Tag)
	assert.Equal(t, "Bob", claims.Name)
	assert.Equal(t, int64(1000), claims.UpdatedAt)
	assert.Equal(t, int64(86400), claims.ValidityTime)
}

func TestTokenService_Issue_RestampsUpdatedAt(t *testing.T) {
	ts := NewTokenService("test-secret-key", 86400)
	ts.Now = func() time.Time { return time.Unix(5000, 0) }

	// The account's stored timestamp must not leak into the payload.
	token, err := ts.Issue(testAccount)
	require.NoError(t, err)

	claims, appErr := ts.Parse(token)
	require.Nil(t, appErr)
	assert.Equal(t, int64(5000), claims.UpdatedAt)
	assert.NotEqual(t, testAccount.UpdatedAt, claims.UpdatedAt)
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	issuer := NewTokenService("right-secret", 86400)
	token, err := issuer.Issue(testAccount)
	require.NoError(t, err)

	verifier := NewTokenService("wrong-secret", 86400)
	claims, appErr := verifier.Parse(token)
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeInvalidSignature, appErr.Code)
}

func TestTokenService_Parse_TamperedSignature(t *testing.T) {
	ts := NewTokenService("test-secret-key", 86400)
	token, err := ts.Issue(testAccount)
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'x' {
		sig[0] = 'y'
	} else {
		sig[0] = 'x'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, appErr := ts.Parse(tampered)
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeInvalidSignature, appErr.Code)
}

func TestTokenService_Parse_TamperedPayload(t *testing.T) {
	ts := NewTokenService("test-secret-key", 86400)
	token, err := ts.Issue(testAccount)
	require.NoError(t, err)

	// Swap the payload segment for a differently-encoded one; the signature
	// no longer covers it.
	other, err := ts.Issue(&domain.Account{ID: 8, Email: "c@example.org", Tag: "@eve", Name: "Eve"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	require.Len(t, parts, 3)
	spliced := parts[0] + "." + otherParts[1] + "." + parts[2]

	claims, appErr := ts.Parse(spliced)
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeInvalidSignature, appErr.Code)
}

func TestTokenService_Parse_Malformed(t *testing.T) {
	ts := NewTokenService("test-secret-key", 86400)

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		claims, appErr := ts.Parse(token)
		assert.Nil(t, claims)
		require.NotNil(t, appErr)
		assert.Equal(t, apperr.CodeInvalidPayloadFormat, appErr.Code)
	}
}

func TestTokenService_Parse_MissingPayloadFields(t *testing.T) {
	secret := []byte("test-secret-key")

	// Correctly signed, but the payload is not a session payload.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": 7,
	}).SignedString(secret)
	require.NoError(t, err)

	ts := NewTokenService("test-secret-key", 86400)
	claims, appErr := ts.Parse(token)
	assert.Nil(t, claims)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeInvalidPayloadFormat, appErr.Code)
}

func TestSessionClaims_Validate(t *testing.T) {
	valid := SessionClaims{
		ID:           7,
		Email:        "a@example.com",
		Tag:          "@bob",
		Name:         "Bob",
		UpdatedAt:    1000,
		ValidityTime: 86400,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*SessionClaims)
	}{
		{"zero id", func(c *SessionClaims) { c.ID = 0 }},
		{"empty email", func(c *SessionClaims) { c.Email = "" }},
		{"empty tag", func(c *SessionClaims) { c.Tag = "" }},
		{"empty name", func(c *SessionClaims) { c.Name = "" }},
		{"zero updated_at", func(c *SessionClaims) { c.UpdatedAt = 0 }},
		{"zero validity", func(c *SessionClaims) { c.ValidityTime = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := valid
			tt.mutate(&claims)
			assert.Error(t, claims.Validate())
		})
	}
}
