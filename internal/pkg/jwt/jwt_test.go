package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
)

func TestJWTService_GenerateAccessToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret", time.Hour, clock.Fixed(now))

	token, expiresAt, err := svc.GenerateAccessToken(Claims{UserID: "hr-admin", Email: "hr@example.com"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), expiresAt)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hr-admin", claims[ClaimUserID])
	assert.Equal(t, "hr@example.com", claims[ClaimEmail])
	assert.Equal(t, TokenTypeAccess, claims[ClaimType])
	assert.NotContains(t, claims, ClaimRole)
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	issuer := NewJWTService("test-secret", time.Minute, clock.Fixed(issuedAt))
	token, _, err := issuer.GenerateAccessToken(Claims{UserID: "hr-admin"})
	require.NoError(t, err)

	later := NewJWTService("test-secret", time.Minute, clock.Fixed(issuedAt.Add(time.Hour)))
	_, err = jwtauth.VerifyToken(later.JWTAuth(), token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	token, _, err := NewJWTService("secret-a", time.Hour, clock.Fixed(now)).GenerateAccessToken(Claims{UserID: "u"})
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(NewJWTService("secret-b", time.Hour, clock.Fixed(now)).JWTAuth(), token)
	assert.Error(t, err)
}

func TestJWTService_RequiresUserID(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, clock.Real())
	_, _, err := svc.GenerateAccessToken(Claims{})
	assert.ErrorIs(t, err, ErrMissingUserID)
}
