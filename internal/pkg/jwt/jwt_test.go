package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m")

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", "jane@dayflow.test", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	// The verifier the middleware uses must accept what we issued
	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "jane@dayflow.test", claims["email"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_OtherSecretRejected(t *testing.T) {
	t.Parallel()

	issuer := NewJWTService("secret-a", "15m")
	verifier := NewJWTService("secret-b", "15m")

	tokenString, _, err := issuer.GenerateAccessToken("emp-1", "jane@dayflow.test", false)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(verifier.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("emp-1", "jane@dayflow.test", false)
	assert.Error(t, err)
}
