package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consulta-ai/consulta-ai/pkg/security"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	claims := security.NewTokenClaims("admin", "admin", time.Now().Add(time.Hour).Unix())

	token, err := security.GenerateJWT(claims, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := security.VerifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.User)
	assert.Equal(t, "admin", parsed.Role)
	assert.Equal(t, claims.ExpireTime, parsed.ExpireTime)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	claims := security.NewTokenClaims("admin", "admin", time.Now().Add(time.Hour).Unix())
	token, err := security.GenerateJWT(claims, []byte("first"))
	require.NoError(t, err)

	_, err = security.VerifyToken(token, []byte("second"))
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	claims := security.NewTokenClaims("admin", "admin", time.Now().Add(-time.Minute).Unix())
	token, err := security.GenerateJWT(claims, []byte("secret"))
	require.NoError(t, err)

	_, err = security.VerifyToken(token, []byte("secret"))
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := security.VerifyToken("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
