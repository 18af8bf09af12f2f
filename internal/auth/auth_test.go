package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	gate, err := NewGate("test-secret", "admin", "password123", "")
	require.NoError(t, err)
	return gate
}

func TestLoginSuccess(t *testing.T) {
	gate := newTestGate(t)

	token, err := gate.Login("admin", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := gate.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestLoginWrongPassword(t *testing.T) {
	gate := newTestGate(t)

	_, err := gate.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongUsername(t *testing.T) {
	gate := newTestGate(t)

	_, err := gate.Login("root", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGateWithPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	gate, err := NewGate("test-secret", "admin", "", string(hash))
	require.NoError(t, err)

	_, err = gate.Login("admin", "s3cret")
	assert.NoError(t, err)

	_, err = gate.Login("admin", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyGarbageToken(t *testing.T) {
	gate := newTestGate(t)

	_, err := gate.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	gate := newTestGate(t)

	claims := jwt.MapClaims{
		"username": "admin",
		"exp":      time.Now().Add(-time.Hour).Unix(),
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = gate.VerifyToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	gate := newTestGate(t)

	other, err := NewGate("other-secret", "admin", "password123", "")
	require.NoError(t, err)

	token, err := other.GenerateToken("admin")
	require.NoError(t, err)

	_, err = gate.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
