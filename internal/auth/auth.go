// Package auth implements the session/auth gate: a single fixed admin
// identity, bcrypt credential checks, and bearer token issue/verify.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long issued tokens stay valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned when the username or password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when a presented token is malformed, expired or
// signed with the wrong key.
var ErrInvalidToken = errors.New("invalid or expired token")

// Gate issues and verifies bearer credentials for the single admin identity.
type Gate struct {
	secret        []byte
	adminUsername string
	adminHash     []byte
}

// NewGate creates a gate for the given admin identity. passwordHash is a
// bcrypt hash; when empty, password is hashed at construction so the bcrypt
// comparison path is always used at login time.
func NewGate(secret, adminUsername, password, passwordHash string) (*Gate, error) {
	hash := []byte(passwordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}
	return &Gate{
		secret:        []byte(secret),
		adminUsername: adminUsername,
		adminHash:     hash,
	}, nil
}

// Login validates the credentials and returns a signed token.
func (g *Gate) Login(username, password string) (string, error) {
	if username != g.adminUsername {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(g.adminHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return g.GenerateToken(username)
}

// GenerateToken mints an HS256 token for the given username.
func (g *Gate) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"exp":      now.Add(TokenTTL).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// VerifyToken parses and validates a token string, returning the username it
// was issued to.
func (g *Gate) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	return username, nil
}
