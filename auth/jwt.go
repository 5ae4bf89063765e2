// jwt.go - Access token creation and validation
// Tokens are signed HS256 credentials carrying the caller's email.
// The secret is passed in explicitly so callers stay testable.

package auth // Declares the package name

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenTTL - How long an issued token stays valid
const TokenTTL = 2 * time.Hour

// Claims - The claim set embedded in every access token
type Claims struct {
	Email string `json:"email"` // Caller identity, the system's only identity key
	jwt.RegisteredClaims
}

// CreateAccessToken - Signs a token asserting the given email, expiring after ttl
func CreateAccessToken(email, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Set expiration
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create JWT token
	return token.SignedString([]byte(secret))                  // Sign token with secret
}

// ParseValidate - Verifies signature and expiry, returning the decoded claims
func ParseValidate(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil // Provide secret key for validation
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return c, nil
}
