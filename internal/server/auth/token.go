// Package auth implements the credential-verification primitives of the
// server: signed access tokens and salted password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity embedded in an access token. Subject holds the
// user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates signed, expiring access tokens (HS256).
// The secret and default TTL are fixed at construction and never change for
// the process lifetime, so a single issuer is safe for concurrent use.
type TokenIssuer struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenIssuer constructs a TokenIssuer with the given signing secret and
// default token lifetime.
func NewTokenIssuer(secret []byte, defaultTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, defaultTTL: defaultTTL}
}

// Issue creates a signed token for the given subject. If ttl is zero or
// negative, the issuer's default TTL is used.
func (i *TokenIssuer) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = i.defaultTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Validate parses tokenString, checks the signature and expiry, and returns
// the embedded claims. Failures map to exactly one of
// common.ErrTokenExpired, common.ErrInvalidTokenSignature or
// common.ErrMalformedToken so callers can tell the cases apart.
func (i *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrInvalidTokenSignature
		default:
			return nil, common.ErrMalformedToken
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidTokenSignature
	}

	return claims, nil
}
