// Package common defines shared constants and sentinel errors used across
// BlogKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrorForbidden = errors.New("forbidden")

	// Credential verification errors. A missing user and a wrong password
	// stay distinguishable inside the service layer; the transport decides
	// how much of that to expose.
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Password hashing errors.
	ErrEmptyPassword = errors.New("empty password")
	ErrMalformedHash = errors.New("malformed password hash")

	// Token validation errors, one per distinguishable failure kind.
	ErrTokenExpired          = errors.New("token expired")
	ErrInvalidTokenSignature = errors.New("invalid token signature")
	ErrMalformedToken        = errors.New("malformed token")
)
