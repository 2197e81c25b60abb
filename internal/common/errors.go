// Package common defines shared constants and sentinel errors used across
// the server and client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrDuplicateHandle = errors.New("duplicate handle")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Authentication errors. Kept distinguishable: the API contract exposes
	// "user not found" and "incorrect password" as separate messages.
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")

	// Provisioning errors (dependent records failed to materialize after
	// the identity row was persisted).
	ErrProvisioning = errors.New("provisioning failed")

	// Token errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
