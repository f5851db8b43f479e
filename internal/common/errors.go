// Package common defines shared constants and sentinel errors used across
// agent and server layers of Workfolio. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Session lifecycle errors.
	ErrNoActiveSession  = errors.New("no active session")
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrAlreadyOnBreak   = errors.New("already on break")
	ErrNotOnBreak       = errors.New("not on break")

	// Registration errors.
	ErrEmailAlreadyTaken = errors.New("email already taken")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
