// Package common defines shared constants and sentinel errors used across
// client and server layers of PlantVision. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Analysis pipeline errors. ErrProvider marks a failed or timed out call
	// to the generative model, ErrSchema a response that could not be decoded
	// into the expected shape, ErrStore a persistence failure.
	ErrProvider = errors.New("provider error")
	ErrSchema   = errors.New("schema error")
	ErrStore    = errors.New("store error")
)
