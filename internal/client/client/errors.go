package client

import "errors"

var (
	// ErrUnavailable marks failures worth retrying later: the server or
	// the model behind it could not be reached in time.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)
