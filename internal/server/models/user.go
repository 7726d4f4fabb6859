// Package models defines the server-side data models persisted in Postgres
// and passed between services.
package models

import "time"

// User is an account. Anonymous users have no email and no credentials.
type User struct {
	ID          string
	Email       *string
	DisplayName string
	Salt        []byte
	Verifier    []byte
	IsAnonymous bool
	CreatedAt   time.Time
}
