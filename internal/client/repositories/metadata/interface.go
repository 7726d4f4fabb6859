package metadata

import (
	"context"
)

// Keys kept in the metadata table.
const (
	KeyUserID       = "user_id"
	KeyDisplayName  = "display_name"
	KeyAnonymous    = "anonymous"
	KeyRefreshToken = "refresh_token"
)

// Repository is a small key/value store for the signed-in session.
// Get reports ok=false for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
