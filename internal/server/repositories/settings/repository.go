// Package settings persists per-user preferences as a single JSON document.
package settings

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when the user never saved settings.
	Get(ctx context.Context, userID string) (*models.Settings, error)
	Upsert(ctx context.Context, userID string, s models.Settings) error
}
