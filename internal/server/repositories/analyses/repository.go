// Package analyses persists saved plant analyses and answers the per-owner
// and leaderboard queries over them.
package analyses

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

type Repository interface {
	// Create inserts rec. rec.ID must already be assigned.
	Create(ctx context.Context, rec *models.AnalysisRecord) error
	// Get returns common.ErrorNotFound for unknown ids.
	Get(ctx context.Context, id string) (*models.AnalysisRecord, error)
	// ListByOwner returns the owner's records, newest first.
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]models.AnalysisRecord, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	// Leaderboard ranks registered users by saved analyses, descending.
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardRow, error)
}
