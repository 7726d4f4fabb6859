// Package notes persists growth notes attached to saved analyses.
package notes

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

type Repository interface {
	// Create inserts n. n.ID must already be assigned.
	Create(ctx context.Context, n *models.GrowthNote) error
	// ListByAnalysis returns the notes of one analysis, newest first.
	ListByAnalysis(ctx context.Context, analysisID string) ([]models.GrowthNote, error)
}
