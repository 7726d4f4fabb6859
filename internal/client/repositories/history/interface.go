package history

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/api"
)

// Repository caches the signed-in user's saved analyses so that the
// dashboard can be shown while the server is unreachable.
type Repository interface {
	// Put inserts or replaces records.
	Put(ctx context.Context, ownerID string, records []api.AnalysisRecord) error
	// List returns cached records, newest analysisDate first.
	List(ctx context.Context, ownerID string, limit, offset int) ([]api.AnalysisRecord, error)
	// Get returns common.ErrorNotFound when the record is not cached.
	Get(ctx context.Context, ownerID, id string) (*api.AnalysisRecord, error)
	Clear(ctx context.Context) error
}
