package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/images"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
)

// TimelineService serves the merged record and notes view of an analysis,
// either once or as a live feed.
type TimelineService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      images.Store
	watcher     *timeline.Watcher
}

func NewTimelineService(db *sql.DB, m repomanager.RepositoryManager, store images.Store, subs timeline.Subscriber, poll time.Duration, logger logging.Logger) *TimelineService {
	s := &TimelineService{db: db, repomanager: m, images: store}
	s.watcher = timeline.NewWatcher(s, subs, poll, logger)
	return s
}

func (s *TimelineService) FetchRecord(ctx context.Context, ownerID, analysisID string) (*models.AnalysisRecord, error) {
	rec, err := ownedRecord(ctx, s.repomanager.Analyses(s.db), ownerID, analysisID)
	if err != nil {
		return nil, err
	}
	out, err := presentRecord(ctx, s.images, *rec)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TimelineService) FetchNotes(ctx context.Context, analysisID string) ([]models.GrowthNote, error) {
	return loadNotes(ctx, s.repomanager.Notes(s.db), s.images, analysisID)
}

func (s *TimelineService) Get(ctx context.Context, ownerID, analysisID string) ([]timeline.Entry, error) {
	return s.watcher.Load(ctx, ownerID, analysisID)
}

// Watch streams the timeline to emit until ctx ends.
func (s *TimelineService) Watch(ctx context.Context, ownerID, analysisID string, emit func([]timeline.Entry) error) error {
	return s.watcher.Watch(ctx, ownerID, analysisID, emit)
}
