package timeline

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"golang.org/x/sync/errgroup"
)

// Source loads the two inputs of a timeline. FetchRecord enforces that the
// record belongs to ownerID and reports a foreign one as common.ErrorNotFound.
type Source interface {
	FetchRecord(ctx context.Context, ownerID, analysisID string) (*models.AnalysisRecord, error)
	FetchNotes(ctx context.Context, analysisID string) ([]models.GrowthNote, error)
}

// Subscriber delivers change signals for a topic.
type Subscriber interface {
	Subscribe(topic string) (<-chan struct{}, func())
}

// NotesTopic is the topic published whenever a note is added to analysisID.
func NotesTopic(analysisID string) string {
	return "notes/" + analysisID
}

// Watcher keeps a timeline fresh: it rebuilds it whenever the note
// collection is signalled as changed and, as a fallback for writes made
// by other processes, on every poll tick.
type Watcher struct {
	src    Source
	subs   Subscriber
	poll   time.Duration
	logger logging.Logger
}

// NewWatcher creates a watcher. A zero poll interval disables polling.
func NewWatcher(src Source, subs Subscriber, poll time.Duration, logger logging.Logger) *Watcher {
	return &Watcher{
		src:    src,
		subs:   subs,
		poll:   poll,
		logger: logger.With("module", "timeline_watcher"),
	}
}

// Load fetches the record and its notes concurrently and merges them.
func (w *Watcher) Load(ctx context.Context, ownerID, analysisID string) ([]Entry, error) {
	var (
		record *models.AnalysisRecord
		notes  []models.GrowthNote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := w.src.FetchRecord(gctx, ownerID, analysisID)
		record = r
		return err
	})
	g.Go(func() error {
		n, err := w.src.FetchNotes(gctx, analysisID)
		notes = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Build(*record, notes), nil
}

// Watch emits the current timeline and then every changed version of it
// until ctx is done or emit fails. Refresh errors other than a record that
// is gone (or not visible to ownerID) are logged and retried on the next
// signal.
func (w *Watcher) Watch(ctx context.Context, ownerID, analysisID string, emit func([]Entry) error) error {
	// subscribe first so a note added during the initial load is not missed
	changes, cancel := w.subs.Subscribe(NotesTopic(analysisID))
	defer cancel()

	var tick <-chan time.Time
	if w.poll > 0 {
		t := time.NewTicker(w.poll)
		defer t.Stop()
		tick = t.C
	}

	last, err := w.Load(ctx, ownerID, analysisID)
	if err != nil {
		return err
	}
	if err := emit(last); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
		case <-tick:
		}

		next, err := w.Load(ctx, ownerID, analysisID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, common.ErrorNotFound) {
				return err
			}
			w.logger.Warn(ctx, "timeline refresh failed", "analysis_id", analysisID, "error", err)
			continue
		}

		if Equal(last, next) {
			continue
		}
		last = next
		if err := emit(next); err != nil {
			return err
		}
	}
}
