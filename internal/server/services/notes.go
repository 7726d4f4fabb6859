package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/images"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
	"github.com/google/uuid"
)

// Publisher signals that a topic changed; *pubsub.Hub implements it.
type Publisher interface {
	Publish(topic string)
}

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      images.Store
	publisher   Publisher
	logger      logging.Logger

	now   func() time.Time
	newID func() string
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, store images.Store, p Publisher, logger logging.Logger) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: m,
		images:      store,
		publisher:   p,
		logger:      logger.With("module", "notes"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Add appends a growth note to one of the caller's analyses and wakes any
// timeline watchers of that analysis.
func (s *NoteService) Add(ctx context.Context, ownerID, analysisID, text, imageDataURI string) (*models.GrowthNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: note is empty", common.ErrorValidation)
	}
	if _, err := ownedRecord(ctx, s.repomanager.Analyses(s.db), ownerID, analysisID); err != nil {
		return nil, err
	}

	note := &models.GrowthNote{
		ID:         s.newID(),
		AnalysisID: analysisID,
		UserID:     ownerID,
		NoteDate:   s.now().UTC(),
		Note:       text,
	}
	if imageDataURI != "" {
		img, err := DecodeImage(imageDataURI)
		if err != nil {
			return nil, err
		}
		if note.ImageURL, err = s.images.Put(ctx, ownerID, img); err != nil {
			return nil, err
		}
	}

	if err := s.repomanager.Notes(s.db).Create(ctx, note); err != nil {
		return nil, err
	}
	s.publisher.Publish(timeline.NotesTopic(analysisID))
	s.logger.Debug(ctx, "note added", "analysis_id", analysisID, "note_id", note.ID)

	out, err := presentNote(ctx, s.images, *note)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the notes of one of the caller's analyses, newest first.
func (s *NoteService) List(ctx context.Context, ownerID, analysisID string) ([]models.GrowthNote, error) {
	if _, err := ownedRecord(ctx, s.repomanager.Analyses(s.db), ownerID, analysisID); err != nil {
		return nil, err
	}
	return loadNotes(ctx, s.repomanager.Notes(s.db), s.images, analysisID)
}

type noteLister interface {
	ListByAnalysis(ctx context.Context, analysisID string) ([]models.GrowthNote, error)
}

func loadNotes(ctx context.Context, repo noteLister, store images.Store, analysisID string) ([]models.GrowthNote, error) {
	notes, err := repo.ListByAnalysis(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i], err = presentNote(ctx, store, notes[i]); err != nil {
			return nil, err
		}
	}
	return notes, nil
}
