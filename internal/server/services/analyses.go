package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/datauri"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/auth"
	"github.com/dmitrijs2005/plantvision/internal/server/config"
	"github.com/dmitrijs2005/plantvision/internal/server/images"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Runner runs one analysis; *analysis.Orchestrator implements it.
type Runner interface {
	Run(ctx context.Context, img provider.Image) (*models.AnalysisResult, error)
}

type AnalysisService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	runner      Runner
	images      images.Store
	persistMode string
	logger      logging.Logger

	now   func() time.Time
	newID func() string

	// background inserts in optimistic mode
	pending sync.WaitGroup
}

func NewAnalysisService(db *sql.DB, m repomanager.RepositoryManager, r Runner, store images.Store, persistMode string, logger logging.Logger) *AnalysisService {
	return &AnalysisService{
		db:          db,
		repomanager: m,
		runner:      r,
		images:      store,
		persistMode: persistMode,
		logger:      logger.With("module", "analyses"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// DecodeImage parses a data URI into a provider.Image, rejecting anything
// that is not an image.
func DecodeImage(uri string) (provider.Image, error) {
	mime, data, err := datauri.Decode(uri)
	if err != nil {
		return provider.Image{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	if !strings.HasPrefix(mime, "image/") {
		return provider.Image{}, fmt.Errorf("%w: unsupported media type %q", common.ErrorValidation, mime)
	}
	return provider.Image{MIMEType: mime, Data: data}, nil
}

// Analyze runs the identify, diagnose and remedies sequence on a photo.
// Nothing is stored.
func (s *AnalysisService) Analyze(ctx context.Context, imageDataURI string) (*models.AnalysisResult, error) {
	img, err := DecodeImage(imageDataURI)
	if err != nil {
		return nil, err
	}
	return s.runner.Run(ctx, img)
}

// Save persists a finished analysis for the caller. In optimistic mode the
// record is returned before the insert completes and pending is true.
func (s *AnalysisService) Save(ctx context.Context, who auth.Identity, imageDataURI string, result *models.AnalysisResult) (rec *models.AnalysisRecord, pending bool, err error) {
	if who.Anonymous {
		return nil, false, fmt.Errorf("%w: sign up to save analyses", common.ErrorForbidden)
	}
	if result == nil || result.Identification == nil || result.Diagnosis == nil {
		return nil, false, fmt.Errorf("%w: incomplete analysis result", common.ErrorValidation)
	}
	if strings.TrimSpace(result.Identification.CommonName) == "" {
		return nil, false, fmt.Errorf("%w: plant name is empty", common.ErrorValidation)
	}
	img, err := DecodeImage(imageDataURI)
	if err != nil {
		return nil, false, err
	}

	ref, err := s.images.Put(ctx, who.UserID, img)
	if err != nil {
		return nil, false, err
	}

	remedies := common.NoRemedies
	if result.Remedies != nil && strings.TrimSpace(result.Remedies.Remedies) != "" {
		remedies = result.Remedies.Remedies
	}

	id := result.Identification
	rec = &models.AnalysisRecord{
		ID:                   s.newID(),
		OwnerID:              who.UserID,
		PlantImageURI:        ref,
		AnalysisDate:         s.now().UTC(),
		PlantName:            id.CommonName,
		ScientificName:       id.ScientificName,
		GrowthRate:           id.GrowthRate,
		WaterNeeds:           id.WaterNeeds,
		SunlightRequirements: id.SunlightRequirements,
		IdentifiedDiseases:   []string{result.Diagnosis.PrimaryDiagnosis},
		RemedySuggestions:    remedies,
	}

	if s.persistMode == config.PersistOptimistic {
		stored := *rec
		s.pending.Add(1)
		go func() {
			defer s.pending.Done()
			bg := context.WithoutCancel(ctx)
			if err := s.repomanager.Analyses(s.db).Create(bg, &stored); err != nil {
				s.logger.Error(bg, "background save failed", "analysis_id", stored.ID, "error", err)
				return
			}
			s.logger.Info(bg, "analysis saved", "analysis_id", stored.ID)
		}()
		pending = true
	} else {
		if err := s.repomanager.Analyses(s.db).Create(ctx, rec); err != nil {
			return nil, false, err
		}
		s.logger.Info(ctx, "analysis saved", "analysis_id", rec.ID)
	}

	out, err := presentRecord(ctx, s.images, *rec)
	if err != nil {
		return nil, false, err
	}
	return &out, pending, nil
}

// Wait blocks until background inserts started in optimistic mode finish.
func (s *AnalysisService) Wait() {
	s.pending.Wait()
}

// List returns the owner's records, newest first.
func (s *AnalysisService) List(ctx context.Context, ownerID string, limit, offset int) ([]models.AnalysisRecord, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset", common.ErrorValidation)
	}

	recs, err := s.repomanager.Analyses(s.db).ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i], err = presentRecord(ctx, s.images, recs[i]); err != nil {
			return nil, err
		}
	}
	return recs, nil
}

func (s *AnalysisService) Get(ctx context.Context, ownerID, analysisID string) (*models.AnalysisRecord, error) {
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

type recordGetter interface {
	Get(ctx context.Context, id string) (*models.AnalysisRecord, error)
}

// ownedRecord loads a record and checks it belongs to ownerID. Someone
// else's record is reported as not found, same as a missing one.
func ownedRecord(ctx context.Context, repo recordGetter, ownerID, analysisID string) (*models.AnalysisRecord, error) {
	if _, err := uuid.Parse(analysisID); err != nil {
		return nil, common.ErrorNotFound
	}
	rec, err := repo.Get(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	return rec, nil
}

// presentRecord swaps the stored image reference for a fetchable URL.
func presentRecord(ctx context.Context, store images.Store, rec models.AnalysisRecord) (models.AnalysisRecord, error) {
	url, err := store.URL(ctx, rec.PlantImageURI)
	if err != nil {
		return rec, err
	}
	rec.PlantImageURI = url
	return rec, nil
}

func presentNote(ctx context.Context, store images.Store, n models.GrowthNote) (models.GrowthNote, error) {
	if n.ImageURL == "" {
		return n, nil
	}
	url, err := store.URL(ctx, n.ImageURL)
	if err != nil {
		return n, err
	}
	n.ImageURL = url
	return n, nil
}

