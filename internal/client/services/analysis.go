package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/client"
	"github.com/dmitrijs2005/plantvision/internal/client/repositories/history"
	"github.com/dmitrijs2005/plantvision/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/plantvision/internal/client/session"
	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/datauri"
	"github.com/dmitrijs2005/plantvision/internal/filex"
	"github.com/dmitrijs2005/plantvision/internal/netx"
)

// MaxPhotoDownload bounds photos fetched by SavePhoto.
const MaxPhotoDownload = 20 << 20

var (
	ErrNoAnalysis         = errors.New("no finished analysis to save")
	ErrAnalysisIncomplete = errors.New("analysis did not complete")
)

// Analysis is one photo and what the server made of it.
type Analysis struct {
	Path         string
	ImageDataURI string
	Result       *api.AnalysisResult
}

// AnalysisService runs analyses in the background, saves them and lists
// the saved history. Only the most recently started analysis is kept;
// see package session.
type AnalysisService interface {
	Start(ctx context.Context, path string) (uint64, error)
	Current() (session.Result[Analysis], bool)
	Running() bool
	Cancel()
	Save(ctx context.Context) (*api.SaveAnalysisResponse, error)
	List(ctx context.Context, limit, offset int) (records []api.AnalysisRecord, cached bool, err error)
	Get(ctx context.Context, id string) (record *api.AnalysisRecord, cached bool, err error)
	SavePhoto(ctx context.Context, rec *api.AnalysisRecord, dir string) (string, error)
	Wait()
}

type analysisService struct {
	client  client.Client
	db      *sql.DB
	timeout time.Duration
	session *session.Session[Analysis]
}

// NewAnalysisService wires the service. timeout bounds one run (zero means
// no bound); notify (may be nil) is told about every analysis outcome that
// becomes current.
func NewAnalysisService(c client.Client, db *sql.DB, timeout time.Duration, notify func(session.Result[Analysis])) AnalysisService {
	return &analysisService{client: c, db: db, timeout: timeout, session: session.New(notify)}
}

func (s *analysisService) owner(ctx context.Context) (string, error) {
	id, ok, err := metadata.NewSQLiteRepository(s.db).Get(ctx, metadata.KeyUserID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", client.ErrUnauthorized
	}
	return id, nil
}

// Start reads the photo at path and submits it. The returned sequence
// number identifies the run; starting another one supersedes it.
func (s *analysisService) Start(ctx context.Context, path string) (uint64, error) {
	data, mimeType, err := filex.ReadImage(path)
	if err != nil {
		return 0, err
	}
	uri := datauri.Encode(mimeType, data)

	seq := s.session.Start(ctx, func(ctx context.Context) (Analysis, error) {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		res, err := s.client.Analyze(ctx, uri)
		if err != nil {
			return Analysis{Path: path}, err
		}
		return Analysis{Path: path, ImageDataURI: uri, Result: res}, nil
	})
	return seq, nil
}

func (s *analysisService) Current() (session.Result[Analysis], bool) {
	return s.session.Current()
}

func (s *analysisService) Running() bool {
	return s.session.Running()
}

func (s *analysisService) Cancel() {
	s.session.Cancel()
}

func (s *analysisService) Wait() {
	s.session.Wait()
}

// Save stores the current analysis on the server and in the local cache.
// The current analysis is cleared on success.
func (s *analysisService) Save(ctx context.Context) (*api.SaveAnalysisResponse, error) {
	cur, ok := s.session.Current()
	if !ok || cur.Err != nil || cur.Value.Result == nil {
		return nil, ErrNoAnalysis
	}
	res := cur.Value.Result
	if res.Identification == nil || res.Diagnosis == nil {
		return nil, ErrAnalysisIncomplete
	}

	resp, err := s.client.SaveAnalysis(ctx, cur.Value.ImageDataURI, *res)
	if err != nil {
		return nil, fmt.Errorf("save error: %w", err)
	}

	if owner, err := s.owner(ctx); err == nil {
		_ = history.NewSQLiteRepository(s.db).Put(ctx, owner, []api.AnalysisRecord{resp.Record})
	}
	s.session.Reset()
	return resp, nil
}

// List asks the server first and refreshes the cache; when the server is
// unreachable the cached copy is returned with cached=true.
func (s *analysisService) List(ctx context.Context, limit, offset int) ([]api.AnalysisRecord, bool, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, false, err
	}
	repo := history.NewSQLiteRepository(s.db)

	records, err := s.client.ListAnalyses(ctx, limit, offset)
	if err == nil {
		if cErr := repo.Put(ctx, owner, records); cErr != nil {
			return records, false, fmt.Errorf("cache error: %w", cErr)
		}
		return records, false, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return nil, false, err
	}

	if limit <= 0 {
		limit = 20
	}
	cached, cErr := repo.List(ctx, owner, limit, offset)
	if cErr != nil {
		return nil, false, errors.Join(err, cErr)
	}
	return cached, true, nil
}

func (s *analysisService) Get(ctx context.Context, id string) (*api.AnalysisRecord, bool, error) {
	owner, err := s.owner(ctx)
	if err != nil {
		return nil, false, err
	}
	repo := history.NewSQLiteRepository(s.db)

	rec, err := s.client.GetAnalysis(ctx, id)
	if err == nil {
		_ = repo.Put(ctx, owner, []api.AnalysisRecord{*rec})
		return rec, false, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return nil, false, err
	}

	cached, cErr := repo.Get(ctx, owner, id)
	if cErr != nil {
		if errors.Is(cErr, common.ErrorNotFound) {
			return nil, false, err
		}
		return nil, false, errors.Join(err, cErr)
	}
	return cached, true, nil
}

// SavePhoto writes the record's photo into dir and returns the file path.
// Inline data URIs are decoded; anything else is downloaded.
func (s *analysisService) SavePhoto(ctx context.Context, rec *api.AnalysisRecord, dir string) (string, error) {
	var (
		data     []byte
		mimeType string
		err      error
	)
	if datauri.IsDataURI(rec.PlantImageURI) {
		mimeType, data, err = datauri.Decode(rec.PlantImageURI)
	} else {
		data, mimeType, err = netx.Download(ctx, rec.PlantImageURI, MaxPhotoDownload)
	}
	if err != nil {
		return "", fmt.Errorf("photo error: %w", err)
	}

	target, err := filex.EnsureSubdDir(dir)
	if err != nil {
		return "", err
	}

	ext := ".img"
	if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
		ext = exts[0]
	}
	path := filepath.Join(target, rec.ID+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return path, nil
}
