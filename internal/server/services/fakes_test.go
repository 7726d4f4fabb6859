package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/dbx"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/analyses"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/notes"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/settings"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeStore is an in-memory stand-in for every repository. Each table has
// an optional error to inject.
type fakeStore struct {
	mu sync.Mutex

	users    map[string]*models.User
	tokens   map[string]*models.RefreshToken
	records  map[string]models.AnalysisRecord
	notes    []models.GrowthNote
	settings map[string]models.Settings

	usersErr    error
	tokensErr   error
	analysesErr error
	notesErr    error
	settingsErr error

	nextUser int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]*models.User{},
		tokens:   map[string]*models.RefreshToken{},
		records:  map[string]models.AnalysisRecord{},
		settings: map[string]models.Settings{},
	}
}

func (f *fakeStore) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (f *fakeStore) Users(dbx.DBTX) users.Repository                 { return fakeUsers{f} }
func (f *fakeStore) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return fakeTokens{f} }
func (f *fakeStore) Analyses(dbx.DBTX) analyses.Repository           { return fakeAnalyses{f} }
func (f *fakeStore) Notes(dbx.DBTX) notes.Repository                 { return fakeNotes{f} }
func (f *fakeStore) Settings(dbx.DBTX) settings.Repository           { return fakeSettings{f} }

func (f *fakeStore) recordCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

type fakeUsers struct{ f *fakeStore }

func (r fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.usersErr != nil {
		return nil, r.f.usersErr
	}
	if u.Email != nil {
		for _, existing := range r.f.users {
			if existing.Email != nil && *existing.Email == *u.Email {
				return nil, common.ErrorAlreadyExists
			}
		}
	}
	r.f.nextUser++
	u.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.f.nextUser)
	u.CreatedAt = time.Now()
	cp := *u
	r.f.users[u.ID] = &cp
	return u, nil
}

func (r fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.usersErr != nil {
		return nil, r.f.usersErr
	}
	for _, u := range r.f.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	u, ok := r.f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeTokens struct{ f *fakeStore }

func (r fakeTokens) Create(_ context.Context, userID, token string, validity time.Duration) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.tokensErr != nil {
		return r.f.tokensErr
	}
	r.f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (r fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	t, ok := r.f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (r fakeTokens) Delete(_ context.Context, token string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	delete(r.f.tokens, token)
	return nil
}

type fakeAnalyses struct{ f *fakeStore }

func (r fakeAnalyses) Create(_ context.Context, rec *models.AnalysisRecord) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.analysesErr != nil {
		return r.f.analysesErr
	}
	r.f.records[rec.ID] = *rec
	return nil
}

func (r fakeAnalyses) Get(_ context.Context, id string) (*models.AnalysisRecord, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.analysesErr != nil {
		return nil, r.f.analysesErr
	}
	rec, ok := r.f.records[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &rec, nil
}

func (r fakeAnalyses) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]models.AnalysisRecord, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.analysesErr != nil {
		return nil, r.f.analysesErr
	}
	out := []models.AnalysisRecord{}
	for _, rec := range r.f.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b models.AnalysisRecord) int { return b.AnalysisDate.Compare(a.AnalysisDate) })
	if offset >= len(out) {
		return []models.AnalysisRecord{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r fakeAnalyses) CountByOwner(_ context.Context, ownerID string) (int, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.analysesErr != nil {
		return 0, r.f.analysesErr
	}
	n := 0
	for _, rec := range r.f.records {
		if rec.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r fakeAnalyses) Leaderboard(_ context.Context, limit int) ([]models.LeaderboardRow, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.analysesErr != nil {
		return nil, r.f.analysesErr
	}
	counts := map[string]int{}
	for _, rec := range r.f.records {
		counts[rec.OwnerID]++
	}
	out := []models.LeaderboardRow{}
	for id, n := range counts {
		u, ok := r.f.users[id]
		if !ok || u.IsAnonymous {
			continue
		}
		out = append(out, models.LeaderboardRow{UserID: id, DisplayName: u.DisplayName, SavedAnalyses: n})
	}
	slices.SortFunc(out, func(a, b models.LeaderboardRow) int {
		if a.SavedAnalyses != b.SavedAnalyses {
			return b.SavedAnalyses - a.SavedAnalyses
		}
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeNotes struct{ f *fakeStore }

func (r fakeNotes) Create(_ context.Context, n *models.GrowthNote) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.notesErr != nil {
		return r.f.notesErr
	}
	r.f.notes = append(r.f.notes, *n)
	return nil
}

func (r fakeNotes) ListByAnalysis(_ context.Context, analysisID string) ([]models.GrowthNote, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.notesErr != nil {
		return nil, r.f.notesErr
	}
	out := []models.GrowthNote{}
	for _, n := range r.f.notes {
		if n.AnalysisID == analysisID {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b models.GrowthNote) int { return b.NoteDate.Compare(a.NoteDate) })
	return out, nil
}

type fakeSettings struct{ f *fakeStore }

func (r fakeSettings) Get(_ context.Context, userID string) (*models.Settings, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.settingsErr != nil {
		return nil, r.f.settingsErr
	}
	s, ok := r.f.settings[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r fakeSettings) Upsert(_ context.Context, userID string, s models.Settings) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.settingsErr != nil {
		return r.f.settingsErr
	}
	r.f.settings[userID] = s
	return nil
}

// fakeImages records puts and resolves refs by prefixing them.
type fakeImages struct {
	mu     sync.Mutex
	puts   []provider.Image
	putErr error
	urlErr error
}

func (f *fakeImages) Put(_ context.Context, ownerID string, img provider.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	f.puts = append(f.puts, img)
	return "s3://plants/" + ownerID + "/img", nil
}

func (f *fakeImages) URL(_ context.Context, ref string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://cdn/" + strings.TrimPrefix(ref, "s3://"), nil
}

type fakePublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *fakePublisher) Publish(topic string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
}
