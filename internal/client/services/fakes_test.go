package services

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/client"
	"github.com/stretchr/testify/require"
)

type savedCall struct {
	ImageDataURI string
	Result       api.AnalysisResult
}

type noteCall struct {
	AnalysisID   string
	Note         string
	ImageDataURI string
}

// fakeClient implements client.Client; methods not overridden here panic
// through the nil embedded interface.
type fakeClient struct {
	client.Client

	mu sync.Mutex

	authResp  *api.AuthResponse
	authErr   error
	forgot    bool
	onRefresh func(string)

	lastResumeToken string

	analyze func(ctx context.Context, uri string) (*api.AnalysisResult, error)

	saveResp *api.SaveAnalysisResponse
	saveErr  error
	lastSave *savedCall

	listResp []api.AnalysisRecord
	listErr  error

	getResp *api.AnalysisRecord
	getErr  error

	lastNote *noteCall
	noteErr  error

	timeline []api.TimelineEntry

	chatReply   string
	chatErr     error
	chatHistory [][]api.ChatMessage
}

func (f *fakeClient) OnTokensRefreshed(fn func(string)) { f.onRefresh = fn }
func (f *fakeClient) Forget()                           { f.forgot = true }
func (f *fakeClient) Close() error                      { return nil }
func (f *fakeClient) Ping(context.Context) error        { return f.authErr }

func (f *fakeClient) Register(ctx context.Context, email, password, displayName string) (*api.AuthResponse, error) {
	return f.authResp, f.authErr
}
func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	return f.authResp, f.authErr
}
func (f *fakeClient) SignInAnonymously(ctx context.Context) (*api.AuthResponse, error) {
	return f.authResp, f.authErr
}
func (f *fakeClient) Resume(ctx context.Context, token string) (*api.AuthResponse, error) {
	f.lastResumeToken = token
	return f.authResp, f.authErr
}

func (f *fakeClient) Analyze(ctx context.Context, uri string) (*api.AnalysisResult, error) {
	return f.analyze(ctx, uri)
}
func (f *fakeClient) SaveAnalysis(ctx context.Context, uri string, result api.AnalysisResult) (*api.SaveAnalysisResponse, error) {
	f.lastSave = &savedCall{ImageDataURI: uri, Result: result}
	return f.saveResp, f.saveErr
}
func (f *fakeClient) ListAnalyses(ctx context.Context, limit, offset int) ([]api.AnalysisRecord, error) {
	return f.listResp, f.listErr
}
func (f *fakeClient) GetAnalysis(ctx context.Context, id string) (*api.AnalysisRecord, error) {
	return f.getResp, f.getErr
}

func (f *fakeClient) AddNote(ctx context.Context, analysisID, text, uri string) (*api.GrowthNote, error) {
	f.lastNote = &noteCall{AnalysisID: analysisID, Note: text, ImageDataURI: uri}
	if f.noteErr != nil {
		return nil, f.noteErr
	}
	return &api.GrowthNote{ID: "n-1", AnalysisID: analysisID, Note: text}, nil
}
func (f *fakeClient) GetTimeline(ctx context.Context, analysisID string) ([]api.TimelineEntry, error) {
	return f.timeline, nil
}
func (f *fakeClient) WatchTimeline(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) error {
	return fn(f.timeline)
}

func (f *fakeClient) GetRank(ctx context.Context) (*api.GetRankResponse, error) {
	return &api.GetRankResponse{Rank: api.RankState{XP: 100, RankName: "Seedling"}, SavedAnalyses: 2}, nil
}
func (f *fakeClient) Chat(ctx context.Context, query string, history []api.ChatMessage) (string, error) {
	f.mu.Lock()
	f.chatHistory = append(f.chatHistory, history)
	f.mu.Unlock()
	return f.chatReply, f.chatErr
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func writePhoto(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leaf.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))
	return path
}
