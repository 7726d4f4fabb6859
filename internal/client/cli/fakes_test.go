package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/config"
	"github.com/dmitrijs2005/plantvision/internal/client/services"
	"github.com/dmitrijs2005/plantvision/internal/client/session"
)

type fakeAuth struct {
	user     *services.User
	lastUser *services.User
	err      error
	pingErr  error

	email, password, name string
	loggedOut             bool
	closed                bool
}

func (f *fakeAuth) Register(ctx context.Context, email, password, displayName string) (*services.User, error) {
	f.email, f.password, f.name = email, password, displayName
	return f.user, f.err
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (*services.User, error) {
	f.email, f.password = email, password
	return f.user, f.err
}
func (f *fakeAuth) Guest(ctx context.Context) (*services.User, error)    { return f.user, f.err }
func (f *fakeAuth) Resume(ctx context.Context) (*services.User, error)   { return f.user, f.err }
func (f *fakeAuth) LastUser(ctx context.Context) (*services.User, error) { return f.lastUser, nil }
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return f.err
}
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error { f.closed = true; return nil }

type fakeAnalyses struct {
	running   bool
	current   session.Result[services.Analysis]
	hasResult bool
	seq       uint64
	startErr  error
	started   []string
	cancelled int

	saveResp *api.SaveAnalysisResponse
	saveErr  error

	records    []api.AnalysisRecord
	cached     bool
	listErr    error
	listLimit  int
	listOffset int

	record    *api.AnalysisRecord
	getErr    error
	photoPath string
	photoDir  string
}

func (f *fakeAnalyses) Start(ctx context.Context, path string) (uint64, error) {
	if f.startErr != nil {
		return 0, f.startErr
	}
	f.seq++
	f.started = append(f.started, path)
	f.running = true
	return f.seq, nil
}
func (f *fakeAnalyses) Current() (session.Result[services.Analysis], bool) {
	return f.current, f.hasResult
}
func (f *fakeAnalyses) Running() bool { return f.running }
func (f *fakeAnalyses) Cancel() {
	f.cancelled++
	f.running = false
}
func (f *fakeAnalyses) Save(ctx context.Context) (*api.SaveAnalysisResponse, error) {
	return f.saveResp, f.saveErr
}
func (f *fakeAnalyses) List(ctx context.Context, limit, offset int) ([]api.AnalysisRecord, bool, error) {
	f.listLimit, f.listOffset = limit, offset
	return f.records, f.cached, f.listErr
}
func (f *fakeAnalyses) Get(ctx context.Context, id string) (*api.AnalysisRecord, bool, error) {
	return f.record, f.cached, f.getErr
}
func (f *fakeAnalyses) SavePhoto(ctx context.Context, rec *api.AnalysisRecord, dir string) (string, error) {
	f.photoDir = dir
	return f.photoPath, nil
}
func (f *fakeAnalyses) Wait() {}

type fakeGarden struct {
	note      *api.GrowthNote
	err       error
	text      string
	photo     string
	entries   []api.TimelineEntry
	watchDone chan struct{}
}

func (f *fakeGarden) AddNote(ctx context.Context, analysisID, text, photoPath string) (*api.GrowthNote, error) {
	f.text, f.photo = text, photoPath
	return f.note, f.err
}
func (f *fakeGarden) Timeline(ctx context.Context, analysisID string) ([]api.TimelineEntry, error) {
	return f.entries, f.err
}
func (f *fakeGarden) Watch(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) error {
	if err := fn(f.entries); err != nil {
		return err
	}
	<-ctx.Done()
	if f.watchDone != nil {
		close(f.watchDone)
	}
	return nil
}

type fakeAccount struct {
	rank        *api.GetRankResponse
	board       []api.LeaderboardEntry
	boardLimit  int
	settings    *api.Settings
	patch       *api.SettingsPatch
	err         error
	chatReplies []string
	queries     []string
	resets      int
	translated  string
	translateTo string
}

func (f *fakeAccount) Rank(ctx context.Context) (*api.GetRankResponse, error) { return f.rank, f.err }
func (f *fakeAccount) Leaderboard(ctx context.Context, limit int) ([]api.LeaderboardEntry, error) {
	f.boardLimit = limit
	return f.board, f.err
}
func (f *fakeAccount) Settings(ctx context.Context) (*api.Settings, error) { return f.settings, f.err }
func (f *fakeAccount) UpdateSettings(ctx context.Context, patch api.SettingsPatch) (*api.Settings, error) {
	f.patch = &patch
	return f.settings, f.err
}
func (f *fakeAccount) Chat(ctx context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	if len(f.chatReplies) == 0 {
		return "", f.err
	}
	r := f.chatReplies[0]
	f.chatReplies = f.chatReplies[1:]
	return r, nil
}
func (f *fakeAccount) ResetChat() { f.resets++ }
func (f *fakeAccount) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	f.translateTo = targetLanguage
	return f.translated, nil
}

// syncBuffer lets the watch goroutine and the test share output.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

type testApp struct {
	*App
	auth     *fakeAuth
	analyses *fakeAnalyses
	garden   *fakeGarden
	account  *fakeAccount
	out      *syncBuffer
}

func newTestApp(input ...string) *testApp {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.RequestTimeout = time.Second

	t := &testApp{
		auth:     &fakeAuth{},
		analyses: &fakeAnalyses{},
		garden:   &fakeGarden{},
		account:  &fakeAccount{},
		out:      &syncBuffer{},
	}
	t.App = &App{
		config:   cfg,
		auth:     t.auth,
		analyses: t.analyses,
		garden:   t.garden,
		account:  t.account,
		reader:   bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n")),
		out:      t.out,
	}
	return t
}
