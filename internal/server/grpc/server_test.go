package grpc

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"github.com/dmitrijs2005/plantvision/internal/server/analysis"
	"github.com/dmitrijs2005/plantvision/internal/server/auth"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/rank"
	"github.com/dmitrijs2005/plantvision/internal/server/services"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

var at = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeUsers struct{}

func (fakeUsers) Register(_ context.Context, email, password, name string) (*services.AuthResult, error) {
	if len(password) < services.MinPasswordLength {
		return nil, common.ErrorValidation
	}
	return &services.AuthResult{AccessToken: "a", RefreshToken: "r", User: &models.User{ID: "u-1", DisplayName: name}}, nil
}
func (fakeUsers) Login(context.Context, string, string) (*services.AuthResult, error) {
	return nil, common.ErrorUnauthorized
}
func (fakeUsers) SignInAnonymously(context.Context) (*services.AuthResult, error) {
	return &services.AuthResult{AccessToken: "a", RefreshToken: "r", User: &models.User{ID: "g-1", DisplayName: "Guest", IsAnonymous: true}}, nil
}
func (fakeUsers) RefreshToken(context.Context, string) (*services.AuthResult, error) {
	return nil, common.ErrRefreshTokenExpired
}

type fakeAnalyses struct {
	saveWho auth.Identity
}

func (f *fakeAnalyses) Analyze(context.Context, string) (*models.AnalysisResult, error) {
	return nil, &analysis.Failure{Kind: analysis.KindProvider, Step: analysis.StepIdentify, Err: common.ErrProvider}
}
func (f *fakeAnalyses) Save(_ context.Context, who auth.Identity, _ string, r *models.AnalysisResult) (*models.AnalysisRecord, bool, error) {
	f.saveWho = who
	if who.Anonymous {
		return nil, false, common.ErrorForbidden
	}
	return &models.AnalysisRecord{ID: "a-1", OwnerID: who.UserID, PlantName: r.Identification.CommonName, AnalysisDate: at}, true, nil
}
func (f *fakeAnalyses) List(_ context.Context, owner string, _, _ int) ([]models.AnalysisRecord, error) {
	return []models.AnalysisRecord{{ID: "a-1", OwnerID: owner}}, nil
}
func (f *fakeAnalyses) Get(_ context.Context, owner, id string) (*models.AnalysisRecord, error) {
	return nil, common.ErrorNotFound
}

type fakeTimeline struct{}

func (fakeTimeline) Get(context.Context, string, string) ([]timeline.Entry, error) { return nil, nil }
func (fakeTimeline) Watch(ctx context.Context, owner, id string, emit func([]timeline.Entry) error) error {
	rec := models.AnalysisRecord{ID: id, OwnerID: owner, AnalysisDate: at}
	if err := emit(timeline.Build(rec, nil)); err != nil {
		return err
	}
	note := models.GrowthNote{ID: "n-1", AnalysisID: id, NoteDate: at.Add(time.Hour), Note: "new leaf"}
	return emit(timeline.Build(rec, []models.GrowthNote{note}))
}

type fakeProgress struct{}

func (fakeProgress) Rank(context.Context, string) (rank.State, int, error) {
	return rank.Default().Calculate(150), 3, nil
}
func (fakeProgress) Leaderboard(context.Context, int) ([]services.LeaderboardEntry, error) {
	return []services.LeaderboardEntry{{Position: 1, DisplayName: "Ada", XP: 500, RankName: "Botanist"}}, nil
}

func dialBufconn(t *testing.T, lis *bufconn.Listener) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	return conn
}

// serveBufconn runs s on an in-memory listener. stop cancels the serve
// context; done yields the result of Serve.
func serveBufconn(t *testing.T, s *GRPCServer) (conn *grpc.ClientConn, stop context.CancelFunc, done <-chan error) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() { errs <- s.Serve(ctx, lis) }()

	conn = dialBufconn(t, lis)
	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
	})
	return conn, cancel, errs
}

func startServer(t *testing.T) (pb.PlantVisionServiceClient, *fakeAnalyses, *grpc.ClientConn) {
	t.Helper()

	analyses := &fakeAnalyses{}
	s := NewGRPCServer("bufconn", logging.Nop{}, Services{
		Users:    fakeUsers{},
		Analyses: analyses,
		Timeline: fakeTimeline{},
		Progress: fakeProgress{},
	}, testSecret)

	conn, stop, done := serveBufconn(t, s)
	t.Cleanup(func() {
		_ = conn.Close()
		stop()
		require.NoError(t, <-done)
	})
	return pb.NewPlantVisionServiceClient(conn), analyses, conn
}

func authed(t *testing.T, id auth.Identity) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(id, []byte(testSecret), time.Minute)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestServer_PublicAndProtected(t *testing.T) {
	c, _, _ := startServer(t)
	ctx := context.Background()

	pong, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.Status)

	resp, err := c.RegisterUser(ctx, &pb.RegisterUserRequest{Email: "a@b.c", Password: "secret1", DisplayName: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", resp.DisplayName)

	_, err = c.RegisterUser(ctx, &pb.RegisterUserRequest{Email: "a@b.c", Password: "x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Login(ctx, &pb.LoginRequest{Email: "a@b.c", Password: "nope"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: "old"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	guest, err := c.SignInAnonymously(ctx, &pb.SignInAnonymouslyRequest{})
	require.NoError(t, err)
	assert.True(t, guest.Anonymous)

	_, err = c.ListAnalyses(ctx, &pb.ListAnalysesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_AnalysisFlow(t *testing.T) {
	c, analyses, _ := startServer(t)
	ctx := authed(t, auth.Identity{UserID: "u-1"})

	_, err := c.Analyze(ctx, &pb.AnalyzeRequest{ImageDataUri: "data:image/png;base64,AA=="})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	saved, err := c.SaveAnalysis(ctx, &pb.SaveAnalysisRequest{
		ImageDataUri: "data:image/png;base64,AA==",
		Result: &pb.AnalysisResult{
			Identification: &pb.Identification{CommonName: "Fern"},
			Diagnosis:      &pb.Diagnosis{PrimaryDiagnosis: "Healthy"},
		},
	})
	require.NoError(t, err)
	assert.True(t, saved.GetPending())
	assert.Equal(t, "Fern", saved.GetRecord().GetPlantName())
	assert.Equal(t, at, saved.GetRecord().GetAnalysisDate().AsTime())
	assert.Equal(t, auth.Identity{UserID: "u-1"}, analyses.saveWho)

	_, err = c.SaveAnalysis(authed(t, auth.Identity{UserID: "g-1", Anonymous: true}), &pb.SaveAnalysisRequest{
		Result: &pb.AnalysisResult{Identification: &pb.Identification{CommonName: "Fern"}},
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	list, err := c.ListAnalyses(ctx, &pb.ListAnalysesRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetRecords(), 1)
	assert.Equal(t, "u-1", list.GetRecords()[0].GetOwnerId())
	assert.Nil(t, list.GetRecords()[0].GetAnalysisDate())

	_, err = c.GetAnalysis(ctx, &pb.GetAnalysisRequest{AnalysisId: "x"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_Progress(t *testing.T) {
	c, _, _ := startServer(t)
	ctx := authed(t, auth.Identity{UserID: "u-1"})

	r, err := c.GetRank(ctx, &pb.GetRankRequest{})
	require.NoError(t, err)
	want := &pb.RankState{Xp: 150, RankName: "Seedling", ProgressPercent: 33, XpToNextRank: 100}
	assert.True(t, proto.Equal(want, r.GetRank()), "got %v", r.GetRank())
	assert.Equal(t, int32(3), r.GetSavedAnalyses())

	lb, err := c.GetLeaderboard(ctx, &pb.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, lb.GetEntries(), 1)
	wantEntry := &pb.LeaderboardEntry{Position: 1, DisplayName: "Ada", Xp: 500, RankName: "Botanist"}
	assert.True(t, proto.Equal(wantEntry, lb.GetEntries()[0]), "got %v", lb.GetEntries()[0])
}

func TestServer_WatchTimeline(t *testing.T) {
	c, _, _ := startServer(t)

	stream, err := c.WatchTimeline(authed(t, auth.Identity{UserID: "u-1"}), &pb.WatchTimelineRequest{AnalysisId: "a-1"})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	require.Len(t, first.Entries, 1)
	assert.Equal(t, string(timeline.KindAnalysis), first.Entries[0].GetKind())

	second, err := stream.Recv()
	require.NoError(t, err)
	require.Len(t, second.Entries, 2)
	assert.Equal(t, string(timeline.KindNote), second.Entries[0].GetKind())
	assert.Equal(t, "new leaf", second.Entries[0].GetNote().GetNote())
	assert.Equal(t, at.Add(time.Hour), second.Entries[0].GetAt().AsTime())

	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestServer_WatchTimelineNeedsToken(t *testing.T) {
	c, _, _ := startServer(t)

	stream, err := c.WatchTimeline(context.Background(), &pb.WatchTimelineRequest{AnalysisId: "a-1"})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_Health(t *testing.T) {
	_, _, conn := startServer(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.PlantVisionService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

// heldTimeline emits once and then holds the stream open until its
// context ends.
type heldTimeline struct{ fakeTimeline }

func (heldTimeline) Watch(ctx context.Context, owner, id string, emit func([]timeline.Entry) error) error {
	if err := emit(timeline.Build(models.AnalysisRecord{ID: id, OwnerID: owner, AnalysisDate: at}, nil)); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func TestServe_StopsWithOpenWatchStream(t *testing.T) {
	s := NewGRPCServer("bufconn", logging.Nop{}, Services{Timeline: heldTimeline{}}, testSecret)
	conn, stop, done := serveBufconn(t, s)

	stream, err := pb.NewPlantVisionServiceClient(conn).WatchTimeline(
		authed(t, auth.Identity{UserID: "u-1"}), &pb.WatchTimelineRequest{AnalysisId: "a-1"})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.NoError(t, err)

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return while a watch stream was open")
	}

	_, err = stream.Recv()
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

// stuckProgress blocks GetRank until released, ignoring cancellation.
type stuckProgress struct {
	fakeProgress
	entered chan struct{}
	release chan struct{}
}

func (p stuckProgress) Rank(context.Context, string) (rank.State, int, error) {
	close(p.entered)
	<-p.release
	return rank.State{}, 0, nil
}

func TestServe_ForcesStopAfterGracePeriod(t *testing.T) {
	old := gracePeriod
	gracePeriod = 50 * time.Millisecond
	t.Cleanup(func() { gracePeriod = old })

	progress := stuckProgress{entered: make(chan struct{}), release: make(chan struct{})}
	t.Cleanup(func() { close(progress.release) })

	s := NewGRPCServer("bufconn", logging.Nop{}, Services{Progress: progress}, testSecret)
	conn, stop, done := serveBufconn(t, s)

	ctx := authed(t, auth.Identity{UserID: "u-1"})
	callErr := make(chan error, 1)
	go func() {
		_, err := pb.NewPlantVisionServiceClient(conn).GetRank(ctx, &pb.GetRankRequest{})
		callErr <- err
	}()
	<-progress.entered

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after the grace period")
	}
	assert.Equal(t, codes.Unavailable, status.Code(<-callErr))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := newTestServer()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, Services{}, testSecret)
	err := s.Run(context.Background())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
