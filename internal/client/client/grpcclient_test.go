package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/common"
	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake api client
 *************/

type fakePB struct {
	pb.PlantVisionServiceClient

	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastLoginReq        *pb.LoginRequest
	lastSaveReq         *pb.SaveAnalysisRequest
	lastListReq         *pb.ListAnalysesRequest

	refreshTokenResp *pb.AuthResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	loginResp *pb.AuthResponse
	loginErr  error

	saveResp *pb.SaveAnalysisResponse
	saveErr  error

	listResp *pb.ListAnalysesResponse
	listErr  error
}

func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) SaveAnalysis(ctx context.Context, in *pb.SaveAnalysisRequest, opts ...grpc.CallOption) (*pb.SaveAnalysisResponse, error) {
	f.lastSaveReq = in
	return f.saveResp, f.saveErr
}
func (f *fakePB) ListAnalyses(ctx context.Context, in *pb.ListAnalysesRequest, opts ...grpc.CallOption) (*pb.ListAnalysesResponse, error) {
	f.lastListReq = in
	return f.listResp, f.listErr
}

func expired() error {
	return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.AuthResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	var persisted string
	c.OnTokensRefreshed(func(r string) { persisted = r })

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return expired()
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), pb.PlantVisionService_GetRank_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)

	access, refresh := c.tokens()
	assert.Equal(t, "A2", access)
	assert.Equal(t, "R2", refresh)
	assert.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
	assert.Equal(t, "R2", persisted)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.PlantVisionService_GetRank_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	assert.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_RefreshFailureReturnsOriginalError(t *testing.T) {
	f := &fakePB{refreshTokenErr: status.Error(codes.Unauthenticated, "invalid token")}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.PlantVisionService_GetRank_FullMethodName, nil, nil, nil, invoker)
	assert.True(t, isTokenExpired(err))
}

func TestInterceptor_RefreshCallItselfIsPassedThrough(t *testing.T) {
	c := &GRPCClient{accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		assert.Empty(t, md.Get(common.AccessTokenHeaderName))
		return expired()
	}

	err := c.accessTokenInterceptor(context.Background(), pb.PlantVisionService_RefreshToken_FullMethodName, nil, nil, nil, invoker)
	assert.True(t, isTokenExpired(err))
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), pb.PlantVisionService_GetRank_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestRefresh_SkipsWhenAlreadyRotated(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A2", refreshToken: "R2"}

	require.NoError(t, c.refresh(context.Background(), "A1"))
	assert.Nil(t, f.lastRefreshTokenReq)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "sign up to save")), ErrForbidden)
	assert.ErrorContains(t, c.mapError(status.Error(codes.PermissionDenied, "sign up to save")), "sign up to save")
	assert.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), ErrInvalidInput)
	assert.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrorNotFound)
	assert.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrorAlreadyExists)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Canceled, "x")), context.Canceled)
	assert.ErrorContains(t, c.mapError(status.Error(codes.Internal, "x")), "rpc error:")

	plain := errors.New("plain")
	assert.Same(t, plain, c.mapError(plain))
	assert.NoError(t, c.mapError(nil))
}

/*************
 * call tests
 *************/

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLogin_RemembersTokens(t *testing.T) {
	f := &fakePB{loginResp: &pb.AuthResponse{AccessToken: "A", RefreshToken: "R", UserId: "u-1"}}
	c := &GRPCClient{client: f}

	resp, err := c.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, "ann@example.com", f.lastLoginReq.Email)

	access, refresh := c.tokens()
	assert.Equal(t, "A", access)
	assert.Equal(t, "R", refresh)

	c.Forget()
	access, refresh = c.tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestLogin_MapsError(t *testing.T) {
	c := &GRPCClient{client: &fakePB{loginErr: status.Error(codes.Unauthenticated, "invalid credentials")}}
	_, err := c.Login(context.Background(), "a@b.c", "x")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSaveAnalysis(t *testing.T) {
	f := &fakePB{saveResp: &pb.SaveAnalysisResponse{Record: &pb.AnalysisRecord{Id: "r-1"}, Pending: true}}
	c := &GRPCClient{client: f}
	result := api.AnalysisResult{Identification: &api.Identification{CommonName: "Basil"}}

	resp, err := c.SaveAnalysis(context.Background(), "data:image/png;base64,AA==", result)
	require.NoError(t, err)
	assert.Equal(t, "r-1", resp.Record.ID)
	assert.True(t, resp.Pending)
	assert.Equal(t, "Basil", f.lastSaveReq.GetResult().GetIdentification().GetCommonName())
	assert.Equal(t, "data:image/png;base64,AA==", f.lastSaveReq.GetImageDataUri())

	f.saveErr = status.Error(codes.PermissionDenied, "sign up to save")
	_, err = c.SaveAnalysis(context.Background(), "x", result)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListAnalyses(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := &fakePB{listResp: &pb.ListAnalysesResponse{Records: []*pb.AnalysisRecord{
		{Id: "a", AnalysisDate: timestamppb.New(at), IdentifiedDiseases: []string{"rust"}},
		{Id: "b"},
	}}}
	c := &GRPCClient{client: f}

	got, err := c.ListAnalyses(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, api.AnalysisRecord{ID: "a", AnalysisDate: at, IdentifiedDiseases: []string{"rust"}}, got[0])
	assert.True(t, got[1].AnalysisDate.IsZero())
	assert.Equal(t, int32(5), f.lastListReq.GetLimit())
	assert.Equal(t, int32(10), f.lastListReq.GetOffset())

	f.listErr = status.Error(codes.Unavailable, "down")
	_, err = c.ListAnalyses(context.Background(), 5, 0)
	assert.ErrorIs(t, err, ErrUnavailable)
}

/*************
 * end to end over bufconn
 *************/

type fakeServer struct {
	pb.UnimplementedPlantVisionServiceServer

	mu        sync.Mutex
	valid     string
	refreshes int
}

func (s *fakeServer) check(ctx context.Context) error {
	md, _ := metadata.FromIncomingContext(ctx)
	toks := md.Get(common.AccessTokenHeaderName)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(toks) == 0 || toks[0] != s.valid {
		return expired()
	}
	return nil
}

func (s *fakeServer) RefreshToken(_ context.Context, in *pb.RefreshTokenRequest) (*pb.AuthResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in.GetRefreshToken() != "R1" {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	s.refreshes++
	return &pb.AuthResponse{AccessToken: s.valid, RefreshToken: "R2"}, nil
}

func (s *fakeServer) GetRank(ctx context.Context, _ *pb.GetRankRequest) (*pb.GetRankResponse, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return &pb.GetRankResponse{Rank: &pb.RankState{Xp: 150, RankName: "Seedling"}, SavedAnalyses: 3}, nil
}

func (s *fakeServer) WatchTimeline(in *pb.WatchTimelineRequest, stream grpc.ServerStreamingServer[pb.TimelineResponse]) error {
	if err := s.check(stream.Context()); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		entries := make([]*pb.TimelineEntry, i+1)
		for j := range entries {
			entries[j] = &pb.TimelineEntry{Kind: api.EntryKindNote}
		}
		if err := stream.Send(&pb.TimelineResponse{Entries: entries}); err != nil {
			return err
		}
	}
	return nil
}

func dialFake(t *testing.T, srv *fakeServer) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterPlantVisionServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	c, err := newGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestEndToEnd_UnaryRefresh(t *testing.T) {
	srv := &fakeServer{valid: "A2"}
	c := dialFake(t, srv)
	c.setTokens("A1", "R1")

	resp, err := c.GetRank(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Seedling", resp.Rank.RankName)
	assert.Equal(t, 150, resp.Rank.XP)
	assert.Equal(t, 3, resp.SavedAnalyses)
	assert.Equal(t, 1, srv.refreshes)

	_, refresh := c.tokens()
	assert.Equal(t, "R2", refresh)
}

func TestEndToEnd_WatchRefreshesOnceAndStreams(t *testing.T) {
	srv := &fakeServer{valid: "A2"}
	c := dialFake(t, srv)
	c.setTokens("A1", "R1")

	var sizes []int
	err := c.WatchTimeline(context.Background(), "a-1", func(entries []api.TimelineEntry) error {
		sizes = append(sizes, len(entries))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sizes)
	assert.Equal(t, 1, srv.refreshes)
}

func TestEndToEnd_WatchStopsOnCallbackError(t *testing.T) {
	srv := &fakeServer{valid: "A1"}
	c := dialFake(t, srv)
	c.setTokens("A1", "R1")

	stop := errors.New("stop")
	err := c.WatchTimeline(context.Background(), "a-1", func([]api.TimelineEntry) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func TestEndToEnd_WatchFailsWithoutValidRefresh(t *testing.T) {
	srv := &fakeServer{valid: "A2"}
	c := dialFake(t, srv)
	c.setTokens("A1", "bad")

	err := c.WatchTimeline(context.Background(), "a-1", func([]api.TimelineEntry) error { return nil })
	assert.ErrorIs(t, err, ErrUnauthorized)
}
