package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/common"
	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PlantVisionServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = access, refresh
	s.mu.Unlock()
}

// refresh swaps the token pair unless another call already did so after
// stale was sent.
func (s *GRPCClient) refresh(ctx context.Context, stale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != stale {
		return nil
	}
	if s.refreshToken == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return err
	}

	s.accessToken = resp.GetAccessToken()
	s.refreshToken = resp.GetRefreshToken()
	if s.onRefresh != nil {
		s.onRefresh(resp.GetRefreshToken())
	}
	return nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	// refresh runs under s.mu and needs no access token
	if method == pb.PlantVisionService_RefreshToken_FullMethodName {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, _ := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) {
		return err
	}

	if rErr := s.refresh(ctx, access); rErr != nil {
		return err
	}

	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	access, _ := s.tokens()
	return streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
}

// NewPlantVisionClient connects lazily to endpointURL over plaintext gRPC.
func NewPlantVisionClient(endpointURL string) (*GRPCClient, error) {
	return newGRPCClient(endpointURL)
}

func newGRPCClient(endpointURL string, extra ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.streamAccessTokenInterceptor),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(common.MaxMessageSize),
			grpc.MaxCallSendMsgSize(common.MaxMessageSize),
		),
	}, extra...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewPlantVisionServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// OnTokensRefreshed registers fn to be told about every silently rotated
// refresh token, so it can be persisted.
func (s *GRPCClient) OnTokensRefreshed(fn func(refreshToken string)) {
	s.mu.Lock()
	s.onRefresh = fn
	s.mu.Unlock()
}

// Forget drops the remembered tokens.
func (s *GRPCClient) Forget() {
	s.setTokens("", "")
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) remember(resp *pb.AuthResponse, err error) (*api.AuthResponse, error) {
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return authFromPB(resp), nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password, displayName string) (*api.AuthResponse, error) {
	return s.remember(s.client.RegisterUser(ctx, &pb.RegisterUserRequest{Email: email, Password: password, DisplayName: displayName}))
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	return s.remember(s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password}))
}

func (s *GRPCClient) SignInAnonymously(ctx context.Context) (*api.AuthResponse, error) {
	return s.remember(s.client.SignInAnonymously(ctx, &pb.SignInAnonymouslyRequest{}))
}

// Resume exchanges a stored refresh token for a fresh pair.
func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) (*api.AuthResponse, error) {
	return s.remember(s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken}))
}

func (s *GRPCClient) Analyze(ctx context.Context, imageDataURI string) (*api.AnalysisResult, error) {
	resp, err := s.client.Analyze(ctx, &pb.AnalyzeRequest{ImageDataUri: imageDataURI})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resultFromPB(resp.GetResult()), nil
}

func (s *GRPCClient) SaveAnalysis(ctx context.Context, imageDataURI string, result api.AnalysisResult) (*api.SaveAnalysisResponse, error) {
	resp, err := s.client.SaveAnalysis(ctx, &pb.SaveAnalysisRequest{ImageDataUri: imageDataURI, Result: resultToPB(result)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &api.SaveAnalysisResponse{Record: recordFromPB(resp.GetRecord()), Pending: resp.GetPending()}, nil
}

func (s *GRPCClient) ListAnalyses(ctx context.Context, limit, offset int) ([]api.AnalysisRecord, error) {
	resp, err := s.client.ListAnalyses(ctx, &pb.ListAnalysesRequest{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return recordsFromPB(resp.GetRecords()), nil
}

func (s *GRPCClient) GetAnalysis(ctx context.Context, id string) (*api.AnalysisRecord, error) {
	resp, err := s.client.GetAnalysis(ctx, &pb.GetAnalysisRequest{AnalysisId: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	rec := recordFromPB(resp.GetRecord())
	return &rec, nil
}

func (s *GRPCClient) AddNote(ctx context.Context, analysisID, text, imageDataURI string) (*api.GrowthNote, error) {
	resp, err := s.client.AddNote(ctx, &pb.AddNoteRequest{AnalysisId: analysisID, Note: text, ImageDataUri: imageDataURI})
	if err != nil {
		return nil, s.mapError(err)
	}
	note := noteFromPB(resp.GetNote())
	return &note, nil
}

func (s *GRPCClient) ListNotes(ctx context.Context, analysisID string) ([]api.GrowthNote, error) {
	resp, err := s.client.ListNotes(ctx, &pb.ListNotesRequest{AnalysisId: analysisID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return notesFromPB(resp.GetNotes()), nil
}

func (s *GRPCClient) GetTimeline(ctx context.Context, analysisID string) ([]api.TimelineEntry, error) {
	resp, err := s.client.GetTimeline(ctx, &pb.GetTimelineRequest{AnalysisId: analysisID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return timelineFromPB(resp.GetEntries()), nil
}

// WatchTimeline calls fn with every timeline the server pushes until ctx
// is done, the stream ends or fn fails. An expired access token is
// refreshed once before the first update.
func (s *GRPCClient) WatchTimeline(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) error {
	refreshed := false
	for {
		access, _ := s.tokens()
		delivered, err := s.watch(ctx, analysisID, fn)
		if err == nil {
			return nil
		}
		if !delivered && !refreshed && isTokenExpired(err) {
			if rErr := s.refresh(ctx, access); rErr == nil {
				refreshed = true
				continue
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		return s.mapError(err)
	}
}

func (s *GRPCClient) watch(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) (bool, error) {
	stream, err := s.client.WatchTimeline(ctx, &pb.WatchTimelineRequest{AnalysisId: analysisID})
	if err != nil {
		return false, err
	}

	delivered := false
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return delivered, nil
		}
		if err != nil {
			return delivered, err
		}
		delivered = true
		if err := fn(timelineFromPB(resp.GetEntries())); err != nil {
			return delivered, err
		}
	}
}

func (s *GRPCClient) GetRank(ctx context.Context) (*api.GetRankResponse, error) {
	resp, err := s.client.GetRank(ctx, &pb.GetRankRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rankFromPB(resp), nil
}

func (s *GRPCClient) GetLeaderboard(ctx context.Context, limit int) ([]api.LeaderboardEntry, error) {
	resp, err := s.client.GetLeaderboard(ctx, &pb.GetLeaderboardRequest{Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return leaderboardFromPB(resp.GetEntries()), nil
}

func (s *GRPCClient) GetSettings(ctx context.Context) (*api.Settings, error) {
	resp, err := s.client.GetSettings(ctx, &pb.GetSettingsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return settingsFromPB(resp.GetSettings()), nil
}

func (s *GRPCClient) UpdateSettings(ctx context.Context, patch api.SettingsPatch) (*api.Settings, error) {
	resp, err := s.client.UpdateSettings(ctx, &pb.UpdateSettingsRequest{Patch: patchToPB(patch)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return settingsFromPB(resp.GetSettings()), nil
}

func (s *GRPCClient) Chat(ctx context.Context, query string, history []api.ChatMessage) (string, error) {
	resp, err := s.client.Chat(ctx, &pb.ChatRequest{Query: query, History: historyToPB(history)})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetReply(), nil
}

func (s *GRPCClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	resp, err := s.client.Translate(ctx, &pb.TranslateRequest{Text: text, TargetLanguage: targetLanguage})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetText(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if !isStatus(err) {
		// fn errors from WatchTimeline and local failures pass through
		return err
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func isStatus(err error) bool {
	var se interface{ GRPCStatus() *status.Status }
	return errors.As(err, &se)
}
