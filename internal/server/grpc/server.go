// Package grpc exposes the PlantVision services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"github.com/dmitrijs2005/plantvision/internal/server/auth"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/rank"
	"github.com/dmitrijs2005/plantvision/internal/server/services"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, email, password, displayName string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	SignInAnonymously(ctx context.Context) (*services.AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.AuthResult, error)
}

type AnalysisService interface {
	Analyze(ctx context.Context, imageDataURI string) (*models.AnalysisResult, error)
	Save(ctx context.Context, who auth.Identity, imageDataURI string, result *models.AnalysisResult) (*models.AnalysisRecord, bool, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]models.AnalysisRecord, error)
	Get(ctx context.Context, ownerID, analysisID string) (*models.AnalysisRecord, error)
}

type NoteService interface {
	Add(ctx context.Context, ownerID, analysisID, text, imageDataURI string) (*models.GrowthNote, error)
	List(ctx context.Context, ownerID, analysisID string) ([]models.GrowthNote, error)
}

type TimelineService interface {
	Get(ctx context.Context, ownerID, analysisID string) ([]timeline.Entry, error)
	Watch(ctx context.Context, ownerID, analysisID string, emit func([]timeline.Entry) error) error
}

type ProgressService interface {
	Rank(ctx context.Context, ownerID string) (rank.State, int, error)
	Leaderboard(ctx context.Context, limit int) ([]services.LeaderboardEntry, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID string) (models.Settings, error)
	Update(ctx context.Context, userID string, patch models.SettingsPatch) (models.Settings, error)
}

type AssistantService interface {
	Chat(ctx context.Context, query string, history []models.ChatMessage) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) string
}

// Services bundles everything the handlers call into.
type Services struct {
	Users     UserService
	Analyses  AnalysisService
	Notes     NoteService
	Timeline  TimelineService
	Progress  ProgressService
	Settings  SettingsService
	Assistant AssistantService
}

// gracePeriod bounds how long shutdown waits for in-flight calls before
// cutting them off.
var gracePeriod = 10 * time.Second

type GRPCServer struct {
	pb.UnimplementedPlantVisionServiceServer
	address   string
	svc       Services
	logger    logging.Logger
	jwtSecret []byte
	health    *health.Server

	// stopping is cancelled when shutdown begins so long-lived streams end
	// instead of holding GracefulStop open.
	stopping    context.Context
	stopStreams context.CancelFunc
}

func NewGRPCServer(address string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	stopping, stopStreams := context.WithCancel(context.Background())
	return &GRPCServer{
		address:     address,
		svc:         svc,
		logger:      l.With("module", "grpc_server"),
		jwtSecret:   []byte(secretKey),
		health:      health.NewServer(),
		stopping:    stopping,
		stopStreams: stopStreams,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.MaxRecvMsgSize(common.MaxMessageSize),
		grpc.MaxSendMsgSize(common.MaxMessageSize),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	pb.RegisterPlantVisionServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		s.stopStreams()
		s.stop(ctx, srv)
	}()

	s.health.SetServingStatus(pb.PlantVisionService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}

func (s *GRPCServer) stop(ctx context.Context, srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(gracePeriod)
	defer timer.Stop()

	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn(ctx, "Graceful stop timed out, closing remaining connections")
		srv.Stop()
		<-stopped
	}
}
