// Package server wires the PlantVision backend together: storage, the
// model provider, the services and the gRPC transport.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/analysis"
	"github.com/dmitrijs2005/plantvision/internal/server/config"
	"github.com/dmitrijs2005/plantvision/internal/server/images"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
	"github.com/dmitrijs2005/plantvision/internal/server/pubsub"
	"github.com/dmitrijs2005/plantvision/internal/server/rank"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plantvision/internal/server/services"
	"github.com/dmitrijs2005/plantvision/internal/telemetry"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/plantvision/internal/server/grpc"
)

const serviceName = "plantvision-server"

// seams for tests
var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newProvider = func(ctx context.Context, cfg *config.Config, logger logging.Logger) (provider.Provider, error) {
		g, err := provider.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout, logger)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	migrate = func(ctx context.Context, m repomanager.RepositoryManager, db *sql.DB) error {
		return m.RunMigrations(ctx, db)
	}
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	server          *gs.GRPCServer
	analyses        *services.AnalysisService
	shutdownTracing func(context.Context) error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := migrate(ctx, rm, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	var store images.Store = images.NewInlineStore()
	if cfg.UseS3() {
		store, err = images.NewS3Store(ctx, images.S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			BaseEndpoint: cfg.S3BaseEndpoint,
			URLValidity:  cfg.S3URLValidity,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("object storage init error: %w", err)
		}
	}

	model, err := newProvider(ctx, cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("provider init error: %w", err)
	}

	hub := pubsub.NewHub()
	analyses := services.NewAnalysisService(db, rm, analysis.NewOrchestrator(model, logger), store, cfg.PersistMode, logger)

	svc := gs.Services{
		Users:     services.NewUserService(db, rm, cfg, logger),
		Analyses:  analyses,
		Notes:     services.NewNoteService(db, rm, store, hub, logger),
		Timeline:  services.NewTimelineService(db, rm, store, hub, cfg.TimelinePollInterval, logger),
		Progress:  services.NewProgressService(db, rm, rank.Default()),
		Settings:  services.NewSettingsService(db, rm),
		Assistant: services.NewAssistantService(model, logger),
	}

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		server:          gs.NewGRPCServer(cfg.EndpointAddrGRPC, logger, svc, cfg.SecretKey),
		analyses:        analyses,
		shutdownTracing: shutdownTracing,
	}, nil
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or ctx cancellation, then waits
// for background saves and releases resources.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "persist_mode", app.config.PersistMode, "object_storage", app.config.UseS3())

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "grpc server error", "error", err)
	}

	app.analyses.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if tErr := app.shutdownTracing(shutdownCtx); tErr != nil {
		app.logger.Warn(shutdownCtx, "tracing shutdown error", "error", tErr)
	}
	if cErr := app.db.Close(); cErr != nil {
		app.logger.Warn(shutdownCtx, "db close error", "error", cErr)
	}

	app.logger.Info(shutdownCtx, "Stopped")
	return err
}
