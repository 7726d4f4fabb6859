package client

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/api"
)

// Client is the remote PlantVision API as seen by the CLI services.
// Authentication calls remember the returned token pair; every other
// call is made on behalf of the remembered user.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, password, displayName string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	SignInAnonymously(ctx context.Context) (*api.AuthResponse, error)
	Resume(ctx context.Context, refreshToken string) (*api.AuthResponse, error)
	Forget()
	OnTokensRefreshed(fn func(refreshToken string))

	Analyze(ctx context.Context, imageDataURI string) (*api.AnalysisResult, error)
	SaveAnalysis(ctx context.Context, imageDataURI string, result api.AnalysisResult) (*api.SaveAnalysisResponse, error)
	ListAnalyses(ctx context.Context, limit, offset int) ([]api.AnalysisRecord, error)
	GetAnalysis(ctx context.Context, id string) (*api.AnalysisRecord, error)

	AddNote(ctx context.Context, analysisID, text, imageDataURI string) (*api.GrowthNote, error)
	ListNotes(ctx context.Context, analysisID string) ([]api.GrowthNote, error)
	GetTimeline(ctx context.Context, analysisID string) ([]api.TimelineEntry, error)
	WatchTimeline(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) error

	GetRank(ctx context.Context) (*api.GetRankResponse, error)
	GetLeaderboard(ctx context.Context, limit int) ([]api.LeaderboardEntry, error)
	GetSettings(ctx context.Context) (*api.Settings, error)
	UpdateSettings(ctx context.Context, patch api.SettingsPatch) (*api.Settings, error)

	Chat(ctx context.Context, query string, history []api.ChatMessage) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
