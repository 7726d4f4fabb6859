package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/client"
)

// MaxChatHistory is how many past messages are sent along with a query.
const MaxChatHistory = 50

// AccountService covers progress, settings and the care assistant.
type AccountService interface {
	Rank(ctx context.Context) (*api.GetRankResponse, error)
	Leaderboard(ctx context.Context, limit int) ([]api.LeaderboardEntry, error)
	Settings(ctx context.Context) (*api.Settings, error)
	UpdateSettings(ctx context.Context, patch api.SettingsPatch) (*api.Settings, error)
	Chat(ctx context.Context, query string) (string, error)
	ResetChat()
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

type accountService struct {
	client client.Client

	mu      sync.Mutex
	history []api.ChatMessage
}

func NewAccountService(c client.Client) AccountService {
	return &accountService{client: c}
}

func (s *accountService) Rank(ctx context.Context) (*api.GetRankResponse, error) {
	return s.client.GetRank(ctx)
}

func (s *accountService) Leaderboard(ctx context.Context, limit int) ([]api.LeaderboardEntry, error) {
	return s.client.GetLeaderboard(ctx, limit)
}

func (s *accountService) Settings(ctx context.Context) (*api.Settings, error) {
	return s.client.GetSettings(ctx)
}

func (s *accountService) UpdateSettings(ctx context.Context, patch api.SettingsPatch) (*api.Settings, error) {
	return s.client.UpdateSettings(ctx, patch)
}

// Chat sends query with the conversation so far and records both sides
// of the exchange when the assistant answers.
func (s *accountService) Chat(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: empty question", client.ErrInvalidInput)
	}

	s.mu.Lock()
	history := append([]api.ChatMessage(nil), s.history...)
	s.mu.Unlock()

	reply, err := s.client.Chat(ctx, query, history)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.history = append(s.history,
		api.ChatMessage{Role: api.ChatRoleUser, Text: query},
		api.ChatMessage{Role: api.ChatRoleAssistant, Text: reply},
	)
	if n := len(s.history); n > MaxChatHistory {
		s.history = append([]api.ChatMessage(nil), s.history[n-MaxChatHistory:]...)
	}
	s.mu.Unlock()

	return reply, nil
}

func (s *accountService) ResetChat() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

func (s *accountService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	return s.client.Translate(ctx, text, targetLanguage)
}
