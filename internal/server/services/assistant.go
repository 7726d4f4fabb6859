package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	MaxChatHistory = 50
)

// Assistant is the conversational half of provider.Provider.
type Assistant interface {
	Chat(ctx context.Context, query string, history []models.ChatMessage) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

type AssistantService struct {
	assistant Assistant
	logger    logging.Logger
}

func NewAssistantService(a Assistant, logger logging.Logger) *AssistantService {
	return &AssistantService{assistant: a, logger: logger.With("module", "assistant")}
}

// Chat answers a plant-care question. Only the most recent MaxChatHistory
// turns of history are forwarded.
func (s *AssistantService) Chat(ctx context.Context, query string, history []models.ChatMessage) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: query is empty", common.ErrorValidation)
	}
	for _, m := range history {
		if m.Role != ChatRoleUser && m.Role != ChatRoleAssistant {
			return "", fmt.Errorf("%w: unknown chat role %q", common.ErrorValidation, m.Role)
		}
	}
	if len(history) > MaxChatHistory {
		history = history[len(history)-MaxChatHistory:]
	}
	return s.assistant.Chat(ctx, query, history)
}

// Translate renders text in targetLanguage. English and empty targets are
// returned untouched, and a failed translation falls back to the original
// text.
func (s *AssistantService) Translate(ctx context.Context, text, targetLanguage string) string {
	target := strings.TrimSpace(targetLanguage)
	if strings.TrimSpace(text) == "" || target == "" || strings.EqualFold(target, "English") {
		return text
	}

	out, err := s.assistant.Translate(ctx, text, target)
	if err != nil {
		s.logger.Warn(ctx, "translation failed, keeping original", "language", target, "error", err)
		return text
	}
	return out
}
