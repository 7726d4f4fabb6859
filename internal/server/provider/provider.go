// Package provider talks to the generative model that identifies plants,
// diagnoses diseases, suggests remedies and powers the care assistant.
//
// Every failure is wrapped in common.ErrProvider (transport, timeout or
// model error) or common.ErrSchema (the reply did not have the expected
// shape).
package provider

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

// Image is a decoded photo.
type Image struct {
	MIMEType string
	Data     []byte
}

type Provider interface {
	Identify(ctx context.Context, img Image) (*models.Identification, error)
	Diagnose(ctx context.Context, img Image) (*models.Diagnosis, error)
	RecommendRemedies(ctx context.Context, plantName, diagnosis string) (*models.Remedies, error)
	Chat(ctx context.Context, query string, history []models.ChatMessage) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
