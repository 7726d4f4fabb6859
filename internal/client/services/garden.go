package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/client"
	"github.com/dmitrijs2005/plantvision/internal/datauri"
	"github.com/dmitrijs2005/plantvision/internal/filex"
)

// GardenService covers growth notes and the timeline of one analysis.
type GardenService interface {
	AddNote(ctx context.Context, analysisID, text, photoPath string) (*api.GrowthNote, error)
	Timeline(ctx context.Context, analysisID string) ([]api.TimelineEntry, error)
	Watch(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) error
}

type gardenService struct {
	client client.Client
}

func NewGardenService(c client.Client) GardenService {
	return &gardenService{client: c}
}

// AddNote attaches a note, with an optional photo, to a saved analysis.
func (s *gardenService) AddNote(ctx context.Context, analysisID, text, photoPath string) (*api.GrowthNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: note is empty", client.ErrInvalidInput)
	}

	var uri string
	if photoPath != "" {
		data, mimeType, err := filex.ReadImage(photoPath)
		if err != nil {
			return nil, err
		}
		uri = datauri.Encode(mimeType, data)
	}

	note, err := s.client.AddNote(ctx, analysisID, text, uri)
	if err != nil {
		return nil, fmt.Errorf("add note error: %w", err)
	}
	return note, nil
}

func (s *gardenService) Timeline(ctx context.Context, analysisID string) ([]api.TimelineEntry, error) {
	return s.client.GetTimeline(ctx, analysisID)
}

// Watch blocks, calling fn with each new timeline, until ctx is done.
func (s *gardenService) Watch(ctx context.Context, analysisID string, fn func([]api.TimelineEntry) error) error {
	return s.client.WatchTimeline(ctx, analysisID, fn)
}
