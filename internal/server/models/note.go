package models

import "time"

// GrowthNote is a dated observation attached to a saved analysis.
// Notes are append-only.
type GrowthNote struct {
	ID         string
	AnalysisID string
	UserID     string
	NoteDate   time.Time
	Note       string
	ImageURL   string
}
