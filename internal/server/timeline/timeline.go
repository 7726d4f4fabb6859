// Package timeline merges a saved analysis with its growth notes into one
// feed ordered from newest to oldest.
package timeline

import (
	"cmp"
	"slices"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

type Kind string

const (
	KindAnalysis Kind = "analysis"
	KindNote     Kind = "note"
)

// Entry is either an analysis (Record set) or a note (Note set).
type Entry struct {
	Kind   Kind
	At     time.Time
	Record *models.AnalysisRecord
	Note   *models.GrowthNote
}

// ID returns the id of the wrapped record or note.
func (e Entry) ID() string {
	if e.Kind == KindAnalysis {
		return e.Record.ID
	}
	return e.Note.ID
}

// Build returns record and notes as timeline entries sorted by time,
// newest first. Entries with equal timestamps are ordered notes before the
// analysis, and notes by id ascending, so the output does not depend on
// the order of notes.
func Build(record models.AnalysisRecord, notes []models.GrowthNote) []Entry {
	entries := make([]Entry, 0, len(notes)+1)
	entries = append(entries, Entry{Kind: KindAnalysis, At: record.AnalysisDate, Record: &record})
	for i := range notes {
		n := notes[i]
		entries = append(entries, Entry{Kind: KindNote, At: n.NoteDate, Note: &n})
	}

	slices.SortStableFunc(entries, compare)
	return entries
}

func compare(a, b Entry) int {
	if c := b.At.Compare(a.At); c != 0 {
		return c
	}
	if a.Kind != b.Kind {
		if a.Kind == KindNote {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.ID(), b.ID())
}

// Equal reports whether two timelines list the same entries in the same
// order at the same times. Records and notes are immutable, so identity
// is enough.
func Equal(a, b []Entry) bool {
	return slices.EqualFunc(a, b, func(x, y Entry) bool {
		return x.Kind == y.Kind && x.At.Equal(y.At) && x.ID() == y.ID()
	})
}
