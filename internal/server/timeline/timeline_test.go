package timeline

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 9, 0, 0, 0, time.UTC)
}

func record(at time.Time) models.AnalysisRecord {
	return models.AnalysisRecord{
		ID:                 "rec-1",
		OwnerID:            "u-1",
		AnalysisDate:       at,
		PlantName:          "Monstera",
		IdentifiedDiseases: []string{"Healthy"},
	}
}

func note(id string, at time.Time) models.GrowthNote {
	return models.GrowthNote{ID: id, AnalysisID: "rec-1", UserID: "u-1", NoteDate: at, Note: "note " + id}
}

type shape struct {
	Kind Kind
	ID   string
	At   time.Time
}

func shapes(entries []Entry) []shape {
	out := make([]shape, 0, len(entries))
	for _, e := range entries {
		out = append(out, shape{Kind: e.Kind, ID: e.ID(), At: e.At})
	}
	return out
}

func TestBuild_ExampleOrder(t *testing.T) {
	got := Build(record(day(1)), []models.GrowthNote{note("n-2", day(2)), note("n-3", day(3))})

	want := []shape{
		{Kind: KindNote, ID: "n-3", At: day(3)},
		{Kind: KindNote, ID: "n-2", At: day(2)},
		{Kind: KindAnalysis, ID: "rec-1", At: day(1)},
	}
	if diff := cmp.Diff(want, shapes(got)); diff != "" {
		t.Fatalf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_NoNotes(t *testing.T) {
	got := Build(record(day(1)), nil)
	require.Len(t, got, 1)
	assert.Equal(t, KindAnalysis, got[0].Kind)
	assert.Equal(t, "Monstera", got[0].Record.PlantName)
	assert.Nil(t, got[0].Note)
}

func TestBuild_NotesBeforeRecord(t *testing.T) {
	// a note older than the analysis still sorts by time
	got := Build(record(day(5)), []models.GrowthNote{note("n-1", day(2)), note("n-2", day(9))})
	assert.Equal(t, []shape{
		{Kind: KindNote, ID: "n-2", At: day(9)},
		{Kind: KindAnalysis, ID: "rec-1", At: day(5)},
		{Kind: KindNote, ID: "n-1", At: day(2)},
	}, shapes(got))
}

func TestBuild_TieBreak(t *testing.T) {
	notes := []models.GrowthNote{note("n-b", day(4)), note("n-a", day(4)), note("n-c", day(4))}
	got := Build(record(day(4)), notes)

	assert.Equal(t, []shape{
		{Kind: KindNote, ID: "n-a", At: day(4)},
		{Kind: KindNote, ID: "n-b", At: day(4)},
		{Kind: KindNote, ID: "n-c", At: day(4)},
		{Kind: KindAnalysis, ID: "rec-1", At: day(4)},
	}, shapes(got))
}

func TestBuild_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := rnd.Intn(12)
		notes := make([]models.GrowthNote, 0, n)
		for i := 0; i < n; i++ {
			notes = append(notes, note(fmt.Sprintf("n-%02d", i), day(1+rnd.Intn(10))))
		}
		rec := record(day(1 + rnd.Intn(10)))

		first := Build(rec, notes)
		second := Build(rec, notes)

		require.Len(t, first, 1+len(notes))
		assert.Equal(t, shapes(first), shapes(second), "idempotent")

		analyses := 0
		for i, e := range first {
			if e.Kind == KindAnalysis {
				analyses++
			}
			if i+1 < len(first) {
				assert.False(t, first[i].At.Before(first[i+1].At), "descending at %d", i)
			}
		}
		assert.Equal(t, 1, analyses)

		// input order of notes does not matter
		shuffled := append([]models.GrowthNote(nil), notes...)
		rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, shapes(first), shapes(Build(rec, shuffled)))
	}
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	notes := []models.GrowthNote{note("n-1", day(2))}
	got := Build(record(day(1)), notes)

	notes[0].Note = "changed"
	assert.Equal(t, "note n-1", got[0].Note.Note)
}

func TestEqual(t *testing.T) {
	a := Build(record(day(1)), []models.GrowthNote{note("n-1", day(2))})
	b := Build(record(day(1)), []models.GrowthNote{note("n-1", day(2))})
	c := Build(record(day(1)), []models.GrowthNote{note("n-1", day(2)), note("n-2", day(3))})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(nil, nil))
}
