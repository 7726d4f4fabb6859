package timeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct {
	mu       sync.Mutex
	rec      *models.AnalysisRecord
	notes    []models.GrowthNote
	notesErr error
}

func (f *fakeSource) FetchRecord(_ context.Context, ownerID, analysisID string) (*models.AnalysisRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rec == nil || f.rec.ID != analysisID || f.rec.OwnerID != ownerID {
		return nil, common.ErrorNotFound
	}
	r := *f.rec
	return &r, nil
}

func (f *fakeSource) FetchNotes(context.Context, string) ([]models.GrowthNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notesErr != nil {
		return nil, f.notesErr
	}
	return append([]models.GrowthNote(nil), f.notes...), nil
}

func (f *fakeSource) add(n models.GrowthNote) {
	f.mu.Lock()
	f.notes = append(f.notes, n)
	f.mu.Unlock()
}

func (f *fakeSource) remove() {
	f.mu.Lock()
	f.rec = nil
	f.mu.Unlock()
}

func (f *fakeSource) failNotes(err error) {
	f.mu.Lock()
	f.notesErr = err
	f.mu.Unlock()
}

func startWatch(t *testing.T, w *Watcher, owner string) (<-chan []Entry, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan []Entry, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, owner, "rec-1", func(e []Entry) error {
			out <- e
			return nil
		})
	}()
	return out, cancel, done
}

func next(t *testing.T, ch <-chan []Entry) []Entry {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no timeline emitted")
		return nil
	}
}

func TestWatch_ReemitsOnPublish(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	hub := pubsub.NewHub()
	w := NewWatcher(src, hub, 0, logging.Nop{})

	out, cancel, done := startWatch(t, w, "u-1")

	first := next(t, out)
	require.Len(t, first, 1)

	src.add(note("n-1", day(2)))
	hub.Publish(NotesTopic("rec-1"))

	second := next(t, out)
	assert.Equal(t, []shape{
		{Kind: KindNote, ID: "n-1", At: day(2)},
		{Kind: KindAnalysis, ID: "rec-1", At: day(1)},
	}, shapes(second))

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_SkipsUnchanged(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	hub := pubsub.NewHub()
	w := NewWatcher(src, hub, 0, logging.Nop{})

	out, cancel, done := startWatch(t, w, "u-1")
	next(t, out)

	hub.Publish(NotesTopic("rec-1"))
	select {
	case e := <-out:
		t.Fatalf("unexpected emission: %v", shapes(e))
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_PollingFallback(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	w := NewWatcher(src, pubsub.NewHub(), 10*time.Millisecond, logging.Nop{})

	out, cancel, done := startWatch(t, w, "u-1")
	next(t, out)

	// written without a publish, as another server instance would
	src.add(note("n-1", day(3)))
	assert.Len(t, next(t, out), 2)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_TransientErrorIsRetried(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	hub := pubsub.NewHub()
	w := NewWatcher(src, hub, 0, logging.Nop{})

	out, cancel, done := startWatch(t, w, "u-1")
	next(t, out)

	src.failNotes(errors.New("connection reset"))
	hub.Publish(NotesTopic("rec-1"))
	time.Sleep(50 * time.Millisecond)

	src.failNotes(nil)
	src.add(note("n-1", day(2)))
	hub.Publish(NotesTopic("rec-1"))
	assert.Len(t, next(t, out), 2)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_InitialLoadErrors(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	w := NewWatcher(src, pubsub.NewHub(), 0, logging.Nop{})

	err := w.Watch(context.Background(), "someone-else", "rec-1", func([]Entry) error { return nil })
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = w.Watch(context.Background(), "u-1", "missing", func([]Entry) error { return nil })
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestWatch_EndsWhenRecordGoes(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	hub := pubsub.NewHub()
	w := NewWatcher(src, hub, 0, logging.Nop{})

	out, cancel, done := startWatch(t, w, "u-1")
	defer cancel()
	next(t, out)

	src.remove()
	hub.Publish(NotesTopic("rec-1"))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, common.ErrorNotFound)
	case <-time.After(2 * time.Second):
		t.Fatal("watch kept running after the record was removed")
	}
}

func TestWatch_EmitErrorStops(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec}
	hub := pubsub.NewHub()
	w := NewWatcher(src, hub, 0, logging.Nop{})

	boom := errors.New("client gone")
	err := w.Watch(context.Background(), "u-1", "rec-1", func([]Entry) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, hub.Subscribers(NotesTopic("rec-1")))
}

func TestLoad(t *testing.T) {
	rec := record(day(1))
	src := &fakeSource{rec: &rec, notes: []models.GrowthNote{note("n-3", day(3)), note("n-2", day(2))}}
	w := NewWatcher(src, pubsub.NewHub(), 0, logging.Nop{})

	got, err := w.Load(context.Background(), "u-1", "rec-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"n-3", "n-2", "rec-1"}, []string{got[0].ID(), got[1].ID(), got[2].ID()})

	src.failNotes(common.ErrStore)
	_, err = w.Load(context.Background(), "u-1", "rec-1")
	assert.ErrorIs(t, err, common.ErrStore)
}
