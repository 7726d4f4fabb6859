package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/pubsub"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noteID = "dddddddd-dddd-dddd-dddd-dddddddddddd"

func newNoteService(t *testing.T) (*NoteService, *fakeStore, *fakeImages, *fakePublisher) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	store := newFakeStore()
	imgs := &fakeImages{}
	pub := &fakePublisher{}
	s := NewNoteService(db, store, imgs, pub, logging.Nop{})
	s.now = func() time.Time { return fixedNow }
	s.newID = func() string { return noteID }
	return s, store, imgs, pub
}

func TestAddNote(t *testing.T) {
	s, store, imgs, pub := newNoteService(t)
	seedRecord(store, recordID, ownerID, fixedNow.Add(-time.Hour))

	n, err := s.Add(context.Background(), ownerID, recordID, "  New leaf unfurled  ", "")
	require.NoError(t, err)
	assert.Equal(t, "New leaf unfurled", n.Note)
	assert.Equal(t, fixedNow, n.NoteDate)
	assert.Equal(t, ownerID, n.UserID)
	assert.Empty(t, n.ImageURL)
	assert.Empty(t, imgs.puts)

	require.Len(t, store.notes, 1)
	assert.Equal(t, []string{timeline.NotesTopic(recordID)}, pub.topics)
}

func TestAddNote_WithImage(t *testing.T) {
	s, store, imgs, _ := newNoteService(t)
	seedRecord(store, recordID, ownerID, fixedNow)

	n, err := s.Add(context.Background(), ownerID, recordID, "Repotted", photo)
	require.NoError(t, err)
	assert.Len(t, imgs.puts, 1)
	assert.Equal(t, "https://cdn/plants/"+ownerID+"/img", n.ImageURL)
	assert.Equal(t, "s3://plants/"+ownerID+"/img", store.notes[0].ImageURL)
}

func TestAddNote_Rejects(t *testing.T) {
	s, store, _, pub := newNoteService(t)
	seedRecord(store, recordID, ownerID, fixedNow)

	_, err := s.Add(context.Background(), ownerID, recordID, " \n\t ", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Add(context.Background(), otherID, recordID, "mine now", "")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Add(context.Background(), ownerID, missingID, "hello", "")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Add(context.Background(), ownerID, recordID, "hello", "data:text/plain;base64,aGk=")
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Empty(t, store.notes)
	assert.Empty(t, pub.topics)
}

func TestAddNote_StoreErrorDoesNotPublish(t *testing.T) {
	s, store, _, pub := newNoteService(t)
	seedRecord(store, recordID, ownerID, fixedNow)
	store.notesErr = common.ErrStore

	_, err := s.Add(context.Background(), ownerID, recordID, "hello", "")
	assert.ErrorIs(t, err, common.ErrStore)
	assert.Empty(t, pub.topics)
}

func TestListNotes(t *testing.T) {
	s, store, _, _ := newNoteService(t)
	seedRecord(store, recordID, ownerID, fixedNow)

	_, err := s.Add(context.Background(), ownerID, recordID, "first", "")
	require.NoError(t, err)
	s.now = func() time.Time { return fixedNow.Add(time.Hour) }
	s.newID = func() string { return "eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee" }
	_, err = s.Add(context.Background(), ownerID, recordID, "second", "")
	require.NoError(t, err)

	notes, err := s.List(context.Background(), ownerID, recordID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Note)

	_, err = s.List(context.Background(), otherID, recordID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTimelineService_Get(t *testing.T) {
	db, _ := newSQLMockDB(t)
	store := newFakeStore()
	seedRecord(store, recordID, ownerID, fixedNow)

	notes := NewNoteService(db, store, &fakeImages{}, &fakePublisher{}, logging.Nop{})
	notes.now = func() time.Time { return fixedNow.Add(time.Minute) }
	_, err := notes.Add(context.Background(), ownerID, recordID, "watered", "")
	require.NoError(t, err)

	s := NewTimelineService(db, store, &fakeImages{}, pubsub.NewHub(), 0, logging.Nop{})

	entries, err := s.Get(context.Background(), ownerID, recordID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, timeline.KindNote, entries[0].Kind)
	assert.Equal(t, timeline.KindAnalysis, entries[1].Kind)
	assert.Equal(t, "https://cdn/plants/"+recordID, entries[1].Record.PlantImageURI)

	_, err = s.Get(context.Background(), otherID, recordID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTimelineService_WatchSeesNewNotes(t *testing.T) {
	db, _ := newSQLMockDB(t)
	store := newFakeStore()
	seedRecord(store, recordID, ownerID, fixedNow)

	hub := pubsub.NewHub()
	notes := NewNoteService(db, store, &fakeImages{}, hub, logging.Nop{})
	s := NewTimelineService(db, store, &fakeImages{}, hub, 0, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan []timeline.Entry, 4)
	done := make(chan error, 1)
	go func() {
		done <- s.Watch(ctx, ownerID, recordID, func(e []timeline.Entry) error {
			updates <- e
			return nil
		})
	}()

	first := <-updates
	assert.Len(t, first, 1)

	require.Eventually(t, func() bool { return hub.Subscribers(timeline.NotesTopic(recordID)) == 1 }, time.Second, 5*time.Millisecond)
	_, err := notes.Add(context.Background(), ownerID, recordID, "flowering", "")
	require.NoError(t, err)

	select {
	case second := <-updates:
		require.Len(t, second, 2)
		assert.Equal(t, "flowering", second[0].Note.Note)
	case <-time.After(2 * time.Second):
		t.Fatal("no update after adding a note")
	}

	cancel()
	assert.NoError(t, <-done)
}
