package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecords(store *fakeStore, owner string, n int) {
	for i := 0; i < n; i++ {
		seedRecord(store, fmt.Sprintf("%s-%d", owner, i), owner, fixedNow.Add(time.Duration(i)*time.Minute))
	}
}

func TestRank(t *testing.T) {
	db, _ := newSQLMockDB(t)
	store := newFakeStore()
	s := NewProgressService(db, store, rank.Default())

	st, n, err := s.Rank(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, rank.State{XP: 0, RankName: "Sprout", ProgressPercent: 0, XPToNextRank: 100}, st)

	seedRecords(store, ownerID, 3)
	st, n, err = s.Rank(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, rank.State{XP: 150, RankName: "Seedling", ProgressPercent: 33, XPToNextRank: 100}, st)

	store.analysesErr = common.ErrStore
	_, _, err = s.Rank(context.Background(), ownerID)
	assert.ErrorIs(t, err, common.ErrStore)
}

func TestLeaderboard(t *testing.T) {
	db, _ := newSQLMockDB(t)
	store := newFakeStore()
	s := NewProgressService(db, store, rank.Default())

	store.users["a"] = &models.User{ID: "a", DisplayName: "Ada"}
	store.users["b"] = &models.User{ID: "b", DisplayName: "Bob"}
	store.users["c"] = &models.User{ID: "c", DisplayName: "Cy"}
	store.users["g"] = &models.User{ID: "g", DisplayName: "Guest", IsAnonymous: true}
	seedRecords(store, "a", 10)
	seedRecords(store, "b", 2)
	seedRecords(store, "c", 2)
	seedRecords(store, "g", 20)

	got, err := s.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []LeaderboardEntry{
		{Position: 1, UserID: "a", DisplayName: "Ada", XP: 500, RankName: "Botanist"},
		{Position: 2, UserID: "b", DisplayName: "Bob", XP: 100, RankName: "Seedling"},
		{Position: 3, UserID: "c", DisplayName: "Cy", XP: 100, RankName: "Seedling"},
	}, got)

	got, err = s.Leaderboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
