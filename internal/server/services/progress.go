package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/plantvision/internal/server/rank"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/repomanager"
)

const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

type LeaderboardEntry struct {
	Position    int
	UserID      string
	DisplayName string
	XP          int
	RankName    string
}

// ProgressService derives ranks from the number of saved analyses.
type ProgressService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	calc        *rank.Calculator
}

func NewProgressService(db *sql.DB, m repomanager.RepositoryManager, calc *rank.Calculator) *ProgressService {
	return &ProgressService{db: db, repomanager: m, calc: calc}
}

// Rank returns the caller's rank state and saved-analysis count.
func (s *ProgressService) Rank(ctx context.Context, ownerID string) (rank.State, int, error) {
	n, err := s.repomanager.Analyses(s.db).CountByOwner(ctx, ownerID)
	if err != nil {
		return rank.State{}, 0, err
	}
	return s.calc.Calculate(rank.XPForAnalyses(n)), n, nil
}

// Leaderboard lists registered users by XP. Positions are sequential; ties
// keep the repository order, which breaks them by display name.
func (s *ProgressService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		limit = MaxLeaderboardSize
	}

	rows, err := s.repomanager.Analyses(s.db).Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		xp := rank.XPForAnalyses(row.SavedAnalyses)
		out = append(out, LeaderboardEntry{
			Position:    i + 1,
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			XP:          xp,
			RankName:    s.calc.Calculate(xp).RankName,
		})
	}
	return out, nil
}
