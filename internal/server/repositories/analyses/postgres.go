package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/dbx"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.AnalysisRecord) error {
	diseases := rec.IdentifiedDiseases
	if diseases == nil {
		diseases = []string{}
	}
	encoded, err := json.Marshal(diseases)
	if err != nil {
		return fmt.Errorf("encode identified diseases: %w", err)
	}

	query := `
		INSERT INTO analyses (id, owner_id, plant_image_uri, analysis_date, plant_name, scientific_name,
			growth_rate, water_needs, sunlight_requirements, identified_diseases, remedy_suggestions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.OwnerID, rec.PlantImageURI, rec.AnalysisDate, rec.PlantName, rec.ScientificName,
		rec.GrowthRate, rec.WaterNeeds, rec.SunlightRequirements, encoded, rec.RemedySuggestions,
	)
	if err != nil {
		return dbx.StoreError("insert analysis", err)
	}
	return nil
}

const selectAnalysis = `
	SELECT id, owner_id, plant_image_uri, analysis_date, plant_name, scientific_name,
		growth_rate, water_needs, sunlight_requirements, identified_diseases, remedy_suggestions
	FROM analyses
`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*models.AnalysisRecord, error) {
	var (
		rec      models.AnalysisRecord
		diseases []byte
	)
	if err := s.Scan(
		&rec.ID, &rec.OwnerID, &rec.PlantImageURI, &rec.AnalysisDate, &rec.PlantName, &rec.ScientificName,
		&rec.GrowthRate, &rec.WaterNeeds, &rec.SunlightRequirements, &diseases, &rec.RemedySuggestions,
	); err != nil {
		return nil, err
	}
	if len(diseases) > 0 {
		if err := json.Unmarshal(diseases, &rec.IdentifiedDiseases); err != nil {
			return nil, fmt.Errorf("decode identified diseases: %w", err)
		}
	}
	if rec.IdentifiedDiseases == nil {
		rec.IdentifiedDiseases = []string{}
	}
	return &rec, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.AnalysisRecord, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, selectAnalysis+"WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.StoreError("select analysis", err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]models.AnalysisRecord, error) {
	query := selectAnalysis + `
		WHERE owner_id = $1
		ORDER BY analysis_date DESC, id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, dbx.StoreError("list analyses", err)
	}
	defer rows.Close()

	result := []models.AnalysisRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, dbx.StoreError("scan analysis", err)
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.StoreError("list analyses", err)
	}
	return result, nil
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM analyses WHERE owner_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, dbx.StoreError("count analyses", err)
	}
	return n, nil
}

func (r *PostgresRepository) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardRow, error) {
	query := `
		SELECT u.id, u.display_name, count(a.id) AS saved
		FROM users u
		JOIN analyses a ON a.owner_id = u.id
		WHERE NOT u.is_anonymous
		GROUP BY u.id, u.display_name
		ORDER BY saved DESC, u.display_name
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, dbx.StoreError("leaderboard", err)
	}
	defer rows.Close()

	result := []models.LeaderboardRow{}
	for rows.Next() {
		var row models.LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.DisplayName, &row.SavedAnalyses); err != nil {
			return nil, dbx.StoreError("scan leaderboard", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.StoreError("leaderboard", err)
	}
	return result, nil
}
