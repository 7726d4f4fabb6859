package notes

import (
	"context"

	"github.com/dmitrijs2005/plantvision/internal/dbx"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.GrowthNote) error {
	query := `
		INSERT INTO growth_notes (id, analysis_id, user_id, note_date, note, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query, n.ID, n.AnalysisID, n.UserID, n.NoteDate, n.Note, n.ImageURL); err != nil {
		return dbx.StoreError("insert note", err)
	}
	return nil
}

func (r *PostgresRepository) ListByAnalysis(ctx context.Context, analysisID string) ([]models.GrowthNote, error) {
	query := `
		SELECT id, analysis_id, user_id, note_date, note, image_url
		FROM growth_notes
		WHERE analysis_id = $1
		ORDER BY note_date DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, analysisID)
	if err != nil {
		return nil, dbx.StoreError("list notes", err)
	}
	defer rows.Close()

	result := []models.GrowthNote{}
	for rows.Next() {
		var n models.GrowthNote
		if err := rows.Scan(&n.ID, &n.AnalysisID, &n.UserID, &n.NoteDate, &n.Note, &n.ImageURL); err != nil {
			return nil, dbx.StoreError("scan note", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.StoreError("list notes", err)
	}
	return result, nil
}
