// Package history is the local SQLite cache of saved analyses.
//
// Records are stored as JSON payloads keyed by id, with the owner and the
// analysis date broken out for filtering and ordering.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, ownerID string, records []api.AnalysisRecord) error {
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode record %s: %w", rec.ID, err)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO analyses_cache (id, owner_id, analysis_date, plant_name, payload)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				owner_id = excluded.owner_id,
				analysis_date = excluded.analysis_date,
				plant_name = excluded.plant_name,
				payload = excluded.payload
		`, rec.ID, ownerID, rec.AnalysisDate.UnixNano(), rec.PlantName, payload)
		if err != nil {
			return fmt.Errorf("failed to cache record %s: %w", rec.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, ownerID string, limit, offset int) ([]api.AnalysisRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT payload FROM analyses_cache
		WHERE owner_id = ?
		ORDER BY analysis_date DESC, id
		LIMIT ? OFFSET ?
	`, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached records: %w", err)
	}
	defer rows.Close()

	out := []api.AnalysisRecord{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan cached record: %w", err)
		}
		var rec api.AnalysisRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode cached record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached records: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, ownerID, id string) (*api.AnalysisRecord, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM analyses_cache WHERE owner_id = ? AND id = ?`, ownerID, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached record %s: %w", id, err)
	}

	var rec api.AnalysisRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("decode cached record: %w", err)
	}
	return &rec, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM analyses_cache`); err != nil {
		return fmt.Errorf("failed to clear cached records: %w", err)
	}
	return nil
}
