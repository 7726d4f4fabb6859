package settings

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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT settings FROM user_settings WHERE user_id = $1`, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.StoreError("select settings", err)
	}

	// Fields missing from older documents keep their defaults.
	s := models.DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, dbx.StoreError("decode settings", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, userID string, s models.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	query := `
		INSERT INTO user_settings (user_id, settings, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET settings = EXCLUDED.settings, updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, raw); err != nil {
		return dbx.StoreError("upsert settings", err)
	}
	return nil
}
