package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/dbx"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/repositories/repomanager"
)

var (
	scanAccuracies = []string{"eco", "standard", "ultra"}
	skillLevels    = []string{"beginner", "expert"}
)

type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

// Get returns the user's settings, or the defaults if none were saved.
func (s *SettingsService) Get(ctx context.Context, userID string) (models.Settings, error) {
	return s.get(ctx, s.db, userID)
}

func (s *SettingsService) get(ctx context.Context, db dbx.DBTX, userID string) (models.Settings, error) {
	st, err := s.repomanager.Settings(db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, err
	}
	return *st, nil
}

// Update merges patch into the stored settings and returns the result.
func (s *SettingsService) Update(ctx context.Context, userID string, patch models.SettingsPatch) (models.Settings, error) {
	var out models.Settings
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cur, err := s.get(ctx, tx, userID)
		if err != nil {
			return err
		}
		next := patch.Apply(cur)
		if err := validateSettings(next); err != nil {
			return err
		}
		if err := s.repomanager.Settings(tx).Upsert(ctx, userID, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return models.Settings{}, err
	}
	return out, nil
}

func validateSettings(s models.Settings) error {
	if !slices.Contains(scanAccuracies, s.AIScanAccuracy) {
		return fmt.Errorf("%w: aiScanAccuracy must be one of %s", common.ErrorValidation, strings.Join(scanAccuracies, ", "))
	}
	if !slices.Contains(skillLevels, s.SkillLevel) {
		return fmt.Errorf("%w: skillLevel must be one of %s", common.ErrorValidation, strings.Join(skillLevels, ", "))
	}
	if strings.TrimSpace(s.Language) == "" {
		return fmt.Errorf("%w: language is empty", common.ErrorValidation)
	}
	return nil
}
