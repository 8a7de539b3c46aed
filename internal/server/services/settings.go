package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/daycompass/internal/common"
	"github.com/dmitrijs2005/daycompass/internal/server/config"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/repomanager"
)

// SettingsService reads and writes per-user settings. Settings hold the
// onboarding completion flag, the preferred landing page, and the timezone.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

// Lookup returns the user's settings, or (nil, nil) when none have been
// saved yet. A missing row is an expected state for a fresh account, not
// an error.
func (s *SettingsService) Lookup(ctx context.Context, userID string) (*models.Settings, error) {
	repo := s.repomanager.Settings(s.db)
	settings, err := repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading settings: %v", err)
	}
	return settings, nil
}

// Save upserts the user's settings row.
func (s *SettingsService) Save(ctx context.Context, settings *models.Settings) error {
	repo := s.repomanager.Settings(s.db)
	if err := repo.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("error saving settings: %v", err)
	}
	return nil
}
