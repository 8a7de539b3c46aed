package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/daycompass/internal/common"
	"github.com/dmitrijs2005/daycompass/internal/dbx"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Settings, error) {
	query :=
		`SELECT user_id, onboarding_completed, default_landing, timezone FROM settings
		 WHERE user_id = $1
		 `

	result := &models.Settings{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&result.UserID, &result.OnboardingCompleted, &result.DefaultLanding, &result.Timezone)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query :=
		`INSERT INTO settings (user_id, onboarding_completed, default_landing, timezone)
         VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET onboarding_completed = EXCLUDED.onboarding_completed,
		     default_landing = EXCLUDED.default_landing,
		     timezone = EXCLUDED.timezone
		 `

	_, err := r.db.ExecContext(ctx, query, s.UserID, s.OnboardingCompleted, s.DefaultLanding, s.Timezone)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
