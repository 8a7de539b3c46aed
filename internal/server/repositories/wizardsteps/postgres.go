package wizardsteps

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/daycompass/internal/dbx"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.WizardStep, error) {
	query :=
		`SELECT user_id, step_id, completed FROM wizard_steps
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.WizardStep
	for rows.Next() {
		var s models.WizardStep
		if err := rows.Scan(&s.UserID, &s.StepID, &s.Completed); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, step *models.WizardStep) error {
	query :=
		`INSERT INTO wizard_steps (user_id, step_id, completed)
         VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, step_id) DO UPDATE
		 SET completed = EXCLUDED.completed
		 `

	_, err := r.db.ExecContext(ctx, query, step.UserID, step.StepID, step.Completed)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
