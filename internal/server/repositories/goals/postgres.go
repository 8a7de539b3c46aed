package goals

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

func (r *PostgresRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	query :=
		`INSERT INTO goals (user_id, title, area, due_date, completed)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		goal.UserID, goal.Title, goal.Area, goal.DueDate, goal.Completed).Scan(&goal.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return goal, nil
}

func (r *PostgresRepository) ListDueOn(ctx context.Context, userID string, date string) ([]models.Goal, error) {
	query :=
		`SELECT id, user_id, title, area, due_date, completed FROM goals
		 WHERE user_id = $1 AND due_date = $2
		 ORDER BY title
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Area, &g.DueDate, &g.Completed); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
