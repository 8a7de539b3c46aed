package habits

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

func (r *PostgresRepository) Create(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	query :=
		`INSERT INTO habits (user_id, title, weekdays)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		habit.UserID, habit.Title, habit.Weekdays).Scan(&habit.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return habit, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	query :=
		`SELECT id, user_id, title, weekdays FROM habits
		 WHERE user_id = $1
		 ORDER BY title
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Weekdays); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
