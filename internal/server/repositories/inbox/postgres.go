package inbox

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

func (r *PostgresRepository) Create(ctx context.Context, item *models.InboxItem) (*models.InboxItem, error) {
	query :=
		`INSERT INTO inbox_items (user_id, content)
         VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.Content).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.InboxItem, error) {
	query :=
		`SELECT id, user_id, content, created_at FROM inbox_items
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.InboxItem
	for rows.Next() {
		var i models.InboxItem
		if err := rows.Scan(&i.ID, &i.UserID, &i.Content, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
