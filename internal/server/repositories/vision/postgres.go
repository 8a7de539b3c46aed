package vision

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

func (r *PostgresRepository) Create(ctx context.Context, tile *models.VisionTile) (*models.VisionTile, error) {
	query :=
		`INSERT INTO vision_tiles (user_id, title, image_key, position)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		tile.UserID, tile.Title, tile.ImageKey, tile.Position).Scan(&tile.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tile, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.VisionTile, error) {
	query :=
		`SELECT id, user_id, title, image_key, position FROM vision_tiles
		 WHERE user_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.VisionTile
	for rows.Next() {
		var v models.VisionTile
		if err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.ImageKey, &v.Position); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
