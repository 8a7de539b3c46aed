package vision

import (
	"context"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tile *models.VisionTile) (*models.VisionTile, error)
	ListByUser(ctx context.Context, userID string) ([]models.VisionTile, error)
}
