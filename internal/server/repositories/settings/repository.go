package settings

import (
	"context"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*models.Settings, error)
	Upsert(ctx context.Context, s *models.Settings) error
}
