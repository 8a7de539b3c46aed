package goals

import (
	"context"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	ListDueOn(ctx context.Context, userID string, date string) ([]models.Goal, error)
}
