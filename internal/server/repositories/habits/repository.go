package habits

import (
	"context"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, habit *models.Habit) (*models.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]models.Habit, error)
}
