package inbox

import (
	"context"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.InboxItem) (*models.InboxItem, error)
	ListByUser(ctx context.Context, userID string) ([]models.InboxItem, error)
}
