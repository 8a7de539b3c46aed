package wizardsteps

import (
	"context"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]models.WizardStep, error)
	Upsert(ctx context.Context, step *models.WizardStep) error
}
