package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/daycompass/internal/server/config"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/daycompass/internal/server/wizard"
)

// WizardService tracks a user's progress through the setup wizard and
// projects the stored step records into a setup summary.
type WizardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewWizardService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *WizardService {
	return &WizardService{db: db, repomanager: m}
}

// Steps returns the user's stored wizard step records.
func (s *WizardService) Steps(ctx context.Context, userID string) ([]models.WizardStep, error) {
	repo := s.repomanager.WizardSteps(s.db)
	steps, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading wizard steps: %v", err)
	}
	return steps, nil
}

// SaveStep records completion state for a single wizard step.
func (s *WizardService) SaveStep(ctx context.Context, userID string, stepID string, completed bool) error {
	repo := s.repomanager.WizardSteps(s.db)
	step := &models.WizardStep{UserID: userID, StepID: stepID, Completed: completed}
	if err := repo.Upsert(ctx, step); err != nil {
		return fmt.Errorf("error saving wizard step: %v", err)
	}
	return nil
}

// Setup loads the user's step records and projects them into a summary of
// what remains to be done.
func (s *WizardService) Setup(ctx context.Context, userID string) (*wizard.Projection, error) {
	steps, err := s.Steps(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := wizard.Project(steps)
	return &p, nil
}
