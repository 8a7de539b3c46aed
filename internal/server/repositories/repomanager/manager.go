package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/daycompass/internal/dbx"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/goals"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/habits"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/inbox"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/settings"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/users"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/vision"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/wizardsteps"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Settings(db dbx.DBTX) settings.Repository
	WizardSteps(db dbx.DBTX) wizardsteps.Repository
	Goals(db dbx.DBTX) goals.Repository
	Habits(db dbx.DBTX) habits.Repository
	Inbox(db dbx.DBTX) inbox.Repository
	Vision(db dbx.DBTX) vision.Repository
}
