// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/daycompass/internal/dbx"
	"github.com/dmitrijs2005/daycompass/internal/server/migrations"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/goals"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/habits"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/inbox"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/settings"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/users"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/vision"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/wizardsteps"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// Settings returns a settings.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewPostgresRepository(db)
}

// WizardSteps returns a wizardsteps.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) WizardSteps(db dbx.DBTX) wizardsteps.Repository {
	return wizardsteps.NewPostgresRepository(db)
}

// Goals returns a goals.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Goals(db dbx.DBTX) goals.Repository {
	return goals.NewPostgresRepository(db)
}

// Habits returns a habits.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Habits(db dbx.DBTX) habits.Repository {
	return habits.NewPostgresRepository(db)
}

// Inbox returns an inbox.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Inbox(db dbx.DBTX) inbox.Repository {
	return inbox.NewPostgresRepository(db)
}

// Vision returns a vision.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Vision(db dbx.DBTX) vision.Repository {
	return vision.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
