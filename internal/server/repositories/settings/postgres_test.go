package settings

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/daycompass/internal/common"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*onboarding_completed,\s*default_landing,\s*timezone\s+FROM\s+settings\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"user_id", "onboarding_completed", "default_landing", "timezone"}).
		AddRow("u-1", true, "vision", "America/New_York")
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !got.OnboardingCompleted || got.DefaultLanding != "vision" || got.Timezone != "America/New_York" {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*onboarding_completed`

	mock.ExpectQuery(q).WithArgs("u-2").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u-2")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+settings.*ON\s+CONFLICT\s*\(user_id\)\s+DO\s+UPDATE`

	mock.ExpectExec(q).
		WithArgs("u-1", false, "today", "UTC").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.Settings{UserID: "u-1", DefaultLanding: "today", Timezone: "UTC"}
	if err := repo.Upsert(context.Background(), s); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+settings`

	mock.ExpectExec(q).
		WithArgs("u-1", false, "today", "UTC").
		WillReturnError(errors.New("db down"))

	s := &models.Settings{UserID: "u-1", DefaultLanding: "today", Timezone: "UTC"}
	if err := repo.Upsert(context.Background(), s); err == nil {
		t.Fatal("expected error")
	}
}
