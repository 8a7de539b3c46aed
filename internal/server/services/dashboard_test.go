package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/daycompass/internal/dbx"
	"github.com/dmitrijs2005/daycompass/internal/server/config"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
	goalsrepo "github.com/dmitrijs2005/daycompass/internal/server/repositories/goals"
	habitsrepo "github.com/dmitrijs2005/daycompass/internal/server/repositories/habits"
	inboxrepo "github.com/dmitrijs2005/daycompass/internal/server/repositories/inbox"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/repomanager"
	visionrepo "github.com/dmitrijs2005/daycompass/internal/server/repositories/vision"
	"github.com/dmitrijs2005/daycompass/internal/timex"
)

type fakeGoalsRepo struct {
	listOut []models.Goal
	listErr error
	gotDate string
}

func (f *fakeGoalsRepo) Create(ctx context.Context, g *models.Goal) (*models.Goal, error) {
	g.ID = "g-new"
	return g, nil
}
func (f *fakeGoalsRepo) ListDueOn(ctx context.Context, userID string, date string) ([]models.Goal, error) {
	f.gotDate = date
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeHabitsRepo struct {
	listOut []models.Habit
	listErr error
}

func (f *fakeHabitsRepo) Create(ctx context.Context, h *models.Habit) (*models.Habit, error) {
	h.ID = "h-new"
	return h, nil
}
func (f *fakeHabitsRepo) ListByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeInboxRepo struct {
	listOut []models.InboxItem
}

func (f *fakeInboxRepo) Create(ctx context.Context, i *models.InboxItem) (*models.InboxItem, error) {
	i.ID = "i-new"
	return i, nil
}
func (f *fakeInboxRepo) ListByUser(ctx context.Context, userID string) ([]models.InboxItem, error) {
	return f.listOut, nil
}

type fakeVisionRepo struct {
	listOut []models.VisionTile
}

func (f *fakeVisionRepo) Create(ctx context.Context, v *models.VisionTile) (*models.VisionTile, error) {
	v.ID = "v-new"
	return v, nil
}
func (f *fakeVisionRepo) ListByUser(ctx context.Context, userID string) ([]models.VisionTile, error) {
	return f.listOut, nil
}

type dashboardMgr struct {
	repomanager.RepositoryManager
	g *fakeGoalsRepo
	h *fakeHabitsRepo
	i *fakeInboxRepo
	v *fakeVisionRepo
}

func (m *dashboardMgr) Goals(db dbx.DBTX) goalsrepo.Repository   { return m.g }
func (m *dashboardMgr) Habits(db dbx.DBTX) habitsrepo.Repository { return m.h }
func (m *dashboardMgr) Inbox(db dbx.DBTX) inboxrepo.Repository   { return m.i }
func (m *dashboardMgr) Vision(db dbx.DBTX) visionrepo.Repository { return m.v }

func newDashboardService(t *testing.T, mgr *dashboardMgr) *DashboardService {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewDashboardService(db, mgr, &config.Config{})
}

func TestToday_UsesLocalCalendarDay(t *testing.T) {
	mgr := &dashboardMgr{
		g: &fakeGoalsRepo{listOut: []models.Goal{{ID: "g-1", Title: "Finish report"}}},
		h: &fakeHabitsRepo{},
	}
	s := newDashboardService(t, mgr)

	view, err := s.Today(context.Background(), "u-1", "Asia/Kathmandu")
	if err != nil {
		t.Fatalf("Today error: %v", err)
	}
	wantDate := timex.CurrentCalendarDay("Asia/Kathmandu")
	if view.Date != wantDate {
		t.Fatalf("date %q, want %q", view.Date, wantDate)
	}
	if mgr.g.gotDate != wantDate {
		t.Fatalf("goals queried for %q, want %q", mgr.g.gotDate, wantDate)
	}
	if view.WeekStart != timex.CurrentWeekStart("Asia/Kathmandu") {
		t.Fatalf("unexpected week start %q", view.WeekStart)
	}
	if len(view.Goals) != 1 {
		t.Fatalf("unexpected goals: %+v", view.Goals)
	}
}

func TestToday_GoalsError(t *testing.T) {
	mgr := &dashboardMgr{
		g: &fakeGoalsRepo{listErr: errors.New("db down")},
		h: &fakeHabitsRepo{},
	}
	s := newDashboardService(t, mgr)

	if _, err := s.Today(context.Background(), "u-1", "UTC"); err == nil {
		t.Fatal("expected error")
	}
}

func TestHabitsForWeekday(t *testing.T) {
	habits := []models.Habit{
		{ID: "h-1", Title: "Journal", Weekdays: ""},
		{ID: "h-2", Title: "Morning run", Weekdays: "1,3,5"},
		{ID: "h-3", Title: "Weekly review", Weekdays: "0"},
		{ID: "h-4", Title: "Broken", Weekdays: "x,y"},
	}

	got := habitsForWeekday(habits, 3)
	if len(got) != 2 || got[0].ID != "h-1" || got[1].ID != "h-2" {
		t.Fatalf("wednesday: unexpected habits %+v", got)
	}

	got = habitsForWeekday(habits, 0)
	if len(got) != 2 || got[1].ID != "h-3" {
		t.Fatalf("sunday: unexpected habits %+v", got)
	}
}

func TestVisionAndInbox_Lists(t *testing.T) {
	mgr := &dashboardMgr{
		i: &fakeInboxRepo{listOut: []models.InboxItem{{ID: "i-1", Content: "book flights"}}},
		v: &fakeVisionRepo{listOut: []models.VisionTile{{ID: "v-1", Title: "Cabin in the woods"}}},
	}
	s := newDashboardService(t, mgr)

	tiles, err := s.Vision(context.Background(), "u-1")
	if err != nil || len(tiles) != 1 {
		t.Fatalf("Vision: %v %+v", err, tiles)
	}
	items, err := s.Inbox(context.Background(), "u-1")
	if err != nil || len(items) != 1 {
		t.Fatalf("Inbox: %v %+v", err, items)
	}
}

func TestAddInboxItem_AssignsID(t *testing.T) {
	mgr := &dashboardMgr{i: &fakeInboxRepo{}}
	s := newDashboardService(t, mgr)

	item, err := s.AddInboxItem(context.Background(), "u-1", "renew passport")
	if err != nil {
		t.Fatalf("AddInboxItem error: %v", err)
	}
	if item.ID != "i-new" || item.UserID != "u-1" {
		t.Fatalf("unexpected item: %+v", item)
	}
}
