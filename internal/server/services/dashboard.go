package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/daycompass/internal/server/config"
	"github.com/dmitrijs2005/daycompass/internal/server/models"
	"github.com/dmitrijs2005/daycompass/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/daycompass/internal/timex"
)

// TodayView is the content of the daily dashboard: the user's local calendar
// day, the start of that week, goals due today, and habits scheduled for
// today's weekday.
type TodayView struct {
	Date      string
	Display   string
	WeekStart string
	Goals     []models.Goal
	Habits    []models.Habit
}

// DashboardService assembles the three main pages: the daily dashboard, the
// vision board, and the inbox. All day arithmetic uses the timezone stored in
// the user's settings.
type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *DashboardService {
	return &DashboardService{db: db, repomanager: m}
}

// Today builds the daily dashboard for the user's current local day.
func (s *DashboardService) Today(ctx context.Context, userID string, tz string) (*TodayView, error) {
	date := timex.CurrentCalendarDay(tz)
	weekday := int(timex.CurrentWeekday(tz))

	goalRepo := s.repomanager.Goals(s.db)
	dueGoals, err := goalRepo.ListDueOn(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("error loading goals: %v", err)
	}

	habitRepo := s.repomanager.Habits(s.db)
	allHabits, err := habitRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading habits: %v", err)
	}

	return &TodayView{
		Date:      date,
		Display:   timex.FormatForDisplay(date, tz),
		WeekStart: timex.CurrentWeekStart(tz),
		Goals:     dueGoals,
		Habits:    habitsForWeekday(allHabits, weekday),
	}, nil
}

// Vision returns the user's vision board tiles in position order.
func (s *DashboardService) Vision(ctx context.Context, userID string) ([]models.VisionTile, error) {
	repo := s.repomanager.Vision(s.db)
	tiles, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading vision tiles: %v", err)
	}
	return tiles, nil
}

// AddVisionTile stores a new tile on the user's vision board.
func (s *DashboardService) AddVisionTile(ctx context.Context, tile *models.VisionTile) (*models.VisionTile, error) {
	repo := s.repomanager.Vision(s.db)
	created, err := repo.Create(ctx, tile)
	if err != nil {
		return nil, fmt.Errorf("error creating vision tile: %v", err)
	}
	return created, nil
}

// Inbox returns the user's inbox items, newest first.
func (s *DashboardService) Inbox(ctx context.Context, userID string) ([]models.InboxItem, error) {
	repo := s.repomanager.Inbox(s.db)
	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading inbox: %v", err)
	}
	return items, nil
}

// AddInboxItem captures a note into the user's inbox.
func (s *DashboardService) AddInboxItem(ctx context.Context, userID string, content string) (*models.InboxItem, error) {
	repo := s.repomanager.Inbox(s.db)
	item, err := repo.Create(ctx, &models.InboxItem{UserID: userID, Content: content})
	if err != nil {
		return nil, fmt.Errorf("error creating inbox item: %v", err)
	}
	return item, nil
}

// AddGoal stores a new goal.
func (s *DashboardService) AddGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	repo := s.repomanager.Goals(s.db)
	created, err := repo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("error creating goal: %v", err)
	}
	return created, nil
}

// AddHabit stores a new habit.
func (s *DashboardService) AddHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	repo := s.repomanager.Habits(s.db)
	created, err := repo.Create(ctx, habit)
	if err != nil {
		return nil, fmt.Errorf("error creating habit: %v", err)
	}
	return created, nil
}

// habitsForWeekday keeps habits scheduled for the given weekday. A habit with
// no weekday list runs every day. Weekdays are stored as comma-separated
// integers, Sunday=0.
func habitsForWeekday(habits []models.Habit, weekday int) []models.Habit {
	var result []models.Habit
	for _, h := range habits {
		if h.Weekdays == "" {
			result = append(result, h)
			continue
		}
		for _, part := range strings.Split(h.Weekdays, ",") {
			d, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if d == weekday {
				result = append(result, h)
				break
			}
		}
	}
	return result
}
