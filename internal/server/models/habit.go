package models

type Habit struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Title  string `db:"title"`
	// Weekdays holds comma-separated weekday numbers (0=Sunday..6=Saturday).
	// Empty means every day.
	Weekdays string `db:"weekdays"`
}
