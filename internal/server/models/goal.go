package models

type Goal struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Title     string `db:"title"`
	Area      string `db:"area"`
	DueDate   string `db:"due_date"` // YYYY-MM-DD
	Completed bool   `db:"completed"`
}
