package models

type VisionTile struct {
	ID       string `db:"id"`
	UserID   string `db:"user_id"`
	Title    string `db:"title"`
	ImageKey string `db:"image_key"` // object-storage key, "{userID}/{uuid}.{ext}"
	Position int    `db:"position"`
}
