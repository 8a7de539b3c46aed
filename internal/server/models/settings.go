package models

// Settings is the single per-user settings row. A missing row is a valid
// state (new user) and is treated exactly like OnboardingCompleted=false.
type Settings struct {
	UserID              string `db:"user_id"`
	OnboardingCompleted bool   `db:"onboarding_completed"`
	DefaultLanding      string `db:"default_landing"`
	Timezone            string `db:"timezone"`
}
