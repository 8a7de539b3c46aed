package models

// WizardStep is one per-(user, step) completion record. StepID is stored as
// a string; ids outside the known "0".."13" set still count as incomplete
// work even though they carry no label.
type WizardStep struct {
	UserID    string `db:"user_id"`
	StepID    string `db:"step_id"`
	Completed bool   `db:"completed"`
}
