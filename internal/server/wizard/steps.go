// Package wizard owns the onboarding step catalog and the
// setup-completeness projection. The label table and the step ordering rule
// live here, and only here, so every surface that renders "what's next"
// agrees on both.
package wizard

import "fmt"

// StepCount is the number of known onboarding steps, ids "0".."13".
const StepCount = 14

// labels maps a step number to its display label.
var labels = [StepCount]string{
	"Welcome",
	"Brain Dump",
	"Life Areas",
	"Vision Board",
	"Identity Statements",
	"Year Compass",
	"Goals",
	"Milestones",
	"Habits",
	"Weekly Rhythm",
	"Inbox Triage",
	"Default Landing",
	"Notifications",
	"Review & Finish",
}

// StepLabel returns the display label for a step number. Out-of-range
// numbers get a synthesized label rather than an error so an unexpected
// record never breaks a render.
func StepLabel(n int) string {
	if n < 0 || n >= StepCount {
		return fmt.Sprintf("Step %d", n)
	}
	return labels[n]
}

// StepIDs returns the known step ids in order.
func StepIDs() []string {
	ids := make([]string, StepCount)
	for i := range ids {
		ids[i] = fmt.Sprintf("%d", i)
	}
	return ids
}
