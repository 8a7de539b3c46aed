package wizard

import (
	"sort"
	"strconv"

	"github.com/dmitrijs2005/daycompass/internal/server/models"
)

// Projection is the derived "which onboarding steps remain" state that
// drives the in-app setup banner and its continue-onboarding deep link.
type Projection struct {
	// Nothing is true when no incomplete steps exist; the caller
	// suppresses its banner.
	Nothing bool
	// Remaining holds every incomplete record, numeric step id or not.
	Remaining []models.WizardStep
	// FirstIncompleteStep is the smallest numeric incomplete step id;
	// valid only when HasNext is true.
	FirstIncompleteStep int
	HasNext             bool
	Label               string
}

// Project derives the setup-completeness state from per-step completion
// records. Records with non-numeric step ids are excluded from the ordering
// computation but still count toward the remaining total.
func Project(records []models.WizardStep) Projection {
	var remaining []models.WizardStep
	for _, r := range records {
		if !r.Completed {
			remaining = append(remaining, r)
		}
	}

	if len(remaining) == 0 {
		return Projection{Nothing: true}
	}

	var numbers []int
	for _, r := range remaining {
		n, err := strconv.Atoi(r.StepID)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	p := Projection{Remaining: remaining}
	if len(numbers) == 0 {
		return p
	}

	sort.Ints(numbers)
	p.FirstIncompleteStep = numbers[0]
	p.HasNext = true
	p.Label = StepLabel(numbers[0])
	return p
}
