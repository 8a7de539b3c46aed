package timex

import (
	"os"
	"time"
)

// DateLayout is the ISO calendar-day form used everywhere a date is stored
// or compared ("2006-01-02").
const DateLayout = "2006-01-02"

// displayLayout is the long human-readable form used by render paths.
const displayLayout = "Monday, January 2, 2006"

// now is stubbed in tests.
var now = time.Now

// loadLocation resolves an IANA zone name, falling back to UTC on an empty
// or unknown identifier. Render and gating paths must never fail over a bad
// timezone string.
func loadLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CurrentCalendarDay renders "now" as a YYYY-MM-DD string in the given IANA
// timezone. Calendar semantics: two calls straddling local midnight return
// different dates even though the UTC instant moved by a second. Extraction
// goes through time.In, not offset arithmetic, so zones with 30/45-minute
// offsets resolve correctly.
func CurrentCalendarDay(tz string) string {
	return now().In(loadLocation(tz)).Format(DateLayout)
}

// CurrentWeekStart returns the date of the Monday on or before the current
// calendar day in the given timezone. Weeks start on Monday regardless of
// locale: Sunday maps back six days, any other weekday d maps back d-1 days.
func CurrentWeekStart(tz string) string {
	t := now().In(loadLocation(tz))
	back := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -back).Format(DateLayout)
}

// CurrentWeekday returns today's weekday in the given timezone.
func CurrentWeekday(tz string) time.Weekday {
	return now().In(loadLocation(tz)).Weekday()
}

// FormatForDisplay renders a stored YYYY-MM-DD date in long form for the
// given timezone (UTC when empty or invalid). An unparsable date string is
// returned verbatim rather than failing the render.
func FormatForDisplay(date string, tz string) string {
	loc := loadLocation(tz)
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return date
	}
	return t.Format(displayLayout)
}

// DetectClientTimezone makes a best-effort guess at the local IANA zone name.
// It returns "UTC" whenever the environment does not expose a usable name;
// callers never see an error.
func DetectClientTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		if _, err := time.LoadLocation(tz); err == nil {
			return tz
		}
		return "UTC"
	}
	name := now().Location().String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}
