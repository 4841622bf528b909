package timeutil

import "time"

// DateLayout defines the canonical scoreboard date format (YYYYMMDD).
const DateLayout = "20060102"

// ParseDate parses a YYYYMMDD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYYMMDD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NextSaturday returns the date of the Saturday strictly after t, formatted as
// YYYYMMDD. When t itself falls on a Saturday the result is a full week later,
// so the returned date is never t's own date.
func NextSaturday(t time.Time) string {
	daysAhead := (int(time.Saturday) - int(t.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return FormatDate(t.AddDate(0, 0, daysAhead))
}

// ResolveDate returns the explicit override unchanged when provided, otherwise
// the next Saturday relative to now(). The override format is not validated.
func ResolveDate(override string, now func() time.Time) string {
	if override != "" {
		return override
	}
	return NextSaturday(now())
}
