package helpers

import (
	"strconv"
	"time"
)

// DateLayout is the wire format birth dates are submitted in.
const DateLayout = "2006-01-02"

// DisplayDateLayout is the format dates are rendered with in report payloads.
const DisplayDateLayout = "02/01/2006"

// ParseBirthDate parses a stored birth date string. Birth dates are kept as
// free text: rows whose value never parsed against DateLayout keep the raw
// submission, so ok=false here just means the row has no extractable date.
func ParseBirthDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a stored date string for display. Empty values render
// as "-", unparseable values are passed through untouched.
func FormatDate(value string) string {
	if value == "" {
		return "-"
	}
	t, ok := ParseBirthDate(value)
	if !ok {
		return value
	}
	return t.Format(DisplayDateLayout)
}

// YearsEnrolled computes currentYear - anoIngresso. ok=false when the
// enrollment year is not a well-formed 4-digit numeric string.
func YearsEnrolled(anoIngresso string, currentYear int) (int, bool) {
	if len(anoIngresso) != 4 {
		return 0, false
	}
	for _, c := range anoIngresso {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(anoIngresso)
	if err != nil {
		return 0, false
	}
	return currentYear - year, true
}
