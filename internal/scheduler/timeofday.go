package scheduler

import (
	"errors"
	"fmt"
)

// TimeOfDay is a naive local clock time expressed as minutes since midnight.
// Values are only produced by ParseTimeOfDay or TimeSlot generation, so
// interval arithmetic never operates on unvalidated input.
type TimeOfDay int

var (
	// ErrInvalidTime is returned when a time string is not well-formed HH:MM.
	ErrInvalidTime = errors.New("scheduler: invalid time of day")
	// ErrInvalidDate is returned when a date string is not well-formed YYYY-MM-DD.
	ErrInvalidDate = errors.New("scheduler: invalid date")
)

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string. Hours must be in
// [0,23] and minutes in [0,59].
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	hours, ok := parseTwoDigits(value[0:2])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	minutes, ok := parseTwoDigits(value[3:5])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String renders the time in zero-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// IsValidTimeRange reports whether end is strictly after start. Zero-length
// and inverted ranges are rejected.
func IsValidTimeRange(start, end TimeOfDay) bool {
	return end > start
}

// ParseDate validates a "YYYY-MM-DD" calendar date and returns it unchanged.
// Dates stay strings throughout the engine: the zero-padded ISO form makes
// lexicographic comparison equivalent to chronological comparison.
func ParseDate(value string) (string, error) {
	if len(value) != 10 || value[4] != '-' || value[7] != '-' {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if value[i] < '0' || value[i] > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}
	}
	month := int(value[5]-'0')*10 + int(value[6]-'0')
	day := int(value[8]-'0')*10 + int(value[9]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return value, nil
}

func parseTwoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
