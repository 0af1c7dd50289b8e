package scheduler

import (
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid values parse to minutes since midnight", func(t *testing.T) {
		cases := []struct {
			value string
			want  int
		}{
			{"00:00", 0},
			{"00:01", 1},
			{"08:00", 480},
			{"09:30", 570},
			{"12:00", 720},
			{"23:59", 1439},
		}
		for _, tc := range cases {
			got, err := ParseTimeOfDay(tc.value)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) returned error: %v", tc.value, err)
			}
			if got.Minutes() != tc.want {
				t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.value, got.Minutes(), tc.want)
			}
			if got.String() != tc.value {
				t.Errorf("String() = %q, want %q", got.String(), tc.value)
			}
		}
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		for _, value := range []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "12-30", "12:345", "1200"} {
			if _, err := ParseTimeOfDay(value); !errors.Is(err, ErrInvalidTime) {
				t.Errorf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTime", value, err)
			}
		}
	})

	t.Run("strictly monotonic in hour then minute order", func(t *testing.T) {
		previous := TimeOfDay(-1)
		for hour := 0; hour < 24; hour++ {
			for minute := 0; minute < 60; minute += 7 {
				value := TimeOfDay(hour*60 + minute).String()
				parsed, err := ParseTimeOfDay(value)
				if err != nil {
					t.Fatalf("ParseTimeOfDay(%q) returned error: %v", value, err)
				}
				if parsed <= previous {
					t.Fatalf("ParseTimeOfDay(%q) = %d not greater than previous %d", value, parsed, previous)
				}
				previous = parsed
			}
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid dates pass through unchanged", func(t *testing.T) {
		for _, value := range []string{"2026-02-03", "2026-12-31", "1999-01-01"} {
			got, err := ParseDate(value)
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", value, err)
			}
			if got != value {
				t.Errorf("ParseDate(%q) = %q", value, got)
			}
		}
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		for _, value := range []string{"", "2026-2-03", "2026/02/03", "20260203", "2026-13-01", "2026-00-10", "2026-01-32", "2026-01-00", "abcd-ef-gh"} {
			if _, err := ParseDate(value); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", value, err)
			}
		}
	})
}

func TestIsValidTimeRange(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "09:01", true},
		{"09:00", "10:00", true},
		{"09:00", "09:00", false},
		{"10:00", "09:00", false},
	}
	for _, tc := range cases {
		start := mustTime(t, tc.start)
		end := mustTime(t, tc.end)
		if got := IsValidTimeRange(start, end); got != tc.want {
			t.Errorf("IsValidTimeRange(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
		}
	}
}

func mustTime(t *testing.T, value string) TimeOfDay {
	t.Helper()
	parsed, err := ParseTimeOfDay(value)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) returned error: %v", value, err)
	}
	return parsed
}
