package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("empty error reports no issues", func(t *testing.T) {
		vErr := &ValidationError{}
		if vErr.HasErrors() {
			t.Error("HasErrors should be false for an empty error")
		}
	})

	t.Run("recorded fields are reported", func(t *testing.T) {
		vErr := &ValidationError{}
		vErr.add("title", "title is required")
		if !vErr.HasErrors() {
			t.Fatal("HasErrors should be true after add")
		}
		if vErr.FieldErrors["title"] != "title is required" {
			t.Errorf("FieldErrors = %+v", vErr.FieldErrors)
		}
	})

	t.Run("nil receiver is safe", func(t *testing.T) {
		var vErr *ValidationError
		if vErr.HasErrors() {
			t.Error("nil receiver should report no errors")
		}
		if vErr.Error() != "" {
			t.Errorf("nil receiver Error() = %q", vErr.Error())
		}
	})
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{Conflict: Booking{Title: "Sprint Planning", StartTime: "09:00", EndTime: "10:00"}}
	want := `conflicts with "Sprint Planning" (09:00 - 10:00)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", ErrNotFound, "not_found"},
		{"wrapped not found", fmt.Errorf("outer: %w", ErrNotFound), "not_found"},
		{"validation", &ValidationError{FieldErrors: map[string]string{"title": "title is required"}}, "validation"},
		{"conflict", &ConflictError{}, "conflict"},
		{"unexpected", errors.New("boom"), "unexpected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ErrorKind(tc.err); got != tc.want {
				t.Errorf("ErrorKind(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
