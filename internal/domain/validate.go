package domain

import (
	"errors"
	"strings"
)

// Edit-boundary validation errors. The store itself performs no
// validation; these gate commits from the form and the flag-driven
// commands.
var (
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrTimeOutOfRange = errors.New("time is outside the 24-hour day")
)

// ValidateDraft checks the preconditions for committing an add or update:
// a non-blank title, start strictly before end, and both times within
// [0, 1440]. It returns the first violation found, or nil.
func ValidateDraft(d ItemDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if d.StartMin >= d.EndMin {
		return ErrEndBeforeStart
	}
	if d.StartMin < 0 || d.EndMin > MinutesPerDay {
		return ErrTimeOutOfRange
	}
	return nil
}
