package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDraft() ItemDraft {
	return ItemDraft{Title: "Gym", StartMin: 600, EndMin: 660, Category: CategoryExercise}
}

func TestValidateDraft_OK(t *testing.T) {
	assert.NoError(t, ValidateDraft(validDraft()))

	// Boundaries are inclusive.
	d := validDraft()
	d.StartMin, d.EndMin = 0, 1440
	assert.NoError(t, ValidateDraft(d))
}

func TestValidateDraft_EmptyTitle(t *testing.T) {
	d := validDraft()
	d.Title = ""
	assert.ErrorIs(t, ValidateDraft(d), ErrEmptyTitle)

	d.Title = "   \t"
	assert.ErrorIs(t, ValidateDraft(d), ErrEmptyTitle)
}

func TestValidateDraft_EndBeforeStart(t *testing.T) {
	// 10:00 start with a 09:00 end must fail with the end-before-start
	// violation.
	d := validDraft()
	d.StartMin = TimeToMinutes(10, 0)
	d.EndMin = TimeToMinutes(9, 0)
	assert.ErrorIs(t, ValidateDraft(d), ErrEndBeforeStart)

	// Equal start and end is also rejected.
	d.EndMin = d.StartMin
	assert.ErrorIs(t, ValidateDraft(d), ErrEndBeforeStart)
}

func TestValidateDraft_OutOfRange(t *testing.T) {
	d := validDraft()
	d.StartMin = -10
	d.EndMin = 60
	assert.ErrorIs(t, ValidateDraft(d), ErrTimeOutOfRange)

	d = validDraft()
	d.StartMin = 1400
	d.EndMin = 1500
	assert.ErrorIs(t, ValidateDraft(d), ErrTimeOutOfRange)
}
