package repository

import (
	"context"
	"errors"

	"github.com/ogison/daily-planner/internal/domain"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("not found")

// ScheduleRepo persists schedule items keyed by calendar date.
// Listings are always returned sorted ascending by start minute.
type ScheduleRepo interface {
	// DayExists reports whether the date has been materialized. Existence
	// is tracked separately from item rows: a day whose items were all
	// deleted still exists and must stay empty.
	DayExists(ctx context.Context, date string) (bool, error)
	// MarkDay records the date as materialized. Idempotent.
	MarkDay(ctx context.Context, date string) error
	// GetDay returns the items for a date, sorted by start minute.
	// A date with no items yields an empty DaySchedule, not an error.
	GetDay(ctx context.Context, date string) (*domain.DaySchedule, error)
	CreateItem(ctx context.Context, date string, item *domain.ScheduleItem) error
	GetItem(ctx context.Context, date, id string) (*domain.ScheduleItem, error)
	UpdateItem(ctx context.Context, date string, item *domain.ScheduleItem) error
	DeleteItem(ctx context.Context, date, id string) error
	// DeleteDay removes every item for the date.
	DeleteDay(ctx context.Context, date string) error
}
