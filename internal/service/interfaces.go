package service

import (
	"context"

	"github.com/ogison/daily-planner/internal/domain"
)

// ScheduleService is the mutation and read boundary for day schedules.
// Every operation resolves the DaySchedule for the given YYYY-MM-DD date
// key, materializing the default day on first access.
type ScheduleService interface {
	GetCurrentSchedule(ctx context.Context, date string) (*domain.DaySchedule, error)
	// AddItem assigns a fresh id, defaults the color from the category
	// registry when the draft has none, and returns the stored item.
	AddItem(ctx context.Context, draft domain.ItemDraft, date string) (*domain.ScheduleItem, error)
	// UpdateItem merges the patch onto the matching item. Unknown ids are
	// a silent no-op.
	UpdateItem(ctx context.Context, id string, patch domain.ItemPatch, date string) error
	// DeleteItem removes the matching item. Unknown ids are a silent no-op.
	DeleteItem(ctx context.Context, id, date string) error
	// ReorderItems replaces the day's items wholesale. The day is always
	// re-sorted by start minute, so the caller's ordering is discarded.
	ReorderItems(ctx context.Context, items []*domain.ScheduleItem, date string) error
}

// DefaultDayFunc produces the items seeded into a date on first access.
type DefaultDayFunc func(date string) []*domain.ScheduleItem
