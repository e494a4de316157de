package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ogison/daily-planner/internal/domain"
)

// Item options
type ItemOption func(*domain.ScheduleItem)

func WithCategory(c domain.Category) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Category = c
		it.Color = c.DefaultColor()
	}
}

func WithColor(color string) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Color = color
	}
}

func WithNotes(notes string) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.Notes = notes
	}
}

func WithID(id string) ItemOption {
	return func(it *domain.ScheduleItem) {
		it.ID = id
	}
}

// NewTestItem builds a ScheduleItem with sensible defaults for tests.
func NewTestItem(title string, startMin, endMin int, opts ...ItemOption) *domain.ScheduleItem {
	now := time.Now().UTC()
	it := &domain.ScheduleItem{
		ID:        uuid.New().String(),
		Title:     title,
		StartMin:  startMin,
		EndMin:    endMin,
		Category:  domain.CategoryOther,
		Color:     domain.CategoryOther.DefaultColor(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// NewTestDraft builds an ItemDraft for add-path tests.
func NewTestDraft(title string, startMin, endMin int, category domain.Category) domain.ItemDraft {
	return domain.ItemDraft{
		Title:    title,
		StartMin: startMin,
		EndMin:   endMin,
		Category: category,
	}
}
