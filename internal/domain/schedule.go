package domain

import "time"

// MinutesPerDay is the length of the schedulable day in minutes.
const MinutesPerDay = 1440

// ScheduleItem is one time-blocked activity within a day.
// StartMin and EndMin are minutes from midnight; StartMin < EndMin is
// enforced at the edit boundary, not as a structural invariant.
type ScheduleItem struct {
	ID       string
	Title    string
	StartMin int
	EndMin   int
	Category Category
	Notes    string
	Color    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMin returns the item's length in minutes.
func (s *ScheduleItem) DurationMin() int {
	return s.EndMin - s.StartMin
}

// DaySchedule is the full set of items for one calendar date.
// Items are kept sorted ascending by StartMin.
type DaySchedule struct {
	Date  string // YYYY-MM-DD
	Items []*ScheduleItem
}

// ItemDraft is a ScheduleItem before the store has assigned it an identity.
// An empty Color means "use the category's registry color".
type ItemDraft struct {
	Title    string
	StartMin int
	EndMin   int
	Category Category
	Notes    string
	Color    string
}

// ItemPatch is a partial update. Only non-nil fields are applied.
type ItemPatch struct {
	Title    *string
	StartMin *int
	EndMin   *int
	Category *Category
	Notes    *string
	Color    *string
}

// ApplyPatch merges the defined fields of p onto a copy of item and returns
// the new value; item itself is never mutated. A patch that carries a
// category always resets the color to that category's registry color,
// discarding any custom color, including one set by the same patch.
func ApplyPatch(item ScheduleItem, p ItemPatch) ScheduleItem {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.StartMin != nil {
		item.StartMin = *p.StartMin
	}
	if p.EndMin != nil {
		item.EndMin = *p.EndMin
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	if p.Color != nil {
		item.Color = *p.Color
	}
	if p.Category != nil {
		item.Category = *p.Category
		item.Color = p.Category.DefaultColor()
	}
	return item
}

// TimeSegment is an ephemeral projection of one or more items for rendering
// on the 24-hour wheel. It is recomputed on every render, never stored.
// Minutes are float64 because per-category synthetic segments land on
// fractional minute boundaries.
type TimeSegment struct {
	ID          string
	Label       string
	Sublabel    string
	StartMinute float64
	EndMinute   float64
	Color       string
	Category    Category
}
