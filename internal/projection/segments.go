// Package projection converts a day's schedule items into angular arc
// segments and SVG-ready wedge geometry for the 24-hour circular view.
package projection

import (
	"github.com/ogison/daily-planner/internal/domain"
)

// ItemSegments maps each schedule item to its own segment spanning
// [StartMin, EndMin). Labels come from the category registry, falling back
// to the item title only when the category is not a known enum member.
func ItemSegments(items []*domain.ScheduleItem) []domain.TimeSegment {
	segments := make([]domain.TimeSegment, 0, len(items))
	for _, it := range items {
		label := it.Category.Label()
		if !it.Category.Valid() {
			label = it.Title
		}
		color := it.Color
		if color == "" {
			color = it.Category.DefaultColor()
		}
		segments = append(segments, domain.TimeSegment{
			ID:          it.ID,
			Label:       label,
			StartMinute: float64(it.StartMin),
			EndMinute:   float64(it.EndMin),
			Color:       color,
			Category:    it.Category,
		})
	}
	return segments
}

// CategorySegments aggregates items by category: each category's total
// duration becomes one contiguous synthetic arc. Arcs are laid out
// consecutively from minute zero in canonical category order, so their
// placement says nothing about clock time; individual item boundaries,
// gaps and overlaps do not appear in this mode. Categories with no items
// are skipped.
func CategorySegments(items []*domain.ScheduleItem) []domain.TimeSegment {
	// Accumulators for every enum member up front; output order is the
	// canonical declaration order, independent of input order.
	totals := make(map[domain.Category]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		totals[c] = 0
	}
	for _, it := range items {
		totals[it.Category] += it.DurationMin()
	}

	var segments []domain.TimeSegment
	cursor := 0.0
	for _, c := range domain.Categories() {
		total := totals[c]
		if total == 0 {
			continue
		}
		segments = append(segments, domain.TimeSegment{
			ID:          "category-" + string(c),
			Label:       c.Label(),
			Sublabel:    domain.FormatDuration(total),
			StartMinute: cursor,
			EndMinute:   cursor + float64(total),
			Color:       c.DefaultColor(),
			Category:    c,
		})
		cursor += float64(total)
	}
	return segments
}
