package formatter

import (
	"fmt"
	"strings"

	"github.com/ogison/daily-planner/internal/domain"
)

// ScheduleTable renders a day's items as an aligned table, one row per
// item in start-time order.
func ScheduleTable(items []*domain.ScheduleItem) string {
	if len(items) == 0 {
		return Dim("no items scheduled") + "\n"
	}

	headers := []string{"#", "TIME", "TITLE", "CATEGORY", "DUR", "NOTES"}
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			TimeRange(it),
			it.Title,
			CategoryBadge(it.Category),
			domain.FormatDuration(it.DurationMin()),
			it.Notes,
		})
	}
	return RenderTable(headers, rows)
}

// TimeRange formats an item's span as "HH:MM–HH:MM".
func TimeRange(it *domain.ScheduleItem) string {
	return domain.FormatTime(it.StartMin) + "–" + domain.FormatTime(it.EndMin)
}

const barWidth = 24

// CategorySummary renders per-category totals with a proportional bar.
// Categories with no scheduled time are omitted. Order follows the
// category registry, not insertion order.
func CategorySummary(items []*domain.ScheduleItem) string {
	totals := make(map[domain.Category]int)
	for _, it := range items {
		totals[it.Category] += it.DurationMin()
	}

	var b strings.Builder
	for _, cat := range domain.Categories() {
		total := totals[cat]
		if total == 0 {
			continue
		}
		filled := total * barWidth / domain.MinutesPerDay
		if filled > barWidth {
			filled = barWidth
		}
		bar := CategoryStyle(cat).Render(strings.Repeat("█", filled)) +
			Dim(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%s %s %s\n",
			padRight(CategoryBadge(cat), 14),
			bar,
			domain.FormatDuration(total))
	}
	if b.Len() == 0 {
		return Dim("no items scheduled") + "\n"
	}
	return b.String()
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", pad(width, s))
}
