package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ogison/daily-planner/internal/domain"
)

// resolveItemID maps user input to an item id for the given date.
// Accepted forms, tried in order: 1-based position in the sorted day,
// exact id, unique id prefix.
func resolveItemID(ctx context.Context, app *App, date, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item reference is required")
	}

	day, err := app.Schedules.GetCurrentSchedule(ctx, date)
	if err != nil {
		return "", err
	}

	if pos, err := strconv.Atoi(input); err == nil {
		if pos < 1 || pos > len(day.Items) {
			return "", fmt.Errorf("position %d out of range (day has %d items)", pos, len(day.Items))
		}
		return day.Items[pos-1].ID, nil
	}

	for _, it := range day.Items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []*domain.ScheduleItem
	for _, it := range day.Items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("item prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
