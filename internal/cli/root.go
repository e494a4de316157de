package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/domain"
	"github.com/ogison/daily-planner/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Schedules service.ScheduleService
}

// NewRootCmd creates the top-level "daily-planner" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daily-planner",
		Short: "Plan and visualize a single day as a 24-hour circle",
	}

	root.PersistentFlags().String("date", "", "Day to operate on (YYYY-MM-DD, default today)")

	root.AddCommand(
		newShowCmd(app),
		newAddCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newMoveCmd(app),
		newResetCmd(app),
		newExportCmd(app),
		newTuiCmd(app),
	)

	return root
}

// resolveDate returns the --date flag value, defaulting to today.
func resolveDate(cmd *cobra.Command) (string, error) {
	date, err := cmd.Flags().GetString("date")
	if err != nil {
		return "", err
	}
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
	}
	return date, nil
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// parseClock converts "HH:MM" to minutes from midnight. "24:00" is
// accepted as the end-of-day boundary.
func parseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour == 24 && minute == 0 {
		return domain.MinutesPerDay, nil
	}
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	return domain.TimeToMinutes(hour, minute), nil
}

// parseCategory validates a category flag value against the registry.
func parseCategory(s string) (domain.Category, error) {
	c := domain.Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		names := make([]string, 0, len(domain.Categories()))
		for _, cat := range domain.Categories() {
			names = append(names, string(cat))
		}
		return "", fmt.Errorf("unknown category %q (choose from %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}
