package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/cli/formatter"
	"github.com/ogison/daily-planner/internal/domain"
)

func newMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ITEM POSITION",
		Short: "Move an item to a new position in the list",
		Long: "Move an item to a new 1-based position. The day is always " +
			"re-sorted by start time, so moving only changes relative order " +
			"between items with equal start times.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, date, args[0])
			if err != nil {
				return err
			}
			pos, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}

			day, err := app.Schedules.GetCurrentSchedule(ctx, date)
			if err != nil {
				return err
			}
			if pos < 1 || pos > len(day.Items) {
				return fmt.Errorf("position %d out of range (day has %d items)", pos, len(day.Items))
			}

			reordered := make([]*domain.ScheduleItem, 0, len(day.Items))
			var moved *domain.ScheduleItem
			for _, it := range day.Items {
				if it.ID == id {
					moved = it
					continue
				}
				reordered = append(reordered, it)
			}
			if moved == nil {
				return fmt.Errorf("item not found: %q", args[0])
			}
			idx := pos - 1
			if idx > len(reordered) {
				idx = len(reordered)
			}
			reordered = append(reordered[:idx], append([]*domain.ScheduleItem{moved}, reordered[idx:]...)...)

			if err := app.Schedules.ReorderItems(ctx, reordered, date); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s to position %d\n",
				formatter.StyleGreen.Render("Moved"), moved.Title, pos)
			return nil
		},
	}
}
