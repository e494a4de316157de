package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/cli/formatter"
)

func newShowCmd(app *App) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the day's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}

			day, err := app.Schedules.GetCurrentSchedule(context.Background(), date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", formatter.StyleHeader.Render(day.Date))
			if summary {
				fmt.Fprint(out, formatter.CategorySummary(day.Items))
				return nil
			}
			fmt.Fprint(out, formatter.ScheduleTable(day.Items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Show per-category totals instead of the item list")

	return cmd
}
