package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/cli/formatter"
	"github.com/ogison/daily-planner/internal/service"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the day with the default schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}
			if !force {
				return fmt.Errorf("reset discards every item for %s; re-run with --force", date)
			}
			if err := app.Schedules.ReorderItems(context.Background(), service.DefaultDay(date), date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s to the default schedule\n",
				formatter.StyleGreen.Render("Reset"), date)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm discarding the current items")

	return cmd
}
