package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/cli/formatter"
)

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ITEM",
		Aliases: []string{"remove"},
		Short:   "Remove an item from the day",
		Args:    cobra.ExactArgs(1),
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
			if err := app.Schedules.DeleteItem(ctx, id, date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s item %s\n", formatter.StyleGreen.Render("Removed"), id)
			return nil
		},
	}
}
