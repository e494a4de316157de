package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/cli/formatter"
	"github.com/ogison/daily-planner/internal/domain"
)

func newAddCmd(app *App) *cobra.Command {
	var title, start, end, category, notes, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the day",
		Long:  "Add an item to the day. Without --title an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}

			var draft domain.ItemDraft
			if cmd.Flags().Changed("title") {
				startMin, err := parseClock(start)
				if err != nil {
					return err
				}
				endMin, err := parseClock(end)
				if err != nil {
					return err
				}
				cat, err := parseCategory(category)
				if err != nil {
					return err
				}
				draft = domain.ItemDraft{
					Title:    title,
					StartMin: startMin,
					EndMin:   endMin,
					Category: cat,
					Notes:    notes,
					Color:    color,
				}
				if err := domain.ValidateDraft(draft); err != nil {
					return err
				}
			} else {
				values := itemFormValues{Category: string(domain.CategoryOther)}
				if err := itemForm(&values).Run(); err != nil {
					return err
				}
				draft, err = draftFromValues(values)
				if err != nil {
					return err
				}
			}

			item, err := app.Schedules.AddItem(context.Background(), draft, date)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				formatter.StyleGreen.Render("Added"),
				formatter.TimeRange(item), item.Title, formatter.CategoryBadge(item.Category))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, up to 24:00)")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryOther), "Category")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&color, "color", "", "Hex color override (default from category)")
	cmd.MarkFlagsRequiredTogether("title", "start", "end")

	return cmd
}
