package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ogison/daily-planner/internal/cli/formatter"
	"github.com/ogison/daily-planner/internal/domain"
)

func newEditCmd(app *App) *cobra.Command {
	var title, start, end, category, notes, color string

	cmd := &cobra.Command{
		Use:   "edit ITEM",
		Short: "Edit an item",
		Long:  "Edit an item by position, id, or id prefix. Only changed flags are applied.",
		Args:  cobra.ExactArgs(1),
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

			// Only flags the user actually set become patch fields.
			var patch domain.ItemPatch
			var patchErr error
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if patchErr != nil {
					return
				}
				switch f.Name {
				case "title":
					patch.Title = &title
				case "start":
					startMin, err := parseClock(start)
					if err != nil {
						patchErr = err
						return
					}
					patch.StartMin = &startMin
				case "end":
					endMin, err := parseClock(end)
					if err != nil {
						patchErr = err
						return
					}
					patch.EndMin = &endMin
				case "category":
					cat, err := parseCategory(category)
					if err != nil {
						patchErr = err
						return
					}
					patch.Category = &cat
				case "notes":
					patch.Notes = &notes
				case "color":
					patch.Color = &color
				}
			})
			if patchErr != nil {
				return patchErr
			}

			if err := validatePatchAgainst(ctx, app, date, id, patch); err != nil {
				return err
			}

			if err := app.Schedules.UpdateItem(ctx, id, patch, date); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s item %s\n", formatter.StyleGreen.Render("Updated"), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, up to 24:00)")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&color, "color", "", "Hex color override")

	return cmd
}

// validatePatchAgainst checks the item as it would look after the patch,
// so an edit cannot push a stored item outside the day or invert its span.
func validatePatchAgainst(ctx context.Context, app *App, date, id string, patch domain.ItemPatch) error {
	day, err := app.Schedules.GetCurrentSchedule(ctx, date)
	if err != nil {
		return err
	}
	for _, it := range day.Items {
		if it.ID != id {
			continue
		}
		next := domain.ApplyPatch(*it, patch)
		return domain.ValidateDraft(domain.ItemDraft{
			Title:    next.Title,
			StartMin: next.StartMin,
			EndMin:   next.EndMin,
			Category: next.Category,
		})
	}
	return nil
}
