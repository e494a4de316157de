package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ogison/daily-planner/internal/cli/formatter"
	"github.com/ogison/daily-planner/internal/domain"
)

// plannerHuhTheme returns a custom huh theme using the existing palette.
func plannerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateClock accepts a HH:MM time of day, including the 24:00 boundary.
func validateClock(s string) error {
	_, err := parseClock(s)
	return err
}

// validateRequired rejects blank input for the named field.
func validateRequired(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// categoryOptions builds huh select options for every registered category.
func categoryOptions() []huh.Option[string] {
	cats := domain.Categories()
	options := make([]huh.Option[string], 0, len(cats))
	for _, c := range cats {
		options = append(options, huh.NewOption(c.Label(), string(c)))
	}
	return options
}

// itemFormValues holds the string state an item form edits in place.
type itemFormValues struct {
	Title    string
	Start    string
	End      string
	Category string
	Notes    string
}

// itemForm builds the interactive add/edit form over v.
func itemForm(v *itemFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Deep Work").
				Value(&v.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Start (HH:MM)").
				Placeholder("09:00").
				Value(&v.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Placeholder("10:00").
				Value(&v.End).
				Validate(validateClock),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&v.Category),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&v.Notes),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)
}

// draftFromValues converts form state into a validated ItemDraft.
func draftFromValues(v itemFormValues) (domain.ItemDraft, error) {
	start, err := parseClock(v.Start)
	if err != nil {
		return domain.ItemDraft{}, err
	}
	end, err := parseClock(v.End)
	if err != nil {
		return domain.ItemDraft{}, err
	}
	cat, err := parseCategory(v.Category)
	if err != nil {
		return domain.ItemDraft{}, err
	}
	draft := domain.ItemDraft{
		Title:    v.Title,
		StartMin: start,
		EndMin:   end,
		Category: cat,
		Notes:    v.Notes,
	}
	return draft, domain.ValidateDraft(draft)
}
