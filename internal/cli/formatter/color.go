package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ogison/daily-planner/internal/domain"
)

// Base palette for chrome around the schedule; item colors come from the
// category registry itself.
var (
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorGreen  = lipgloss.Color("#b8bb26")
	ColorErr    = lipgloss.Color("#fb4934")
)

var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleErr    = lipgloss.NewStyle().Foreground(ColorErr)
)

// CategoryStyle returns a lipgloss style in the category's registry color.
func CategoryStyle(c domain.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.DefaultColor()))
}

// CategoryBadge renders a colored dot plus the category label.
func CategoryBadge(c domain.Category) string {
	return CategoryStyle(c).Render("●") + " " + c.Label()
}

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}
