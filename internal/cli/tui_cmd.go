package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTuiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the day interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newDayModel(app, date), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running day view: %w", err)
			}
			return nil
		},
	}
}
