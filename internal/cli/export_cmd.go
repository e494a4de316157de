package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ogison/daily-planner/internal/config"
	"github.com/ogison/daily-planner/internal/render"
)

func newExportCmd(app *App) *cobra.Command {
	var mode, out, configPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the day as a circular SVG chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(cmd)
			if err != nil {
				return err
			}

			renderMode, err := render.ParseMode(mode)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			day, err := app.Schedules.GetCurrentSchedule(context.Background(), date)
			if err != nil {
				return err
			}

			svg := render.SVG(day.Items, renderMode, cfg)

			if out == "" || out == "-" {
				fmt.Fprint(cmd.OutOrStdout(), svg)
				return nil
			}
			if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s mode)\n", out, renderMode)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(render.ModeItem), "Chart mode (item|category)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "Render config YAML file")

	return cmd
}
