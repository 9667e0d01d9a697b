package cli

import (
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Render the project as a schedule board",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Projects.CurrentProject(cmd.Context())
			fmt.Print(formatter.RenderBoard(p))
			return nil
		},
	}
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate item statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := app.Items.Statistics(cmd.Context())
			fmt.Print(formatter.RenderDashboard(stats))
			return nil
		},
	}
}
