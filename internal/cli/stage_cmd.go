package cli

import (
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/spf13/cobra"
)

func newStageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Manage project stages",
	}

	cmd.AddCommand(
		newStageAddCmd(app),
		newStageListCmd(app),
		newStageUpdateCmd(app),
		newStageRemoveCmd(app),
	)

	return cmd
}

func newStageAddCmd(app *App) *cobra.Command {
	var name, description, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a stage to the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("stage name is required (use --name)")
			}
			stage := app.Projects.AddStage(cmd.Context(), domain.ProjectStage{
				Name:        name,
				Description: description,
				StartDate:   start,
				EndDate:     end,
			})
			fmt.Printf("Added stage %s (%s)\n", stage.Name, stage.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "stage name")
	cmd.Flags().StringVar(&description, "desc", "", "stage description")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func newStageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stages of the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, s := range app.Projects.ProjectStages(cmd.Context()) {
				rows = append(rows, []string{
					truncate(s.ID, 24), s.Name, string(s.Status), s.StartDate, s.EndDate,
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "NAME", "STATUS", "START", "END"}, rows))
			return nil
		},
	}
}

func newStageUpdateCmd(app *App) *cobra.Command {
	var name, description, status, start, end string

	cmd := &cobra.Command{
		Use:   "update <stage>",
		Short: "Update a stage's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stage, err := resolveStage(ctx, app, args[0])
			if err != nil {
				return err
			}

			updated := stage.Clone()
			if name != "" {
				updated.Name = name
			}
			if description != "" {
				updated.Description = description
			}
			if status != "" {
				updated.Status = domain.StageStatus(status)
			}
			if start != "" {
				updated.StartDate = start
			}
			if end != "" {
				updated.EndDate = end
			}

			if !app.Projects.UpdateStage(ctx, updated) {
				return fmt.Errorf("stage not found: %q", args[0])
			}
			fmt.Printf("Updated stage %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "desc", "", "new description")
	cmd.Flags().StringVar(&status, "status", "", "new status (planned, in-progress, completed)")
	cmd.Flags().StringVar(&start, "start", "", "new start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "new end date (YYYY-MM-DD)")
	return cmd
}

func newStageRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <stage>",
		Short: "Remove a stage and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stage, err := resolveStage(ctx, app, args[0])
			if err != nil {
				return err
			}
			app.Projects.RemoveStage(ctx, stage.ID)
			fmt.Printf("Removed stage %s\n", stage.Name)
			return nil
		},
	}
}
