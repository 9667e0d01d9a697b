package cli

import (
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/template"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with the fixed project templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(),
		newTemplateShowCmd(),
		newTemplateApplyCmd(app),
	)

	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, t := range template.List() {
				rows = append(rows, []string{t.ID, t.Name, t.Category})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "CATEGORY"}, rows))
			return nil
		},
	}
}

func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show a template's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Get(args[0])
			if err != nil {
				return err
			}
			preview, err := template.Build(tmpl.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", formatter.Header(tmpl.Name), formatter.Dim("("+tmpl.Category+")"))
			fmt.Println(tmpl.Description)
			fmt.Printf("\nStages: %d, links per stage: %d\n",
				len(preview.Stages), len(preview.Stages[0].Links))
			fmt.Println("\nFeatures:")
			for _, f := range tmpl.Features {
				fmt.Printf("  - %s\n", f)
			}
			return nil
		},
	}
}

func newTemplateApplyCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "apply <template-id>",
		Short: "Replace the current project with one built from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("applying a template replaces the current project; confirm with --yes")
			}

			project, err := template.Build(args[0])
			if err != nil {
				return err
			}
			if _, err := app.Projects.LoadProject(cmd.Context(), project); err != nil {
				return err
			}
			fmt.Printf("Applied template %s (%d stages)\n", args[0], len(project.Stages))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing the current project")
	return cmd
}
