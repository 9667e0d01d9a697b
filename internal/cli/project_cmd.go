package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/interchange"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the current project",
	}

	cmd.AddCommand(
		newProjectShowCmd(app),
		newProjectExportCmd(app),
		newProjectImportCmd(app),
		newProjectValidateCmd(app),
		newProjectResetCmd(app),
	)

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current project summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Projects.CurrentProject(cmd.Context())

			fmt.Printf("%s\n", formatter.Header(p.Name))
			if p.Description != "" {
				fmt.Printf("%s\n", p.Description)
			}
			fmt.Printf("Created %s, updated %s\n\n", p.CreatedAt, p.UpdatedAt)

			rows := make([][]string, 0, len(p.Stages))
			for _, s := range p.Stages {
				itemCount := 0
				for _, l := range s.Links {
					itemCount += len(l.Items)
				}
				rows = append(rows, []string{
					truncate(s.ID, 24),
					s.Name,
					string(s.Status),
					fmt.Sprintf("%d", len(s.Links)),
					fmt.Sprintf("%d", itemCount),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "STAGE", "STATUS", "LINKS", "ITEMS"}, rows))
			return nil
		},
	}
}

func newProjectExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current project to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app.Projects.CurrentProject(ctx)
			data, err := app.Projects.ExportProjectData(ctx)
			if err != nil {
				return err
			}

			if out == "" {
				out = interchange.GenerateFileName("project-data", "json")
			}
			path, err := interchange.WriteProjectData(out, []byte(data))
			if err != nil {
				return err
			}
			fmt.Printf("Exported project to %s (%s)\n",
				path, interchange.FormatFileSize(int64(len(data))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: timestamped name)")
	return cmd
}

func newProjectImportCmd(app *App) *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a project from a JSON file, replacing or merging into the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := interchange.ReadProjectData(args[0])
			if err != nil {
				return err
			}

			decoded, err := interchange.DecodeProject(data)
			if err != nil {
				return err
			}
			if result := interchange.ValidateProjectData(decoded); !result.IsValid {
				fmt.Fprintln(os.Stderr, "Project data is not valid:")
				for _, msg := range result.Errors {
					fmt.Fprintf(os.Stderr, "  - %s\n", msg)
				}
				return fmt.Errorf("import aborted: %d structural defect(s)", len(result.Errors))
			}

			if merge {
				base := app.Projects.CurrentProject(ctx)
				decoded.Normalize()
				merged, err := interchange.MergeProjectData(base, decoded)
				if err != nil {
					return err
				}
				if _, err := app.Projects.LoadProject(ctx, merged); err != nil {
					return err
				}
				fmt.Println("Merged imported data into the current project")
				return nil
			}

			if _, err := app.Projects.LoadProjectData(ctx, data); err != nil {
				return err
			}
			fmt.Println("Imported project, replacing the previous one")
			return nil
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "merge into the current project instead of replacing it")
	return cmd
}

func newProjectValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.json>",
		Short: "Check a project JSON file for structural defects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := interchange.ReadProjectData(args[0])
			if err != nil {
				return err
			}
			decoded, err := interchange.DecodeProject(data)
			if err != nil {
				return err
			}

			result := interchange.ValidateProjectData(decoded)
			if result.IsValid {
				fmt.Println("Project data is valid")
				return nil
			}
			for _, msg := range result.Errors {
				fmt.Printf("  - %s\n", msg)
			}
			return fmt.Errorf("%d structural defect(s) found", len(result.Errors))
		},
	}
}

func newProjectResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the current project and rebuild the default one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			p := app.Projects.ResetProject(cmd.Context())
			fmt.Printf("Reset to default project %s (%d stages)\n",
				strings.TrimSpace(p.Name), len(p.Stages))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
