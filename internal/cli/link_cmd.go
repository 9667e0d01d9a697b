package cli

import (
	"fmt"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage the management threads within a stage",
	}

	cmd.AddCommand(
		newLinkAddCmd(app),
		newLinkListCmd(app),
		newLinkRemoveCmd(app),
	)

	return cmd
}

func newLinkAddCmd(app *App) *cobra.Command {
	var name, owner, color string

	cmd := &cobra.Command{
		Use:   "add <stage>",
		Short: "Add a link to a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stage, err := resolveStage(ctx, app, args[0])
			if err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("link name is required (use --name)")
			}

			link := app.Projects.AddLink(ctx, stage.ID, domain.Link{
				Name:  name,
				Owner: owner,
				Color: color,
			})
			if link == nil {
				return fmt.Errorf("stage not found: %q", args[0])
			}
			fmt.Printf("Added link %s to stage %s (%s)\n", link.Name, stage.Name, link.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "link name")
	cmd.Flags().StringVar(&owner, "owner", "", "responsible owner")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex, default: palette pick)")
	return cmd
}

func newLinkListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <stage>",
		Short: "List the links of a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := resolveStage(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, l := range stage.Links {
				rows = append(rows, []string{
					truncate(l.ID, 24),
					formatter.LinkSwatch(l.Color) + " " + l.Name,
					l.Owner,
					fmt.Sprintf("%d", len(l.Items)),
				})
			}
			fmt.Print(formatter.RenderTable(
				[]string{"ID", "LINK", "OWNER", "ITEMS"}, rows))
			return nil
		},
	}
}

func newLinkRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <stage> <link>",
		Short: "Remove a link and its items from a stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stage, err := resolveStage(ctx, app, args[0])
			if err != nil {
				return err
			}
			link, err := resolveLink(stage, args[1])
			if err != nil {
				return err
			}
			if !app.Projects.RemoveLink(ctx, stage.ID, link.ID) {
				return fmt.Errorf("stage not found: %q", args[0])
			}
			fmt.Printf("Removed link %s from stage %s\n", link.Name, stage.Name)
			return nil
		},
	}
}
