package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantry/internal/cli/formatter"
	"github.com/alexanderramin/gantry/internal/domain"
	"github.com/alexanderramin/gantry/internal/service"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
		newItemStatusCmd(app),
		newItemBatchStatusCmd(app),
		newItemSearchCmd(app),
		newItemCopyCmd(app),
		newItemMoveCmd(app),
	)

	return cmd
}

// resolveItemTarget resolves "<stage> <link>" arguments to concrete IDs.
func resolveItemTarget(cmd *cobra.Command, app *App, stageArg, linkArg string) (string, string, error) {
	stage, err := resolveStage(cmd.Context(), app, stageArg)
	if err != nil {
		return "", "", err
	}
	link, err := resolveLink(stage, linkArg)
	if err != nil {
		return "", "", err
	}
	return stage.ID, link.ID, nil
}

func newItemAddCmd(app *App) *cobra.Command {
	var description, notes, start, end, status, priority string
	var participants []string

	cmd := &cobra.Command{
		Use:   "add <stage> <link>",
		Short: "Add a work item to a link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stageID, linkID, err := resolveItemTarget(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}

			data := domain.Item{
				Description:  description,
				Participants: participants,
				Status:       domain.ItemStatus(status),
				Priority:     domain.ItemPriority(priority),
				StartDate:    start,
				EndDate:      end,
				Notes:        notes,
			}
			if result := app.Items.ValidateItem(data); !result.IsValid {
				return fmt.Errorf("invalid item: %s", strings.Join(result.Errors, "; "))
			}

			item, err := app.Items.AddItem(cmd.Context(), stageID, linkID, data)
			if err != nil {
				return err
			}
			fmt.Printf("Added item %s (%s)\n", item.Description, item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "item description")
	cmd.Flags().StringSliceVar(&participants, "participants", nil, "participant names (comma-separated)")
	cmd.Flags().StringVar(&status, "status", "", "status (todo, in-progress, done)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high)")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")
	return cmd
}

// parseStatusFilter checks a --status flag value against the allowed enum.
func parseStatusFilter(value string) (domain.ItemStatus, error) {
	status := domain.ItemStatus(value)
	if !domain.ValidItemStatuses[status] {
		return "", fmt.Errorf("%w: %q", service.ErrInvalidStatus, value)
	}
	return status, nil
}

// parsePriorityFilter checks a --priority flag value against the allowed enum.
func parsePriorityFilter(value string) (domain.ItemPriority, error) {
	priority := domain.ItemPriority(value)
	if !domain.ValidItemPriorities[priority] {
		return "", fmt.Errorf("%w: %q", service.ErrInvalidPriority, value)
	}
	return priority, nil
}

func itemRows(items []*domain.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			truncate(it.ID, 24),
			truncate(it.Description, 40),
			formatter.StatusLabel(it.Status),
			formatter.PriorityLabel(it.Priority),
			strings.Join(it.Participants, ", "),
		})
	}
	return rows
}

var itemTableHeaders = []string{"ID", "DESCRIPTION", "STATUS", "PRIORITY", "PARTICIPANTS"}

func newItemListCmd(app *App) *cobra.Command {
	var stageArg, linkArg, status, priority string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List work items, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var items []*domain.Item
			switch {
			case linkArg != "":
				if stageArg == "" {
					return fmt.Errorf("--link requires --stage")
				}
				stageID, linkID, err := resolveItemTarget(cmd, app, stageArg, linkArg)
				if err != nil {
					return err
				}
				items = app.Items.ItemsByLink(ctx, stageID, linkID)
			case stageArg != "":
				stage, err := resolveStage(ctx, app, stageArg)
				if err != nil {
					return err
				}
				items = app.Items.ItemsByStage(ctx, stage.ID)
			case status != "":
				filter, err := parseStatusFilter(status)
				if err != nil {
					return err
				}
				items = app.Items.ItemsByStatus(ctx, filter)
			case priority != "":
				filter, err := parsePriorityFilter(priority)
				if err != nil {
					return err
				}
				items = app.Items.ItemsByPriority(ctx, filter)
			default:
				items = app.Items.AllItems(ctx)
			}

			fmt.Print(formatter.RenderTable(itemTableHeaders, itemRows(items)))
			return nil
		},
	}

	cmd.Flags().StringVar(&stageArg, "stage", "", "restrict to one stage")
	cmd.Flags().StringVar(&linkArg, "link", "", "restrict to one link (requires --stage)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority")
	return cmd
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var description, notes, start, end, status, priority string
	var participants []string

	cmd := &cobra.Command{
		Use:   "update <stage> <link> <item-id>",
		Short: "Update a work item's fields",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stageID, linkID, err := resolveItemTarget(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}

			current := app.Items.GetItem(ctx, stageID, linkID, args[2])
			if current == nil {
				return fmt.Errorf("item not found: %q", args[2])
			}

			updated := *current.Clone()
			if description != "" {
				updated.Description = description
			}
			if participants != nil {
				updated.Participants = participants
			}
			if status != "" {
				updated.Status = domain.ItemStatus(status)
			}
			if priority != "" {
				updated.Priority = domain.ItemPriority(priority)
			}
			if start != "" {
				updated.StartDate = start
			}
			if end != "" {
				updated.EndDate = end
			}
			if notes != "" {
				updated.Notes = notes
			}

			if result := app.Items.ValidateItem(updated); !result.IsValid {
				return fmt.Errorf("invalid item: %s", strings.Join(result.Errors, "; "))
			}
			if _, err := app.Items.UpdateItem(ctx, stageID, linkID, updated); err != nil {
				return err
			}
			fmt.Printf("Updated item %s\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "new description")
	cmd.Flags().StringSliceVar(&participants, "participants", nil, "replacement participant list")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority")
	cmd.Flags().StringVar(&start, "start", "", "new start date")
	cmd.Flags().StringVar(&end, "end", "", "new end date")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <stage> <link> <item-id>",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stageID, linkID, err := resolveItemTarget(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Items.DeleteItem(cmd.Context(), stageID, linkID, args[2]); err != nil {
				return err
			}
			fmt.Printf("Deleted item %s\n", args[2])
			return nil
		},
	}
}

func newItemStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <stage> <link> <item-id> <status>",
		Short: "Set a work item's status",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			stageID, linkID, err := resolveItemTarget(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}
			item, err := app.Items.UpdateItemStatus(cmd.Context(),
				stageID, linkID, args[2], domain.ItemStatus(args[3]))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StatusLabel(item.Status), item.Description)
			return nil
		},
	}
}

func newItemBatchStatusCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "batch-status <stage>/<link>/<item-id>...",
		Short: "Set the status of several items at once",
		Long: "Applies the status per item; an item that fails to resolve is skipped\n" +
			"and the rest of the batch still runs.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := make([]service.ItemRef, 0, len(args))
			for _, arg := range args {
				parts := strings.SplitN(arg, "/", 3)
				if len(parts) != 3 {
					return fmt.Errorf("invalid item reference %q (expected stage-id/link-id/item-id)", arg)
				}
				refs = append(refs, service.ItemRef{StageID: parts[0], LinkID: parts[1], ItemID: parts[2]})
			}

			updated, err := app.Items.BatchUpdateItemStatus(cmd.Context(), refs, domain.ItemStatus(status))
			if err != nil {
				return err
			}
			fmt.Printf("Updated %d of %d item(s)\n", len(updated), len(refs))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "target status (todo, in-progress, done)")
	return cmd
}

func newItemSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search items by description, participant, or notes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) > 0 {
				keyword = args[0]
			}
			items := app.Items.SearchItems(cmd.Context(), keyword)
			fmt.Print(formatter.RenderTable(itemTableHeaders, itemRows(items)))
			return nil
		},
	}
}

func newItemCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <stage> <link> <item-id> <target-stage> <target-link>",
		Short: "Copy an item into another link under a fresh identifier",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcStageID, srcLinkID, err := resolveItemTarget(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}
			dstStageID, dstLinkID, err := resolveItemTarget(cmd, app, args[3], args[4])
			if err != nil {
				return err
			}
			item, err := app.Items.CopyItem(cmd.Context(),
				srcStageID, srcLinkID, args[2], dstStageID, dstLinkID)
			if err != nil {
				return err
			}
			fmt.Printf("Copied item as %s\n", item.ID)
			return nil
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <stage> <link> <item-id> <target-stage> <target-link>",
		Short: "Move an item into another link",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcStageID, srcLinkID, err := resolveItemTarget(cmd, app, args[0], args[1])
			if err != nil {
				return err
			}
			dstStageID, dstLinkID, err := resolveItemTarget(cmd, app, args[3], args[4])
			if err != nil {
				return err
			}
			item, err := app.Items.MoveItem(cmd.Context(),
				srcStageID, srcLinkID, args[2], dstStageID, dstLinkID)
			if err != nil {
				return err
			}
			fmt.Printf("Moved item as %s\n", item.ID)
			return nil
		},
	}
}
