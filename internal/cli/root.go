package cli

import (
	"strings"

	"github.com/alexanderramin/gantry/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Items    service.ItemService
}

// NewRootCmd creates the top-level "gantry" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gantry",
		Short: "Schedule board for hospital construction programmes",
	}

	// Keep flags in declaration order in help output, and accept
	// underscore-separated flag spellings.
	root.PersistentFlags().SortFlags = false
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newProjectCmd(app),
		newStageCmd(app),
		newLinkCmd(app),
		newItemCmd(app),
		newTemplateCmd(app),
		newBoardCmd(app),
		newStatsCmd(app),
	)

	return root
}
