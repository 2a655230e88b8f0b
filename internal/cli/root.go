package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/buildinfo"
)

// Execute runs the deckforge CLI and returns an error if any command fails.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "deckforge",
		Short:        "DeckForge turns brand templates into slide decks",
		Long:         `DeckForge compiles a brand template (colors, typography, style family, mood) into vector previews and fully editable PowerPoint presentations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newPaletteCmd())
	root.AddCommand(newStylesCmd())

	return root.ExecuteContext(ctx)
}
