package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/pipeline"
)

// newExportCmd creates the export command: template JSON in, presentation
// file out.
func newExportCmd() *cobra.Command {
	var (
		templatePath string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a brand template to a PowerPoint file",
		Long: `Export renders every enabled layout of a template into a .pptx with
editable masters, shapes, and native charts. Without --template the
hard-coded default template is exported.`,
		Example: `  deckforge export -o deck.pptx
  deckforge export --template brand.json -o brand.pptx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			state, err := loadState(templatePath)
			if err != nil {
				return err
			}

			runner := newRunner(logger)
			defer runner.Close()

			spin := newSpinner(cmd.Context(), "rendering presentation")
			spin.Start()
			result, err := runner.Execute(cmd.Context(), state, pipeline.Options{
				Formats: []string{pipeline.FormatPPTX},
			})
			if err != nil {
				spin.StopWithError("export failed")
				return err
			}
			spin.Stop()

			if output == "" {
				output = sanitizeName(state.Name) + ".pptx"
			}
			if err := writeOutput(output, result.Artifacts[pipeline.FormatPPTX]); err != nil {
				return err
			}

			printSuccess("exported %s", state.Name)
			printFile(output)
			printKeyValue("slides", fmt.Sprintf("%d", result.Stats.SlideCount))
			printKeyValue("size", fmt.Sprintf("%.1f KB", float64(len(result.Artifacts[pipeline.FormatPPTX]))/1024))
			for _, w := range result.Warnings {
				printWarning("%v", w)
			}
			prog.done(fmt.Sprintf("Exported %d slides", result.Stats.SlideCount))
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template state JSON file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <template name>.pptx)")
	return cmd
}

// sanitizeName turns a template name into a usable file stem.
func sanitizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '-'
		}
		return -1
	}, s)
	s = strings.Trim(s, "-")
	if s == "" {
		return "deck"
	}
	return s
}
