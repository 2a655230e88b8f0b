package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/layout"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

// newPreviewCmd creates the preview command: one layout rendered to a
// vector or raster file.
func newPreviewCmd() *cobra.Command {
	var (
		templatePath string
		layoutType   string
		format       string
		output       string
		width        float64
		showRegions  bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render one layout of a template to SVG, PNG, or scene JSON",
		Example: `  deckforge preview --layout barChart -o chart.svg
  deckforge preview --template brand.json --layout title --format png -o title.png
  deckforge preview --layout comparison --regions -o regions.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			state, err := loadState(templatePath)
			if err != nil {
				return err
			}
			if err := pipeline.ValidateFormat(format); err != nil {
				return err
			}

			runner := newRunner(logger)
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), state, pipeline.Options{
				LayoutType:  layout.Type(layoutType),
				Width:       width,
				ShowRegions: showRegions,
				Formats:     []string{format},
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("%s-%s.%s", sanitizeName(state.Name), layoutType, format)
			}
			if err := writeOutput(output, result.Artifacts[format]); err != nil {
				return err
			}

			cachedNote := ""
			if result.CacheInfo.Hits[format] {
				cachedNote = " (cached)"
			}
			printSuccess("rendered %s layout%s", layoutType, cachedNote)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "template state JSON file")
	cmd.Flags().StringVarP(&layoutType, "layout", "l", string(pipeline.DefaultLayoutType), "layout type to render")
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatSVG, "output format: svg, png, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path")
	cmd.Flags().Float64VarP(&width, "width", "w", pipeline.DefaultWidth, "preview width in pixels")
	cmd.Flags().BoolVar(&showRegions, "regions", false, "draw labeled region boxes instead of content")
	return cmd
}
