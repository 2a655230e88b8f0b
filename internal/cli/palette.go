package cli

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/color"
)

// newPaletteCmd creates the palette command, which generates a harmony
// palette and prints it as terminal swatches.
func newPaletteCmd() *cobra.Command {
	var (
		harmony string
		mood    string
		seed    string
		count   int
		copyOut bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a brand color palette",
		Long: `Palette derives a five-role brand palette (primary, secondary, neutral,
background, accent) from a color-harmony rule. Text roles are repaired to
the WCAG AA contrast threshold against the generated background.`,
		Example: `  deckforge palette --harmony triadic --mood warm
  deckforge palette --harmony monochromatic --seed "#3D5A80"
  deckforge palette --harmony analogous --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := color.Options{
				Harmony: color.Harmony(harmony),
				Mood:    color.Mood(mood),
			}

			if count < 1 {
				count = 1
			}
			for i := 0; i < count; i++ {
				var (
					p   color.Palette
					err error
				)
				if seed != "" {
					p, err = color.GenerateFromSeed(seed, opts)
				} else {
					p, err = color.Generate(opts)
				}
				if err != nil {
					return err
				}

				if asJSON {
					data, err := json.MarshalIndent(p, "", "  ")
					if err != nil {
						return err
					}
					fmt.Println(string(data))
				} else {
					fmt.Print(renderSwatches(p))
					fmt.Print(contrastReport(p))
					if i < count-1 {
						fmt.Println()
					}
				}

				if copyOut && i == 0 {
					data, err := json.Marshal(p)
					if err != nil {
						return err
					}
					if err := clipboard.WriteAll(string(data)); err != nil {
						printWarning("clipboard unavailable: %v", err)
					} else {
						printSuccess("palette copied to clipboard")
					}
				}

				// Seeded generation is deterministic; repeating it would
				// print the same palette.
				if seed != "" {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&harmony, "harmony", string(color.HarmonyComplementary), "harmony rule: complementary, analogous, triadic, splitComplementary, monochromatic")
	cmd.Flags().StringVar(&mood, "mood", "", "hue temperature band: warm, cool, neutral")
	cmd.Flags().StringVar(&seed, "seed", "", "derive hues from this #RRGGBB seed color")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of palettes to generate")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the first palette to the clipboard as JSON")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print palettes as JSON instead of swatches")
	return cmd
}
