package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/style"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// familyListModel is the bubbletea model for interactive style family
// browsing. The right-hand pane shows the compiled parameters of the
// highlighted family.
type familyListModel struct {
	families []style.Family
	cursor   int
	selected *style.Family
}

func newFamilyListModel() familyListModel {
	return familyListModel{families: style.Families}
}

func (m familyListModel) Init() tea.Cmd {
	return nil
}

func (m familyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.families)-1 {
				m.cursor++
			}
		case "enter":
			f := m.families[m.cursor]
			m.selected = &f
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m familyListModel) View() string {
	var list strings.Builder
	for i, f := range m.families {
		line := "  " + string(f)
		if i == m.cursor {
			line = listSelectedStyle.Render("> " + string(f))
		} else {
			line = listNormalStyle.Render(line)
		}
		list.WriteString(line + "\n")
	}

	detail := describeFamily(m.families[m.cursor])
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(18).Render(list.String()),
		StyleDim.Render(detail))

	return StyleTitle.Render("Style Families") + "\n\n" + panes +
		"\n" + StyleDim.Render("↑/↓ browse · enter select · q quit") + "\n"
}

// describeFamily summarizes a family's compiled parameters.
func describeFamily(f style.Family) string {
	p := style.Compile(f)
	var b strings.Builder
	fmt.Fprintf(&b, "roundness    %.2f\n", p.ElementRoundness)
	fmt.Fprintf(&b, "border       %.2f\n", p.BorderThickness)
	fmt.Fprintf(&b, "shadow       %.1f\n", p.ShadowOffset)
	fmt.Fprintf(&b, "spacing      ×%.2f\n", p.SpacingMultiplier)
	fmt.Fprintf(&b, "charts       %s\n", p.ChartStyle)
	fmt.Fprintf(&b, "labels       %s\n", p.LabelStyle)
	fmt.Fprintf(&b, "markers      %s\n", p.DataPointStyle)
	if p.UseGradients {
		b.WriteString("gradients    yes\n")
	}
	if p.DecorativeElements {
		b.WriteString("decorations  yes\n")
	}
	return b.String()
}

// newStylesCmd creates the styles command: interactive family browser, or a
// plain listing with --list for non-interactive use.
func newStylesCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Browse the style families and their visual parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				for _, f := range style.Families {
					fmt.Println(string(f))
				}
				return nil
			}

			model, err := tea.NewProgram(newFamilyListModel()).Run()
			if err != nil {
				return err
			}
			final, ok := model.(familyListModel)
			if !ok || final.selected == nil {
				return nil
			}
			fmt.Println(StyleTitle.Render(string(*final.selected)))
			fmt.Print(describeFamily(*final.selected))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "list", false, "print family names without the interactive browser")
	return cmd
}
