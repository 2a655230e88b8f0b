package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deckforge/deckforge/pkg/color"
)

// Terminal color palette.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// renderSwatches renders the palette as colored blocks with role labels and
// hex values, one role per line. lipgloss accepts hex strings directly, so
// the brand colors display in their true values on truecolor terminals.
func renderSwatches(p color.Palette) string {
	var b strings.Builder
	label := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	for _, role := range color.Roles {
		hex := p.Get(role)
		block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("        ")
		b.WriteString(label.Render(string(role)))
		b.WriteString(block)
		b.WriteString("  " + StyleValue.Render(hex))
		b.WriteString("\n")
	}
	return b.String()
}

// contrastReport summarizes each text role's contrast against the
// background, flagging roles below the AA text threshold.
func contrastReport(p color.Palette) string {
	var b strings.Builder
	for _, role := range []color.Role{color.RolePrimary, color.RoleSecondary, color.RoleNeutral, color.RoleAccent} {
		r, err := color.ContrastRatio(p.Get(role), p.Background)
		if err != nil {
			continue
		}
		mark := styleIconSuccess.Render(iconSuccess)
		threshold := 4.5
		if role == color.RoleAccent {
			threshold = 3.0
		}
		if r < threshold {
			mark = styleIconWarning.Render(iconWarning)
		}
		b.WriteString(fmt.Sprintf("  %s %-10s %.2f:1\n", mark, role, r))
	}
	return b.String()
}
