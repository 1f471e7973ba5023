package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, template sets.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for succeeded stages.
	ColorGreen = lipgloss.Color("82")

	// ColorBoldRed is used for failed stages (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, template sets).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (tree connectors, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings and the summary line.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleOK styles succeeded stage names.
	StyleOK = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleFailed styles failed stage names.
	StyleFailed = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatStageLine renders one pipeline stage outcome for the run summary.
func FormatStageLine(stage string, failed bool) string {
	if failed {
		return StyleFailed.Render("✖") + " " + stage
	}
	return StyleOK.Render("✔") + " " + stage
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
