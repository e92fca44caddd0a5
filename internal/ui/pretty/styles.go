// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Event components
	EnterMark lipgloss.Style
	ExitMark  lipgloss.Style
	TokenKind lipgloss.Style
	Location  lipgloss.Style
	Content   lipgloss.Style
	LinkArrow lipgloss.Style
	SpanText  lipgloss.Style

	// Outcome styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		EnterMark: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ExitMark:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		TokenKind: lipgloss.NewStyle().Bold(true),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Content:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true),
		LinkArrow: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		SpanText:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		EnterMark: plain,
		ExitMark:  plain,
		TokenKind: plain,
		Location:  plain,
		Content:   plain,
		LinkArrow: plain,
		SpanText:  plain,
		Success:   plain,
		Failure:   plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
