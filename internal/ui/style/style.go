// Package style holds the colour palette and icons of rebuild's terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Arrow   = "→"
	Dot     = "●"
)

// Paint renders s in colour c for out's profile. Ascii profiles return s unchanged.
func Paint(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(out.Color(string(c))).String()
}
