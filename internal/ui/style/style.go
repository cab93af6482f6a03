// Package style holds the colours and icons shared by the logger and the reporter.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/platdep/internal/core/domain"
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
	Dot     = "●"
)

// ForOutcome returns the colour an apply outcome is printed in.
func ForOutcome(o domain.Outcome) lipgloss.Color {
	switch o {
	case domain.OutcomeSkipped:
		return Slate
	case domain.OutcomeLinked:
		return Iris
	default:
		return Green
	}
}
