package report

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is used for the report title and section headers.
	PrimaryColor = lipgloss.Color("#7B2CBF")
	// AccentColor highlights headline figures.
	AccentColor = lipgloss.Color("#4ECDC4")
	// SubtleColor is used for rules and table borders.
	SubtleColor = lipgloss.Color("#666666")
)

// Styles contains all styling definitions for the console report.
type Styles struct {
	Title       lipgloss.Style
	Section     lipgloss.Style
	Rule        lipgloss.Style
	Subtitle    lipgloss.Style
	Highlight   lipgloss.Style
	Normal      lipgloss.Style
	Border      lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	NumericCell lipgloss.Style
}

// NewStyles creates styles bound to r, so color output follows the
// capabilities of the writer r was created for.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Width(ruleWidth).
			Align(lipgloss.Center),
		Section: r.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
		Rule: r.NewStyle().
			Foreground(SubtleColor),
		Subtitle: r.NewStyle().
			Bold(true),
		Highlight: r.NewStyle().
			Bold(true).
			Foreground(AccentColor),
		Normal: r.NewStyle(),
		Border: r.NewStyle().
			Foreground(SubtleColor),
		Header: r.NewStyle().
			Bold(true).
			Padding(0, 1),
		Cell: r.NewStyle().
			Padding(0, 1),
		NumericCell: r.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right),
	}
}
