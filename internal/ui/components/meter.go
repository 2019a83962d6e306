package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// Meter is a one-line horizontal bar with an optional label column on the
// left and a dim suffix on the right. Bar charts stack one meter per row.
type Meter struct {
	Label string
	// LabelWidth pads or truncates Label so rows line up. Zero uses the
	// label as is.
	LabelWidth int
	Suffix     string
	// Fill styles the filled cells. A style without a background falls back
	// to theme.ProgressFilled.
	Fill lipgloss.Style
}

// Render fills fraction (clamped to 0..1) of whatever width the label and
// suffix leave, never less than four cells.
func (m Meter) Render(fraction float64, width int) string {
	var b strings.Builder

	if m.Label != "" {
		label := m.Label
		if m.LabelWidth > 0 {
			label = truncate(label, m.LabelWidth)
			label += strings.Repeat(" ", max(0, m.LabelWidth-lipgloss.Width(label)))
		}
		b.WriteString(theme.Body.Render(label) + "  ")
	}

	used := lipgloss.Width(b.String())
	if m.Suffix != "" {
		used += lipgloss.Width(m.Suffix) + 2
	}
	cells := max(4, width-used)
	filled := int(float64(cells) * min(max(fraction, 0), 1))

	fill := m.Fill
	if _, unset := fill.GetBackground().(lipgloss.NoColor); unset {
		fill = theme.ProgressFilled
	}
	b.WriteString(fill.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", cells-filled)))

	if m.Suffix != "" {
		b.WriteString(theme.Hint.Render("  " + m.Suffix))
	}
	return b.String()
}

// truncate shortens s to width runes, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	switch {
	case len(r) <= width:
		return s
	case width <= 1:
		return string(r[:max(width, 0)])
	}
	return string(r[:width-1]) + "…"
}
