package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all dashboard sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double-border frame, centered within the given
// dimensions. Content taller than the frame is cut at the bottom.
func Frame(content string, width, height int) string {
	inner := height - 2
	if inner > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > inner {
			content = strings.Join(lines[:inner], "\n")
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Section renders a titled card.
func Section(title, content string, cw int) string {
	return Card(theme.Label.Render(title)+"\n"+content, cw)
}

// PanelButton renders a fixed-width bordered button, as used by the home menu.
func PanelButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Highlight).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Highlight).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// Warning renders a validation warning line.
func Warning(msg string) string {
	if msg == "" {
		return ""
	}
	return theme.Warn.Render("⚠ " + msg)
}

// FitBlocks joins a contiguous run of blocks that fits in height lines and
// contains blocks[focus]. Blocks are separated by a blank line. Hidden
// blocks are marked with a dim arrow above or below.
func FitBlocks(blocks []string, focus, height int) string {
	if len(blocks) == 0 {
		return ""
	}
	focus = max(0, min(focus, len(blocks)-1))
	heights := make([]int, len(blocks))
	total := -1
	for i, b := range blocks {
		heights[i] = lipgloss.Height(b)
		total += heights[i] + 1
	}
	if total <= height || height <= 0 {
		return strings.Join(blocks, "\n\n")
	}

	// Reserve two lines for the scroll markers.
	budget := height - 2
	lo, hi := focus, focus+1
	used := heights[focus]
	for {
		grew := false
		if hi < len(blocks) && used+1+heights[hi] <= budget {
			used += 1 + heights[hi]
			hi++
			grew = true
		}
		if lo > 0 && used+1+heights[lo-1] <= budget {
			lo--
			used += 1 + heights[lo]
			grew = true
		}
		if !grew {
			break
		}
	}

	var out []string
	if lo > 0 {
		out = append(out, theme.Hint.Render("▲ more"))
	}
	out = append(out, strings.Join(blocks[lo:hi], "\n\n"))
	if hi < len(blocks) {
		out = append(out, theme.Hint.Render("▼ more"))
	}
	return strings.Join(out, "\n")
}
