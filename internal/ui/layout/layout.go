// Package layout draws the frame around every screen: a header bar with the
// screen title and the signed-in name, and a footer listing key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// The dashboard refuses to draw below this size.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Chrome is what the frame shows around the active screen.
type Chrome struct {
	Title   string
	User    string
	Variant string
	Hints   []KeyHint
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Render draws the full frame. body is called with the space left between
// header and footer.
func Render(c Chrome, width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return tooSmall(width, height)
	}

	header := bar(headerLine(c, width-4), width)
	footer := bar("  "+hintLine(c.Hints), width)
	room := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))

	content := lipgloss.NewStyle().Width(width).Height(room).Render(body(width, room))
	return strings.Join([]string{header, content, footer}, "\n")
}

func tooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}

func bar(content string, width int) string {
	return theme.Bar.Width(width).Render(content)
}

// headerLine places the app name left, the title centred and the user
// with the variant right, keeping at least one space between them. A title
// too long for the space left over is cut with an ellipsis.
func headerLine(c Chrome, inner int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Growth Mindset")

	var right string
	if c.User != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("● " + c.User)
	}
	if c.Variant != "" {
		right += lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + c.Variant)
	}

	inner = max(inner, 0)
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	title := ansi.Truncate(c.Title, max(0, inner-lw-rw-2), "…")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	cw := lipgloss.Width(center)
	gapL := max(1, (inner-cw)/2-lw)
	gapR := max(1, inner-lw-gapL-cw-rw)
	return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
}

func hintLine(hints []KeyHint) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return strings.Join(parts, "   ")
}
