package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// RadioGroup is a single-choice selector. Unlike a quiz prompt it has no
// correct answer; the choice can be changed any number of times.
type RadioGroup struct {
	Prompt  string
	Options []string
	Cursor  int
	Chosen  int
	Focused bool
}

// NewRadioGroup creates a radio group with nothing chosen.
func NewRadioGroup(prompt string, options []string) RadioGroup {
	return RadioGroup{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Update handles keyboard navigation and selection. The returned bool
// reports whether the chosen option changed.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, bool) {
	if !r.Focused {
		return r, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, false
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Cursor < len(r.Options)-1 {
			r.Cursor++
		}
	case "enter", "space", " ":
		if r.Chosen != r.Cursor {
			r.Chosen = r.Cursor
			return r, true
		}
	}
	return r, false
}

// Value returns the chosen option, or "" if nothing is chosen.
func (r RadioGroup) Value() string {
	if r.Chosen < 0 || r.Chosen >= len(r.Options) {
		return ""
	}
	return r.Options[r.Chosen]
}

// Select chooses the option equal to v and moves the cursor to it.
// Unknown values clear the choice.
func (r *RadioGroup) Select(v string) {
	r.Chosen = -1
	for i, opt := range r.Options {
		if opt == v {
			r.Chosen = i
			r.Cursor = i
			return
		}
	}
}

// View renders the prompt and options.
func (r RadioGroup) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if r.Focused {
		promptStyle = promptStyle.Foreground(theme.Primary)
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(r.Prompt))
	b.WriteString("\n")

	for i, opt := range r.Options {
		mark := "( )"
		if i == r.Chosen {
			mark = "(•)"
		}
		prefix := "  "
		if r.Focused && i == r.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, opt)

		switch {
		case r.Focused && i == r.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == r.Chosen:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
