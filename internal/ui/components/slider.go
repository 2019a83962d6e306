package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// Slider selects an integer in [Min, Max] with the arrow keys.
type Slider struct {
	Label   string
	Min     int
	Max     int
	Value   int
	Step    int
	BigStep int
	Width   int
	Focused bool
}

// NewSlider creates a slider with a step of 1 and a big step of 10.
func NewSlider(label string, lo, hi, value int) Slider {
	s := Slider{
		Label:   label,
		Min:     lo,
		Max:     hi,
		Step:    1,
		BigStep: 10,
		Width:   30,
	}
	s.Set(value)
	return s
}

// Set moves the slider to v, clamped to its range.
func (s *Slider) Set(v int) {
	s.Value = max(s.Min, min(s.Max, v))
}

// Update handles keyboard input when focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Set(s.Value - s.Step)
	case "right", "l":
		s.Set(s.Value + s.Step)
	case "shift+left", "pgdown":
		s.Set(s.Value - s.BigStep)
	case "shift+right", "pgup":
		s.Set(s.Value + s.BigStep)
	case "home":
		s.Set(s.Min)
	case "end":
		s.Set(s.Max)
	}
	return s, nil
}

// View renders the slider track with its knob and current value.
func (s Slider) View() string {
	label := theme.Hint.Render(s.Label)
	if s.Focused {
		label = theme.Label.Render(s.Label)
	}

	width := max(s.Width, 4)
	pos := 0
	if s.Max > s.Min {
		pos = (s.Value - s.Min) * (width - 1) / (s.Max - s.Min)
	}

	knobColor := theme.TextDim
	if s.Focused {
		knobColor = theme.Highlight
	}
	track := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", pos)) +
		lipgloss.NewStyle().Foreground(knobColor).Bold(true).Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-1-pos))

	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf(" %3d", s.Value))
	return label + "\n" + track + value
}
