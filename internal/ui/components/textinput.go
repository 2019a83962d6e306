package components

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and dashboard styling.
type TextInput struct {
	Model textinput.Model
	Label string

	// Accept filters typed runes. Nil accepts everything.
	Accept func(r rune) bool

	submitted bool
	valid     bool
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetWidth(40)
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti, Label: label}
}

// NewDateInput creates an input for a YYYY-MM-DD date, prefilled with initial.
func NewDateInput(label string, initial time.Time) TextInput {
	t := NewTextInput(label, "YYYY-MM-DD", len(time.DateOnly))
	t.Accept = DateRune
	t.Model.SetWidth(len(time.DateOnly) + 1)
	if !initial.IsZero() {
		t.Model.SetValue(initial.Format(time.DateOnly))
	}
	return t
}

// DateRune accepts the characters of an ISO date.
func DateRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-'
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && t.Accept != nil && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !t.Accept(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.submitted = false
	}
	return t, cmd
}

// View renders the label and input.
func (t TextInput) View() string {
	label := theme.Hint.Render(t.Label)
	if t.Model.Focused() {
		label = theme.Label.Render(t.Label)
	}
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	if t.Label == "" {
		return view
	}
	return label + "\n" + view
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Reset clears the input and its validation mark.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
}

// DateValue parses the input as a YYYY-MM-DD date in the local time zone.
func (t TextInput) DateValue() (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(t.Model.Value()), time.Local)
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
