package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

// TextArea wraps bubbles/textarea with a label. Enter inserts a newline, so
// screens move focus away with tab.
type TextArea struct {
	Model textarea.Model
	Label string
}

// NewTextArea creates an unfocused multi-line input.
func NewTextArea(label, placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	return TextArea{Model: ta, Label: label}
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and text area.
func (t TextArea) View() string {
	label := theme.Hint.Render(t.Label)
	if t.Model.Focused() {
		label = theme.Label.Render(t.Label)
	}
	return label + "\n" + t.Model.View()
}

// Focus focuses the text area.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the text area has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text.
func (t *TextArea) SetValue(v string) {
	t.Model.SetValue(v)
}
