package components

import "github.com/abhisek/mindset/internal/ui/theme"

// Button renders a form button. Screens handle the key press themselves
// since every form submits through its own focus ring.
func Button(label string, focused bool) string {
	if focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render("  " + label)
}
