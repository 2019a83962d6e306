// Package screen defines what the router stacks and the session
// dependencies every dashboard page receives.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindset/internal/ui/layout"
)

// Screen is one page of the dashboard. View draws only the area between the
// header and footer; Title labels the header while the page is on top.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider is implemented by pages whose footer differs from the
// default Enter/Esc hints, typically forms with their own focus ring.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
