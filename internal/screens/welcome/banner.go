package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindset/internal/ui/theme"
)

var bannerArt = []string{
	` ███╗   ███╗██╗███╗   ██╗██████╗ ███████╗███████╗████████╗`,
	` ████╗ ████║██║████╗  ██║██╔══██╗██╔════╝██╔════╝╚══██╔══╝`,
	` ██╔████╔██║██║██╔██╗ ██║██║  ██║███████╗█████╗     ██║`,
	` ██║╚██╔╝██║██║██║╚██╗██║██║  ██║╚════██║██╔══╝     ██║`,
	` ██║ ╚═╝ ██║██║██║ ╚████║██████╔╝███████║███████╗   ██║`,
	` ╚═╝     ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝ ╚══════╝╚══════╝   ╚═╝`,
}

// RenderBanner draws the block-letter title, or a spaced-out one-liner when
// the art would not fit in width.
func RenderBanner(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < lipgloss.Width(bannerArt[0]) {
		return title.Render("M I N D S E T")
	}
	return title.Render(lipgloss.JoinVertical(lipgloss.Left, bannerArt...))
}
