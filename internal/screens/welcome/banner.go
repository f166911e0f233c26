package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ██████╗  ██████╗ ██╗   ██╗████████╗
 ██╔════╝██╔══██╗██╔══██╗██╔═══██╗██║   ██║╚══██╔══╝
 ███████╗██████╔╝██████╔╝██║   ██║██║   ██║   ██║
 ╚════██║██╔═══╝ ██╔══██╗██║   ██║██║   ██║   ██║
 ███████║██║     ██║  ██║╚██████╔╝╚██████╔╝   ██║
 ╚══════╝╚═╝     ╚═╝  ╚═╝ ╚═════╝  ╚═════╝    ╚═╝`

const bannerCompact = "S P R O U T"

// RenderBanner returns the SPROUT banner, or a one-line version for
// terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
