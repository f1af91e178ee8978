package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/churnlens/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗  ██╗██╗   ██╗██████╗ ███╗   ██╗██╗     ███████╗███╗   ██╗███████╗
 ██╔════╝██║  ██║██║   ██║██╔══██╗████╗  ██║██║     ██╔════╝████╗  ██║██╔════╝
 ██║     ███████║██║   ██║██████╔╝██╔██╗ ██║██║     █████╗  ██╔██╗ ██║███████╗
 ██║     ██╔══██║██║   ██║██╔══██╗██║╚██╗██║██║     ██╔══╝  ██║╚██╗██║╚════██║
 ╚██████╗██║  ██║╚██████╔╝██║  ██║██║ ╚████║███████╗███████╗██║ ╚████║███████║
  ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝`

// bannerWidth is the column count of bannerArt.
const bannerWidth = 78

const bannerCompact = "C H U R N L E N S"

// RenderBanner returns the CHURNLENS banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
