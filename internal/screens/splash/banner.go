package splash

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/ui/theme"
)

const bannerArt = `
  █████╗  ██████╗███████╗
 ██╔══██╗██╔════╝██╔════╝
 ███████║██║     █████╗
 ██╔══██║██║     ██╔══╝
 ██║  ██║╚██████╗███████╗
 ╚═╝  ╚═╝ ╚═════╝╚══════╝`

const bannerCompact = "A C E"

// RenderBanner returns the ACE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
