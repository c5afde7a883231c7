// Package help shows the key binding reference.
package help

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/screen"
	"github.com/abhisek/aceguide/internal/ui/layout"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

// HelpScreen lists key bindings. Esc returns to the previous screen.
type HelpScreen struct {
	bindings []key.Binding
}

var _ screen.Screen = (*HelpScreen)(nil)

// New creates a help screen for the given bindings. Disabled bindings are
// left out.
func New(bindings []key.Binding) *HelpScreen {
	return &HelpScreen{bindings: bindings}
}

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }

func (h *HelpScreen) Title() string { return "Keys" }

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)

	lines := []string{theme.Title.Render("Keyboard"), ""}
	for _, b := range h.bindings {
		if !b.Enabled() {
			continue
		}
		hb := b.Help()
		lines = append(lines, keyStyle.Render(hb.Key)+descStyle.Render(hb.Desc))
	}
	lines = append(lines, "", theme.Hint.Render("Mouse wheel scrolls the page."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
