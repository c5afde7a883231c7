package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

// DrugCard renders one catalog entry. Collapsed cards show the name and a
// summary line; expanded cards add the four detail fields.
type DrugCard struct {
	Drug       content.DrugEntry
	Expanded   bool
	Expandable bool
	Focused    bool
	Width      int
}

// View renders the card.
func (c DrugCard) View() string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Drug.Name)
	if c.Expandable {
		marker := "+"
		if c.Expanded {
			marker = "−"
		}
		name = lipgloss.NewStyle().Foreground(theme.TextDim).Render(marker+" ") + name
	}

	lines := []string{
		name,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(c.Drug.Summary()),
	}

	if c.Expanded {
		label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		value := lipgloss.NewStyle().Foreground(theme.Text)
		for _, f := range c.Drug.Fields() {
			lines = append(lines, label.Render(f.Label+": ")+value.Render(f.Value))
		}
	}

	border := theme.Border
	if c.Focused {
		border = theme.Primary
	}

	return lipgloss.NewStyle().
		Width(c.Width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
