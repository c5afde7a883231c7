package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

// Diagram renders the mechanism pipeline as a row of stage boxes joined by
// arrows, followed by the current caption.
type Diagram struct {
	Stages  []content.Stage
	Hovered content.StageID
	Caption string
	Width   int
}

// View renders the diagram.
func (d Diagram) View() string {
	if len(d.Stages) == 0 {
		return ""
	}

	arrow := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(1, 1).
		Render("→")

	arrowWidth := lipgloss.Width(arrow)
	boxWidth := (d.Width - arrowWidth*(len(d.Stages)-1)) / len(d.Stages)
	boxWidth = max(boxWidth, 12)

	parts := make([]string, 0, 2*len(d.Stages)-1)
	for i, st := range d.Stages {
		if i > 0 {
			parts = append(parts, arrow)
		}
		parts = append(parts, d.stageBox(st, boxWidth))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	caption := lipgloss.NewStyle().
		Width(d.Width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(d.Caption)

	return row + "\n" + caption
}

func (d Diagram) stageBox(st content.Stage, width int) string {
	border := theme.Border
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if st.ID == d.Hovered {
		border = theme.Accent
		label = label.Foreground(theme.Accent)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(label.Render(st.Label) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(st.Sublabel))
}
