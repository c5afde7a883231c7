package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

// Disclosure is the header row and body frame of a collapsible section.
type Disclosure struct {
	Title     string
	Icon      content.Icon
	Open      bool
	Completed bool
	Focused   bool
	Width     int
}

// Header renders the single clickable row of the section.
func (d Disclosure) Header() string {
	chevron := "▸"
	if d.Open {
		chevron = "▾"
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if d.Focused {
		titleStyle = titleStyle.Foreground(theme.Primary)
	}

	line := lipgloss.NewStyle().Foreground(theme.Secondary).Render(chevron+" "+Glyph(d.Icon)) +
		"  " + titleStyle.Render(d.Title)

	if d.Completed {
		line += "  " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}

	style := lipgloss.NewStyle().Width(d.Width).Padding(0, 1)
	if d.Focused {
		style = style.Background(theme.BgCard)
	}
	return style.Render(line)
}

// Body indents and frames already-rendered section content.
func (d Disclosure) Body(content string) string {
	return lipgloss.NewStyle().
		Width(d.Width).
		PaddingLeft(3).
		PaddingRight(1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		Render(content)
}

// Paragraph wraps plain text to width.
func Paragraph(text string, width int) string {
	return lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(text)
}

// BulletList renders one wrapped bullet per item.
func BulletList(items []string, width int) string {
	bullet := lipgloss.NewStyle().Foreground(theme.Secondary).Render("•")
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(max(width-2, 1))

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, bullet+" ", text.Render(item)))
	}
	return strings.Join(lines, "\n")
}

// Takeaway renders the highlighted key-takeaway line of a section.
func Takeaway(text string, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Key takeaway: ")
	return lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Render(label + text)
}

// Callout renders a titled, coloured box.
func Callout(c content.Callout, width int) string {
	accent := theme.Info
	switch c.Kind {
	case content.CalloutWarning:
		accent = theme.Warning
	case content.CalloutTip:
		accent = theme.Success
	}

	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(c.Title)
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(c.Body)

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(title + "\n" + body)
}
