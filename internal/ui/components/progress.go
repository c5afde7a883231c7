package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Percent + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// ProgressTracker renders the reading progress as "n/total" followed by a
// proportional bar.
type ProgressTracker struct {
	Completed int
	Total     int
	Width     int
}

// View renders the tracker.
func (t ProgressTracker) View() string {
	fraction := 0.0
	if t.Total > 0 {
		fraction = float64(min(t.Completed, t.Total)) / float64(t.Total)
	}
	label := fmt.Sprintf("Progress %d/%d", t.Completed, t.Total)
	return NewProgressBar(label, fraction, true, t.Width).View()
}

// ScrollIndicator is a thin bar showing how far the page is scrolled.
type ScrollIndicator struct {
	Offset int
	Max    int
	Width  int
}

// View renders the indicator. A page that fits the viewport shows as full.
func (s ScrollIndicator) View() string {
	fraction := 1.0
	if s.Max > 0 {
		fraction = float64(min(max(s.Offset, 0), s.Max)) / float64(s.Max)
	}
	width := max(s.Width, 1)
	filled := int(float64(width)*fraction + 0.5)
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-filled))
}
