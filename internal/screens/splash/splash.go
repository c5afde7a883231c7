package splash

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/router"
	"github.com/abhisek/aceguide/internal/screen"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// SplashScreen shows a loading indicator for a fixed delay, then replaces
// itself with the screen produced by next.
type SplashScreen struct {
	next         func() screen.Screen
	delay        time.Duration
	elapsed      time.Duration
	spinner      spinner.Model
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen. A non-positive delay transitions on the
// first tick.
func New(delay time.Duration, next func() screen.Screen) *SplashScreen {
	return &SplashScreen{
		next:  next,
		delay: delay,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tea.Batch(tick(), s.spinner.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.transitioned {
		return s, nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		s.elapsed += tickInterval
		if s.elapsed >= s.delay {
			return s, s.transition()
		}
		return s, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.transition()
	}

	return s, nil
}

// transition builds the next screen exactly once.
func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SplashScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("ACE Inhibitors · exam prep reference"),
		"",
		s.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading content..."),
		"",
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to skip"),
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
