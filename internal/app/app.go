package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/guide"
	"github.com/abhisek/aceguide/internal/router"
	"github.com/abhisek/aceguide/internal/screen"
	"github.com/abhisek/aceguide/internal/screens/reference"
	"github.com/abhisek/aceguide/internal/screens/splash"
	"github.com/abhisek/aceguide/internal/ui/layout"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

// Options configures one run of the interactive reference.
type Options struct {
	Guide    *content.Guide
	View     guide.Options
	Logger   zerolog.Logger
	NoSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the splash screen, which
// hands over to the reference page once loading is done.
func newAppModel(opts Options) AppModel {
	log := opts.Logger.With().Str("view_id", uuid.NewString()).Logger()

	page := func() screen.Screen {
		log.Info().Str("theme", string(opts.View.Theme)).Msg("reference opened")
		return reference.New(opts.Guide, opts.View, log)
	}

	var initial screen.Screen
	if opts.NoSplash {
		initial = page()
	} else {
		initial = splash.New(opts.View.LoadingDelay, page)
	}

	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(m.contentSize())

	case router.ReplaceScreenMsg, router.PushScreenMsg:
		// New screens learn the current size right away.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.resizeActive())

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.resizeActive())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// contentSize is the window size minus the header and footer.
func (m AppModel) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: layout.ContentHeight(m.height)}
}

func (m AppModel) resizeActive() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	return m.router.Update(m.contentSize())
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.frame())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.BackgroundColor = theme.BgDark
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	var footerHints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			footerHints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "Any key", Description: "Skip"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	theme.Use(opts.View.Theme)

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
