// Package reference implements the interactive ACE inhibitor reference
// page: collapsible sections, drug cards, the mechanism diagram and the
// reading progress tracker.
package reference

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/guide"
	"github.com/abhisek/aceguide/internal/router"
	"github.com/abhisek/aceguide/internal/screen"
	"github.com/abhisek/aceguide/internal/screens/help"
	"github.com/abhisek/aceguide/internal/ui/components"
	"github.com/abhisek/aceguide/internal/ui/layout"
)

const (
	// Size used until the first WindowSizeMsg arrives.
	defaultWidth  = layout.MinWidth
	defaultHeight = layout.MinHeight - layout.HeaderHeight - layout.FooterHeight

	frameInterval = 30 * time.Millisecond
	revealStep    = 3
	wheelStep     = 3
)

// frameMsg advances the expand animation of newly opened sections. Frames
// from an abandoned tick chain carry a stale gen and are ignored.
type frameMsg struct {
	gen int
}

// Screen is the reference page.
type Screen struct {
	content *content.Guide
	state   guide.State
	keys    keyMap
	log     zerolog.Logger

	width  int
	height int

	doc   document
	focus rowKey

	// lines revealed so far for sections that are still expanding
	reveal    map[content.SectionID]int
	animating bool
	frameGen  int
}

var _ screen.Screen = (*Screen)(nil)

// New creates the reference screen with every section closed.
func New(g *content.Guide, opts guide.Options, log zerolog.Logger) *Screen {
	s := &Screen{
		content: g,
		state:   guide.NewState(g, opts),
		keys:    newKeyMap(opts.ScrollTopButton),
		log:     log,
		width:   defaultWidth,
		height:  defaultHeight,
		reveal:  make(map[content.SectionID]int),
	}
	if len(g.Sections) > 0 {
		s.focus = rowKey{kind: rowSection, section: g.Sections[0].ID}
	}
	s.refresh(false)
	return s
}

// State returns a snapshot of the view state.
func (s *Screen) State() guide.State {
	return s.state
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Exam Prep Reference"
}

// Status reports reading progress for the header.
func (s *Screen) Status() string {
	if !s.state.Options.ProgressTracker {
		return ""
	}
	return fmt.Sprintf("%d/%d read", s.state.Progress.Completed, s.state.Progress.Total)
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	hints := components.KeyHints(s.keys.Activate, s.keys.ExpandAll, s.keys.CollapseAll, s.keys.Help)
	return append([]layout.KeyHint{{Key: "↑↓", Description: "Navigate"}}, hints...)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	follow := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case frameMsg:
		if msg.gen != s.frameGen {
			return s, nil
		}
		cmd = s.advanceReveal()

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			s.scrollBy(-wheelStep)
		case tea.MouseWheelDown:
			s.scrollBy(wheelStep)
		default:
			return s, nil
		}

	case tea.KeyPressMsg:
		var handled bool
		handled, follow, cmd = s.handleKey(msg)
		if !handled {
			return s, nil
		}

	default:
		return s, nil
	}

	s.refresh(follow)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (handled, follow bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.moveFocus(-1)
		return true, true, nil

	case key.Matches(msg, s.keys.Down):
		s.moveFocus(1)
		return true, true, nil

	case key.Matches(msg, s.keys.Left):
		s.moveStage(-1)
		return true, true, nil

	case key.Matches(msg, s.keys.Right):
		s.moveStage(1)
		return true, true, nil

	case key.Matches(msg, s.keys.Activate):
		return true, true, s.activate()

	case key.Matches(msg, s.keys.PageUp):
		s.scrollBy(-s.viewport(s.height))
		return true, false, nil

	case key.Matches(msg, s.keys.PageDown):
		s.scrollBy(s.viewport(s.height))
		return true, false, nil

	case key.Matches(msg, s.keys.Home), key.Matches(msg, s.keys.ScrollTop):
		s.scrollToTop()
		return true, false, nil

	case key.Matches(msg, s.keys.End):
		if n := len(s.doc.rows); n > 0 {
			s.setFocus(s.doc.rows[n-1].rowKey)
		}
		s.dispatch(guide.ScrollTo{Offset: maxScroll(s.doc, s.viewport(s.height)), Max: maxScroll(s.doc, s.viewport(s.height))})
		return true, false, nil

	case key.Matches(msg, s.keys.ExpandAll):
		s.dispatch(guide.ExpandAll{})
		s.finishReveal()
		return true, false, nil

	case key.Matches(msg, s.keys.CollapseAll):
		s.dispatch(guide.CollapseAll{})
		s.finishReveal()
		return true, false, nil

	case key.Matches(msg, s.keys.Help):
		// Frames are routed to the top screen only, so the pending tick
		// would be lost behind the help overlay.
		s.finishReveal()
		h := help.New(s.keys.All())
		return true, false, func() tea.Msg {
			return router.PushScreenMsg{Screen: h}
		}
	}
	return false, false, nil
}

// activate toggles whatever the focused row controls.
func (s *Screen) activate() tea.Cmd {
	switch s.focus.kind {
	case rowSection:
		wasOpen := s.state.IsOpen(s.focus.section)
		s.dispatch(guide.ToggleSection{ID: s.focus.section})
		if wasOpen {
			delete(s.reveal, s.focus.section)
			return nil
		}
		s.reveal[s.focus.section] = 0
		return s.startAnimation()

	case rowCard:
		s.dispatch(guide.ToggleCard{Name: s.focus.drug})

	case rowTop:
		s.scrollToTop()
	}
	return nil
}

func (s *Screen) scrollToTop() {
	if len(s.doc.rows) > 0 {
		s.setFocus(s.doc.rows[0].rowKey)
	}
	s.dispatch(guide.ScrollTo{Offset: 0, Max: maxScroll(s.doc, s.viewport(s.height))})
}

func (s *Screen) moveFocus(delta int) {
	i := s.doc.index(s.focus)
	if i < 0 {
		return
	}
	j := min(max(i+delta, 0), len(s.doc.rows)-1)
	s.setFocus(s.doc.rows[j].rowKey)
}

// moveStage walks along the diagram pipeline. It does nothing unless a
// stage is focused.
func (s *Screen) moveStage(delta int) {
	if s.focus.kind != rowStage {
		return
	}
	j := s.doc.index(s.focus) + delta
	if j < 0 || j >= len(s.doc.rows) || s.doc.rows[j].kind != rowStage {
		return
	}
	s.setFocus(s.doc.rows[j].rowKey)
}

// setFocus moves keyboard focus. Focusing a diagram stage hovers it and
// moving away leaves it.
func (s *Screen) setFocus(k rowKey) {
	prev := s.focus
	if prev == k {
		return
	}
	s.focus = k
	if prev.kind == rowStage {
		s.dispatch(guide.LeaveStage{ID: prev.stage})
	}
	if k.kind == rowStage {
		s.dispatch(guide.HoverStage{ID: k.stage})
	}
}

func (s *Screen) scrollBy(delta int) {
	s.dispatch(guide.ScrollTo{
		Offset: s.state.ScrollOffset + delta,
		Max:    maxScroll(s.doc, s.viewport(s.height)),
	})
}

func (s *Screen) startAnimation() tea.Cmd {
	if s.animating {
		return nil
	}
	s.animating = true
	gen := s.frameGen
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// finishReveal fully expands every animating section and abandons the
// in-flight tick.
func (s *Screen) finishReveal() {
	clear(s.reveal)
	s.animating = false
	s.frameGen++
}

func (s *Screen) advanceReveal() tea.Cmd {
	s.animating = false
	for id, n := range s.reveal {
		n += revealStep
		if full, ok := s.doc.full[id]; !ok || n >= full {
			delete(s.reveal, id)
			continue
		}
		s.reveal[id] = n
	}
	if len(s.reveal) == 0 {
		return nil
	}
	return s.startAnimation()
}

// refresh re-lays out the page, repairs focus, clamps the scroll offset,
// optionally scrolls the focused row into view, and reports section
// visibility.
func (s *Screen) refresh(follow bool) {
	s.doc = s.build(s.width)

	if s.doc.index(s.focus) < 0 {
		s.repairFocus()
		s.doc = s.build(s.width)
	}

	vp := s.viewport(s.height)
	limit := maxScroll(s.doc, vp)
	s.dispatch(guide.ScrollTo{Offset: s.state.ScrollOffset, Max: limit})

	if follow {
		if i := s.doc.index(s.focus); i >= 0 {
			r := s.doc.rows[i]
			off := s.state.ScrollOffset
			if r.line < off {
				off = r.line
			} else if r.line+r.height > off+vp {
				off = r.line + r.height - vp
			}
			s.dispatch(guide.ScrollTo{Offset: off, Max: limit})
		}
	}

	if s.observe(vp) {
		s.doc = s.build(s.width)
	}
}

// repairFocus runs when the focused row disappeared, e.g. its section was
// collapsed. Focus falls back to the owning section header.
func (s *Screen) repairFocus() {
	lost := s.focus
	if lost.kind == rowStage {
		s.dispatch(guide.LeaveStage{ID: lost.stage})
	}
	header := rowKey{kind: rowSection, section: lost.section}
	if lost.section != "" && s.doc.index(header) >= 0 {
		s.focus = header
		return
	}
	if len(s.doc.rows) > 0 {
		s.focus = s.doc.rows[0].rowKey
	}
}

// observe measures every fully expanded section body against the viewport.
// It reports whether any section completed.
func (s *Screen) observe(viewport int) bool {
	changed := false
	for _, sec := range s.state.Sections {
		if !sec.Open || sec.Completed {
			continue
		}
		if _, animating := s.reveal[sec.ID]; animating {
			continue
		}
		body, ok := s.doc.bodies[sec.ID]
		if !ok {
			continue
		}
		ratio := guide.VisibleRatio(body.start, body.end, s.state.ScrollOffset, viewport)
		if s.dispatch(guide.SectionVisible{ID: sec.ID, Ratio: ratio}) {
			changed = true
		}
	}
	return changed
}

// dispatch runs the reducer and logs the resulting events. It reports
// whether any event was produced.
func (s *Screen) dispatch(a guide.Action) bool {
	next, events := guide.Reduce(s.state, a)
	s.state = next
	for _, ev := range events {
		s.logEvent(ev)
	}
	return len(events) > 0
}

func (s *Screen) logEvent(ev guide.Event) {
	switch ev := ev.(type) {
	case guide.SectionToggled:
		s.log.Debug().Str("section", string(ev.ID)).Bool("open", ev.Open).Msg("section toggled")
	case guide.SectionCompleted:
		s.log.Debug().
			Str("section", string(ev.ID)).
			Int("completed", ev.Completed).
			Int("total", ev.Total).
			Msg("section completed")
	case guide.CardToggled:
		s.log.Debug().Str("drug", ev.Name).Bool("expanded", ev.Expanded).Msg("card toggled")
	case guide.CaptionChanged:
		s.log.Debug().Str("stage", string(ev.Stage)).Msg("caption changed")
	}
}

func (s *Screen) View(width, height int) string {
	doc := s.doc
	if width != s.width {
		doc = s.build(width)
	}

	vp := s.viewport(height)
	off := min(s.state.ScrollOffset, maxScroll(doc, vp))

	var out []string
	if s.state.Options.ScrollIndicator {
		out = append(out, components.ScrollIndicator{
			Offset: off,
			Max:    maxScroll(doc, vp),
			Width:  width,
		}.View())
	}
	if s.state.Options.ProgressTracker {
		out = append(out, components.ProgressTracker{
			Completed: s.state.Progress.Completed,
			Total:     s.state.Progress.Total,
			Width:     width,
		}.View())
	}
	if len(out) > 0 {
		out = append(out, "")
	}

	end := min(off+vp, len(doc.lines))
	out = append(out, doc.lines[off:end]...)
	return strings.Join(out, "\n")
}
