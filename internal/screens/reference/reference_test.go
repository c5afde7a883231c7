package reference

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/guide"
	"github.com/abhisek/aceguide/internal/router"
)

var (
	keyUp    = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyPgDn  = tea.KeyPressMsg{Code: tea.KeyPgDown}
)

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(opts guide.Options, width, height int) *Screen {
	s := New(content.Default(), opts, zerolog.Nop())
	s.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return s
}

func press(s *Screen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

// settle plays expand animations to the end.
func settle(t *testing.T, s *Screen) {
	t.Helper()
	for i := 0; len(s.reveal) > 0; i++ {
		if i > 200 {
			t.Fatal("expand animation did not finish")
		}
		s.Update(frameMsg{gen: s.frameGen})
	}
}

func TestStartsClosed(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 60)

	st := s.State()
	if st.OpenCount() != 0 {
		t.Errorf("expected no open sections, got %d", st.OpenCount())
	}
	if st.Progress.Completed != 0 {
		t.Errorf("expected 0 completed, got %d", st.Progress.Completed)
	}
	if s.focus != (rowKey{kind: rowSection, section: content.SectionMechanism}) {
		t.Errorf("expected focus on first section, got %+v", s.focus)
	}
	if s.Status() != "0/5 read" {
		t.Errorf("unexpected status %q", s.Status())
	}
}

func TestEnterTogglesFocusedSection(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 60)

	cmd := press(s, keyEnter)
	if !s.State().IsOpen(content.SectionMechanism) {
		t.Fatal("expected mechanism to open")
	}
	if cmd == nil {
		t.Error("opening a section should start the expand animation")
	}

	press(s, keyEnter)
	if s.State().IsOpen(content.SectionMechanism) {
		t.Error("expected mechanism to close on second toggle")
	}
}

func TestVisibleSectionCompletesOnce(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 200)

	press(s, keyEnter)
	settle(t, s)

	if got := s.State().Progress.Completed; got != 1 {
		t.Fatalf("expected 1 completed after reading mechanism, got %d", got)
	}

	press(s, keyEnter, keyEnter)
	settle(t, s)
	if got := s.State().Progress.Completed; got != 1 {
		t.Errorf("re-opening must not count again, got %d", got)
	}
	if !strings.Contains(s.View(100, 200), "✓") {
		t.Error("completed section should show a check mark")
	}
}

func TestOffscreenSectionDoesNotComplete(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 5)

	press(s, keyEnter)
	settle(t, s)
	if got := s.State().Progress.Completed; got != 0 {
		t.Fatalf("section body is below the viewport, got %d completed", got)
	}

	for i := 0; i < 5 && s.State().Progress.Completed == 0; i++ {
		press(s, keyPgDn)
	}
	if got := s.State().Progress.Completed; got != 1 {
		t.Errorf("expected completion after scrolling the body into view, got %d", got)
	}
}

func TestExpandAllCompletesEverythingInView(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 1000)

	press(s, char('e'))
	st := s.State()
	if st.OpenCount() != len(st.Sections) {
		t.Fatalf("expected all sections open, got %d", st.OpenCount())
	}
	if !st.Progress.Done() {
		t.Errorf("expected all sections completed, got %d/%d", st.Progress.Completed, st.Progress.Total)
	}
	if st.Progress.Percent() != 100 {
		t.Errorf("expected 100%%, got %v", st.Progress.Percent())
	}

	press(s, char('c'))
	if s.State().OpenCount() != 0 {
		t.Error("collapse all should close every section")
	}
	if !s.State().Progress.Done() {
		t.Error("collapsing must not undo progress")
	}
}

func TestDiagramFocusHoversStages(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 200)
	g := content.Default()

	press(s, keyEnter)
	settle(t, s)

	view := s.View(100, 200)
	if !strings.Contains(view, g.DefaultCaption) {
		t.Error("expected default caption before hovering")
	}

	press(s, keyDown)
	if s.State().Diagram.Hovered != content.StageAngiotensinI {
		t.Fatalf("expected Angiotensin I hovered, got %q", s.State().Diagram.Hovered)
	}
	if !strings.Contains(s.View(100, 200), "Angiotensin I is the inactive precursor.") {
		t.Error("expected Angiotensin I caption")
	}

	press(s, keyRight)
	if s.State().Diagram.Hovered != content.StageACE {
		t.Fatalf("expected ACE hovered, got %q", s.State().Diagram.Hovered)
	}
	if !strings.Contains(s.View(100, 200), "ACE Inhibitors block this conversion enzyme.") {
		t.Error("expected ACE caption")
	}

	press(s, keyLeft, keyUp)
	if s.State().Diagram.Hovered != "" {
		t.Errorf("leaving the diagram should clear hover, got %q", s.State().Diagram.Hovered)
	}
	if !strings.Contains(s.View(100, 200), g.DefaultCaption) {
		t.Error("expected default caption after leaving")
	}
}

func TestLeftRightIgnoredOutsideDiagram(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 200)
	before := s.focus

	press(s, keyRight, keyLeft)
	if s.focus != before {
		t.Errorf("focus moved from %+v to %+v", before, s.focus)
	}
}

func TestCollapseWhileHoveringClearsHover(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 200)

	press(s, keyEnter)
	settle(t, s)
	press(s, keyDown, char('c'))

	if s.State().Diagram.Hovered != "" {
		t.Errorf("expected hover cleared, got %q", s.State().Diagram.Hovered)
	}
	if s.focus != (rowKey{kind: rowSection, section: content.SectionMechanism}) {
		t.Errorf("expected focus back on the mechanism header, got %+v", s.focus)
	}
}

func TestDrugCardToggle(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 400)

	press(s, keyDown, keyEnter) // open drugs
	settle(t, s)
	press(s, keyDown) // first card

	if s.focus.kind != rowCard || s.focus.drug != "Lisinopril" {
		t.Fatalf("expected focus on Lisinopril, got %+v", s.focus)
	}
	if strings.Contains(s.View(100, 400), "Half-life") {
		t.Fatal("collapsed cards should not show detail fields")
	}

	press(s, keyEnter)
	if !s.State().Cards.IsExpanded("Lisinopril") {
		t.Fatal("expected Lisinopril expanded")
	}
	if got := strings.Count(s.View(100, 400), "Half-life"); got != 1 {
		t.Errorf("expected exactly one expanded card, got %d", got)
	}

	press(s, keyEnter)
	if s.State().Cards.IsExpanded("Lisinopril") {
		t.Error("expected Lisinopril collapsed")
	}
	if d, _ := content.Default().Drug("Lisinopril"); d.HalfLife == "" {
		t.Error("collapsing must not touch the table")
	}
}

func TestCardsStaticWhenNotExpandable(t *testing.T) {
	opts := guide.DefaultOptions()
	opts.ExpandableCards = false
	s := newTestScreen(opts, 100, 400)

	press(s, keyDown, keyEnter)
	settle(t, s)
	press(s, keyDown, keyEnter)

	if s.State().Cards.Count() != 0 {
		t.Error("cards should not expand when the feature is off")
	}
}

func TestScrollClampsToDocument(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 10)
	press(s, char('e'))

	for i := 0; i < 100; i++ {
		press(s, keyPgDn)
	}
	limit := maxScroll(s.doc, s.viewport(10))
	if s.State().ScrollOffset != limit {
		t.Errorf("expected offset clamped to %d, got %d", limit, s.State().ScrollOffset)
	}

	press(s, char('g'))
	if s.State().ScrollOffset != 0 {
		t.Errorf("expected top, got %d", s.State().ScrollOffset)
	}

	s.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if s.State().ScrollOffset != wheelStep {
		t.Errorf("expected wheel to scroll %d lines, got %d", wheelStep, s.State().ScrollOffset)
	}
}

func TestHelpPushesScreen(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 40)

	cmd := press(s, char('?'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg")
	}
}

func TestHelpDuringExpandFinishesReveal(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 200)

	if cmd := press(s, keyEnter); cmd == nil {
		t.Fatal("expected the expand animation to start")
	}
	stale := s.frameGen

	// The pending frame is delivered to help and never comes back.
	press(s, char('?'))
	if len(s.reveal) != 0 {
		t.Fatalf("expected reveal to finish when help opens, got %v", s.reveal)
	}
	if got := s.State().Progress.Completed; got != 1 {
		t.Errorf("expected mechanism to complete once fully shown, got %d", got)
	}

	s.Update(frameMsg{gen: stale})

	press(s, keyEnter, keyDown)
	if s.focus != (rowKey{kind: rowSection, section: content.SectionDrugs}) {
		t.Fatalf("expected focus on drugs, got %+v", s.focus)
	}
	if cmd := press(s, keyEnter); cmd == nil {
		t.Fatal("expected a fresh expand animation after help")
	}
	settle(t, s)
	if got := s.State().Progress.Completed; got != 2 {
		t.Errorf("expected drugs to complete after its animation, got %d", got)
	}
}

func TestBackToTopRow(t *testing.T) {
	s := newTestScreen(guide.DefaultOptions(), 100, 10)
	press(s, char('e'), char('G'))

	if s.focus != (rowKey{kind: rowTop}) {
		t.Fatalf("expected the back-to-top row last, got %+v", s.focus)
	}
	if s.State().ScrollOffset == 0 {
		t.Fatal("expected to be scrolled down")
	}

	press(s, keyEnter)
	if s.State().ScrollOffset != 0 {
		t.Errorf("expected top, got %d", s.State().ScrollOffset)
	}
	if s.focus != s.doc.rows[0].rowKey {
		t.Errorf("expected focus on first row, got %+v", s.focus)
	}
}

func TestBackToTopRowDisabled(t *testing.T) {
	opts := guide.DefaultOptions()
	opts.ScrollTopButton = false
	s := newTestScreen(opts, 100, 10)
	press(s, char('e'))

	for _, r := range s.doc.rows {
		if r.kind == rowTop {
			t.Fatal("back-to-top row should be hidden")
		}
	}
	press(s, char('t'))
	if s.State().ScrollOffset != 0 {
		t.Errorf("t should do nothing, got offset %d", s.State().ScrollOffset)
	}
}

func TestFeatureFlagsHideChrome(t *testing.T) {
	opts := guide.DefaultOptions()
	opts.ProgressTracker = false
	opts.ScrollIndicator = false
	opts.ScrollTopButton = false
	s := newTestScreen(opts, 100, 200)

	view := s.View(100, 200)
	if strings.Contains(view, "Progress") {
		t.Error("progress tracker should be hidden")
	}
	if strings.Contains(view, "Back to top") {
		t.Error("top button should be hidden")
	}
	if s.Status() != "" {
		t.Errorf("expected empty status, got %q", s.Status())
	}
}
