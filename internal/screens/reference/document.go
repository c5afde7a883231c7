package reference

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/ui/components"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

type rowKind int

const (
	rowSection rowKind = iota
	rowStage
	rowCard
	rowTop
)

// rowKey identifies a focusable row across re-layouts.
type rowKey struct {
	kind    rowKind
	section content.SectionID
	stage   content.StageID
	drug    string
}

// row is a focusable element and the document lines it occupies.
type row struct {
	rowKey
	line   int
	height int
}

// span is a half-open range of document lines.
type span struct {
	start int
	end   int
}

// document is the laid-out page: every line of scrollable content plus the
// positions of focusable rows and open section bodies.
type document struct {
	lines  []string
	rows   []row
	bodies map[content.SectionID]span
	// full body heights, including lines hidden by an expand animation
	full map[content.SectionID]int
}

func (d document) index(k rowKey) int {
	for i, r := range d.rows {
		if r.rowKey == k {
			return i
		}
	}
	return -1
}

// builder accumulates document lines.
type builder struct {
	doc document
}

func (b *builder) add(block string) int {
	start := len(b.doc.lines)
	b.doc.lines = append(b.doc.lines, strings.Split(block, "\n")...)
	return start
}

func (b *builder) blank() {
	b.doc.lines = append(b.doc.lines, "")
}

// build lays out the page for the given width. It reads the screen's state
// but never changes it.
func (s *Screen) build(width int) document {
	b := &builder{doc: document{
		bodies: make(map[content.SectionID]span),
		full:   make(map[content.SectionID]int),
	}}

	b.add(theme.Title.Width(width).Render(s.content.Title))
	b.add(theme.Subtitle.Width(width).Render("Everything you need to know for your exams"))
	b.blank()

	for _, def := range s.content.Sections {
		sec, _ := s.state.Section(def.ID)
		header := rowKey{kind: rowSection, section: def.ID}

		d := components.Disclosure{
			Title:     def.Title,
			Icon:      def.Icon,
			Open:      sec.Open,
			Completed: sec.Completed,
			Focused:   s.focus == header,
			Width:     width,
		}
		line := b.add(d.Header())
		b.doc.rows = append(b.doc.rows, row{rowKey: header, line: line, height: 1})

		if sec.Open {
			body, inner := s.sectionBody(def, max(width-5, 20))
			lines := strings.Split(d.Body(body), "\n")
			b.doc.full[def.ID] = len(lines)

			shown := len(lines)
			if n, animating := s.reveal[def.ID]; animating {
				shown = min(n, len(lines))
			}

			start := len(b.doc.lines)
			b.doc.lines = append(b.doc.lines, lines[:shown]...)
			b.doc.bodies[def.ID] = span{start: start, end: start + len(lines)}

			for _, r := range inner {
				if r.line+r.height > shown {
					continue
				}
				r.line += start
				b.doc.rows = append(b.doc.rows, r)
			}
		}
		b.blank()
	}

	b.add(s.keyTakeaways(width))

	if s.state.Options.ScrollTopButton {
		b.blank()
		top := rowKey{kind: rowTop}
		btn := components.NewButton("↑ Back to top", s.focus == top).View()
		line := b.add(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn))
		b.doc.rows = append(b.doc.rows, row{rowKey: top, line: line, height: lipgloss.Height(btn)})
	}

	return b.doc
}

// part is a rendered block of a section body.
type part struct {
	text string
	rows []row
}

// sectionBody renders the content of an open section. Row lines are
// relative to the start of the body.
func (s *Screen) sectionBody(def content.SectionDef, width int) (string, []row) {
	var parts []part
	text := func(t string) {
		if t != "" {
			parts = append(parts, part{text: t})
		}
	}

	text(components.Paragraph(def.Intro, width))
	if len(def.Bullets) > 0 {
		text(components.BulletList(def.Bullets, width))
	}

	switch def.ID {
	case content.SectionMechanism:
		parts = append(parts, s.diagramPart(width))
	case content.SectionDrugs:
		parts = append(parts, s.drugParts(width)...)
	case content.SectionIndications:
		text(indications(s.content.Indications, width))
	case content.SectionSideEffects:
		text(sideEffects(s.content.SideEffects, width))
	case content.SectionEvidence:
		text(trials(s.content.Trials, width))
	}

	if s.state.Options.Takeaways && def.Takeaway != "" {
		text(components.Takeaway(def.Takeaway, width))
	}
	if def.Callout != nil {
		text(components.Callout(*def.Callout, width))
	}

	var blocks []string
	var rows []row
	line := 0
	for i, p := range parts {
		if i > 0 {
			line++ // blank separator
		}
		for _, r := range p.rows {
			r.line += line
			rows = append(rows, r)
		}
		blocks = append(blocks, p.text)
		line += lipgloss.Height(p.text)
	}
	return strings.Join(blocks, "\n\n"), rows
}

func (s *Screen) diagramPart(width int) part {
	d := components.Diagram{
		Stages:  s.content.Stages,
		Hovered: s.state.Diagram.Hovered,
		Caption: s.state.Diagram.Caption(s.content),
		Width:   width,
	}
	view := d.View()
	// stage boxes share the first lines of the diagram; the caption follows
	boxHeight := max(lipgloss.Height(view)-1, 1)

	rows := make([]row, 0, len(s.content.Stages))
	for _, st := range s.content.Stages {
		rows = append(rows, row{
			rowKey: rowKey{kind: rowStage, section: content.SectionMechanism, stage: st.ID},
			height: boxHeight,
		})
	}
	return part{text: view, rows: rows}
}

func (s *Screen) drugParts(width int) []part {
	parts := make([]part, 0, len(s.content.Drugs))
	for _, drug := range s.content.Drugs {
		k := rowKey{kind: rowCard, section: content.SectionDrugs, drug: drug.Name}
		card := components.DrugCard{
			Drug:       drug,
			Expanded:   s.state.Cards.IsExpanded(drug.Name),
			Expandable: s.state.Options.ExpandableCards,
			Focused:    s.focus == k,
			Width:      width,
		}.View()
		parts = append(parts, part{
			text: card,
			rows: []row{{rowKey: k, height: lipgloss.Height(card)}},
		})
	}
	return parts
}

func indications(entries []content.ConditionEntry, width int) string {
	icon := lipgloss.NewStyle().Foreground(theme.Accent)
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	detail := lipgloss.NewStyle().Foreground(theme.Text).Width(max(width-4, 1))

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			icon.Render(components.Glyph(e.Icon))+"  ",
			detail.Render(name.Render(e.Name)+": "+e.Detail),
		))
	}
	return strings.Join(lines, "\n")
}

func sideEffects(entries []content.SideEffectEntry, width int) string {
	initial := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	detail := lipgloss.NewStyle().Foreground(theme.TextDim)
	wrap := lipgloss.NewStyle().Width(max(width-4, 1))

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			initial.Render(e.Initial())+"   ",
			wrap.Render(name.Render(e.Name)+"\n"+detail.Render(e.Detail)),
		))
	}
	return strings.Join(lines, "\n")
}

func trials(entries []content.TrialEntry, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	detail := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	cite := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(width)

	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks,
			name.Render(fmt.Sprintf("%s (%d)", e.Name, e.Year))+"\n"+
				detail.Render(e.Detail)+"\n"+
				cite.Render(e.Citation))
	}
	return strings.Join(blocks, "\n\n")
}

func (s *Screen) keyTakeaways(width int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Key Takeaways")
	icon := lipgloss.NewStyle().Foreground(theme.Secondary)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	lines := []string{heading, ""}
	for _, t := range s.content.KeyTakeaways {
		lines = append(lines, icon.Render(components.Glyph(t.Icon))+"  "+text.Render(t.Text))
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// viewport returns the number of document lines visible below the fixed
// progress and scroll bars.
func (s *Screen) viewport(height int) int {
	return max(height-s.stickyHeight(), 1)
}

func (s *Screen) stickyHeight() int {
	n := 0
	if s.state.Options.ScrollIndicator {
		n++
	}
	if s.state.Options.ProgressTracker {
		n++
	}
	if n > 0 {
		n++ // spacer
	}
	return n
}

func maxScroll(doc document, viewport int) int {
	return max(len(doc.lines)-viewport, 0)
}
