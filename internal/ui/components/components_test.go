package components

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/aceguide/internal/content"
)

var lisinopril = content.DrugEntry{
	Name:           "Lisinopril",
	Dosage:         "10-40 mg daily",
	HalfLife:       "12 hours",
	RenalExcretion: "100%",
	Notes:          "Not a prodrug",
}

func TestDrugCardCollapsedHidesFields(t *testing.T) {
	out := DrugCard{Drug: lisinopril, Expandable: true, Width: 100}.View()
	assert.Contains(t, out, "Lisinopril")
	assert.Contains(t, out, lisinopril.Summary())
	assert.NotContains(t, out, "Dosage")
	assert.NotContains(t, out, "Notes")
}

func TestDrugCardExpandedShowsFourFields(t *testing.T) {
	out := DrugCard{Drug: lisinopril, Expandable: true, Expanded: true, Width: 100}.View()
	for _, f := range lisinopril.Fields() {
		assert.Contains(t, out, f.Label)
		assert.Contains(t, out, f.Value)
	}
}

func TestDiagramShowsCaptionAndStages(t *testing.T) {
	d := Diagram{
		Stages: []content.Stage{
			{ID: content.StageAngiotensinI, Label: "Angiotensin I", Sublabel: "inactive"},
			{ID: content.StageACE, Label: "ACE", Sublabel: "enzyme"},
		},
		Hovered: content.StageACE,
		Caption: "ACE Inhibitors block this conversion enzyme.",
		Width:   70,
	}
	out := d.View()
	assert.Contains(t, out, "Angiotensin I")
	assert.Contains(t, out, "ACE")
	assert.Contains(t, out, "ACE Inhibitors block this conversion enzyme.")
}

func TestDiagramEmpty(t *testing.T) {
	assert.Empty(t, Diagram{}.View())
}

func TestDisclosureHeader(t *testing.T) {
	closed := Disclosure{Title: "Mechanism of Action", Icon: content.IconZap, Width: 60}.Header()
	assert.Contains(t, closed, "▸")
	assert.Contains(t, closed, "Mechanism of Action")
	assert.NotContains(t, closed, "✓")

	open := Disclosure{Title: "Mechanism of Action", Open: true, Completed: true, Width: 60}.Header()
	assert.Contains(t, open, "▾")
	assert.Contains(t, open, "✓")
	assert.Equal(t, 1, lipgloss.Height(open))
}

func TestProgressTrackerCounter(t *testing.T) {
	out := ProgressTracker{Completed: 2, Total: 5, Width: 100}.View()
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "40%")
}

func TestProgressTrackerZeroTotal(t *testing.T) {
	out := ProgressTracker{Width: 40}.View()
	assert.Contains(t, out, "0/0")
	assert.Contains(t, out, "0%")
}

func TestScrollIndicatorWidth(t *testing.T) {
	for _, s := range []ScrollIndicator{
		{Offset: 0, Max: 10, Width: 20},
		{Offset: 5, Max: 10, Width: 20},
		{Offset: 99, Max: 10, Width: 20},
		{Offset: 0, Max: 0, Width: 20},
	} {
		assert.Equal(t, 20, lipgloss.Width(s.View()))
	}
	assert.Equal(t, strings.Repeat("━", 10), stripStyled(ScrollIndicator{Offset: 5, Max: 10, Width: 20}.View(), "━"))
}

func stripStyled(s, keep string) string {
	var b strings.Builder
	for _, r := range s {
		if string(r) == keep {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestGlyphFallback(t *testing.T) {
	assert.Equal(t, "ϟ", Glyph(content.IconZap))
	assert.Equal(t, "•", Glyph(""))
}

func TestKeyHintsSkipsDisabled(t *testing.T) {
	on := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "nope"), key.WithDisabled())
	hints := KeyHints(on, off)
	assert.Len(t, hints, 1)
	assert.Equal(t, "quit", hints[0].Description)
}

func TestButtonActiveMarker(t *testing.T) {
	assert.Contains(t, NewButton("Back to top", true).View(), "▸")
	assert.NotContains(t, NewButton("Back to top", false).View(), "▸")
}
