package export

import (
	"fmt"
	"strings"

	"github.com/abhisek/aceguide/internal/content"
)

// Markdown renders the whole guide as one Markdown document.
func Markdown(g *content.Guide) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", g.Title)
	for _, def := range g.Sections {
		writeSection(&b, g, def, "##")
	}
	writeKeyTakeaways(&b, g)
	return []byte(b.String())
}

// SectionMarkdown renders a single section as a standalone document.
func SectionMarkdown(g *content.Guide, def content.SectionDef) []byte {
	var b strings.Builder
	writeSection(&b, g, def, "#")
	return []byte(b.String())
}

// KeyTakeawaysMarkdown renders the closing summary as a standalone document.
func KeyTakeawaysMarkdown(g *content.Guide) []byte {
	var b strings.Builder
	writeKeyTakeaways(&b, g)
	return []byte(b.String())
}

func writeSection(b *strings.Builder, g *content.Guide, def content.SectionDef, level string) {
	fmt.Fprintf(b, "%s %s\n\n", level, def.Title)

	if def.Intro != "" {
		fmt.Fprintf(b, "%s\n\n", def.Intro)
	}
	for _, item := range def.Bullets {
		fmt.Fprintf(b, "- %s\n", item)
	}
	if len(def.Bullets) > 0 {
		b.WriteString("\n")
	}

	switch def.ID {
	case content.SectionMechanism:
		writeStages(b, g.Stages)
	case content.SectionDrugs:
		writeDrugs(b, g.Drugs)
	case content.SectionIndications:
		for _, c := range g.Indications {
			fmt.Fprintf(b, "- **%s**: %s\n", c.Name, c.Detail)
		}
		b.WriteString("\n")
	case content.SectionSideEffects:
		for _, e := range g.SideEffects {
			fmt.Fprintf(b, "- **%s**%s: %s\n", e.Initial(), strings.TrimPrefix(e.Name, e.Initial()), e.Detail)
		}
		b.WriteString("\n")
	case content.SectionEvidence:
		for _, t := range g.Trials {
			fmt.Fprintf(b, "**%s (%d)**: %s\n\n> %s\n\n", t.Name, t.Year, t.Detail, t.Citation)
		}
	}

	if def.Takeaway != "" {
		fmt.Fprintf(b, "**Key takeaway:** %s\n\n", def.Takeaway)
	}
	if c := def.Callout; c != nil {
		fmt.Fprintf(b, "> **%s**\n>\n> %s\n\n", c.Title, c.Body)
	}
}

func writeStages(b *strings.Builder, stages []content.Stage) {
	labels := make([]string, len(stages))
	for i, st := range stages {
		labels[i] = st.Label
	}
	fmt.Fprintf(b, "**%s**\n\n", strings.Join(labels, " → "))

	b.WriteString("| Stage | Role | Note |\n|---|---|---|\n")
	for _, st := range stages {
		fmt.Fprintf(b, "| %s | %s | %s |\n", cell(st.Label), cell(st.Sublabel), cell(st.Caption))
	}
	b.WriteString("\n")
}

func writeDrugs(b *strings.Builder, drugs []content.DrugEntry) {
	b.WriteString("| Drug | Dosage | Half-life | Renal excretion | Notes |\n|---|---|---|---|---|\n")
	for _, d := range drugs {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			cell(d.Name), cell(d.Dosage), cell(d.HalfLife), cell(d.RenalExcretion), cell(d.Notes))
	}
	b.WriteString("\n")
}

func writeKeyTakeaways(b *strings.Builder, g *content.Guide) {
	if len(g.KeyTakeaways) == 0 {
		return
	}
	b.WriteString("## Key Takeaways\n\n")
	for _, t := range g.KeyTakeaways {
		fmt.Fprintf(b, "- %s\n", t.Text)
	}
	b.WriteString("\n")
}

// cell escapes pipes so values cannot break a table row.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
