// Package export writes the guide content as Markdown or HTML documents.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/aceguide/internal/content"
)

// Format is an output document format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat parses a format name. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want markdown or html)", s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}

// Exporter renders the guide in one format.
type Exporter struct {
	Format   Format
	Reporter Reporter
}

// New creates an Exporter. A nil reporter discards progress.
func New(format Format, reporter Reporter) *Exporter {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Exporter{Format: format, Reporter: reporter}
}

// Write renders the whole guide as a single document.
func (e *Exporter) Write(w io.Writer, g *content.Guide) error {
	out, err := e.render(g.Title, Markdown(g))
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// document is one file of a split export.
type document struct {
	name  string
	title string
	src   []byte
}

// WriteSplit writes one file per section plus a key takeaways file into
// dir, creating it if needed. It returns the written paths in order.
func (e *Exporter) WriteSplit(dir string, g *content.Guide) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	docs := make([]document, 0, len(g.Sections)+1)
	for i, def := range g.Sections {
		docs = append(docs, document{
			name:  fmt.Sprintf("%02d-%s", i+1, def.ID),
			title: def.Title,
			src:   SectionMarkdown(g, def),
		})
	}
	docs = append(docs, document{
		name:  fmt.Sprintf("%02d-key-takeaways", len(g.Sections)+1),
		title: "Key Takeaways",
		src:   KeyTakeawaysMarkdown(g),
	})

	e.Reporter.Start(len(docs))
	defer e.Reporter.Finish()

	paths := make([]string, 0, len(docs))
	for i, d := range docs {
		out, err := e.render(d.title, d.src)
		if err != nil {
			return paths, fmt.Errorf("rendering %s: %w", d.name, err)
		}
		path := filepath.Join(dir, d.name+e.Format.Ext())
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
		e.Reporter.Update(i+1, d.title)
	}
	return paths, nil
}

func (e *Exporter) render(title string, src []byte) ([]byte, error) {
	if e.Format == FormatHTML {
		return HTML(title, src)
	}
	return src, nil
}
