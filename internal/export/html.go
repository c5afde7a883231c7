package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title   string
	Content template.HTML
}

var (
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	pageTmpl = template.Must(template.New("page").Parse(pageTemplate))
)

// HTML converts Markdown to a complete, self-contained HTML page.
func HTML(title string, src []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	var page bytes.Buffer
	data := pageData{
		Title:   title,
		Content: template.HTML(body.String()),
	}
	if err := pageTmpl.Execute(&page, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return page.Bytes(), nil
}

// pageTemplate is the html/template for exported pages.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; background: #0f172a; color: #f8fafc; font-family: system-ui, sans-serif; line-height: 1.6; }
main { max-width: 56rem; margin: 0 auto; padding: 2rem 1.5rem; }
h1, h2, h3 { color: #a78bfa; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #4c1d95; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #1e1b4b; }
blockquote { margin: 1rem 0; padding: 0.5rem 1rem; border-left: 4px solid #6366f1; background: #1e1b4b; }
strong { color: #f472b6; }
</style>
</head>
<body>
<main>
{{.Content}}
</main>
</body>
</html>
`
