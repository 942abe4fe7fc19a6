package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

// Writer is the document-writer capability: blocks are appended in order and
// Finish produces the finished output.
type Writer interface {
	Add(b Block)
	Finish() ([]byte, error)
}

// Write feeds every block of doc to w and returns the finished output.
func Write(doc Document, w Writer) ([]byte, error) {
	for _, b := range doc.Blocks {
		w.Add(b)
	}
	return w.Finish()
}

// PageMargin is the page margin in points.
const PageMargin = 36

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { margin: {{.Margin}}pt; }
body { font-family: Helvetica, Arial, sans-serif; font-size: 12pt; color: #000; margin: 0; }
p { margin: 0 0 4pt 0; white-space: pre-wrap; line-height: 1.2; }
p.spacer { min-height: 1.2em; }
</style>
</head>
<body>
{{range .Blocks}}<p class="{{.Class}}" style="{{.Style}}">{{.Text}}</p>
{{end}}</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))

type htmlBlock struct {
	Class string
	Style template.CSS
	Text  string
}

// HTMLWriter lays blocks out as a printable HTML page. Headless Chrome turns
// the page into a paginated PDF.
type HTMLWriter struct {
	title  string
	blocks []htmlBlock
}

func NewHTMLWriter(title string) *HTMLWriter {
	return &HTMLWriter{title: title}
}

func (w *HTMLWriter) Add(b Block) {
	w.blocks = append(w.blocks, htmlBlock{
		Class: b.Kind.String(),
		Style: blockStyle(b),
		Text:  b.Text,
	})
}

func (w *HTMLWriter) Finish() ([]byte, error) {
	var buf bytes.Buffer
	data := map[string]interface{}{
		"Title":  w.title,
		"Margin": PageMargin,
		"Blocks": w.blocks,
	}
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}

func blockStyle(b Block) template.CSS {
	style := "font-size: " + strconv.FormatFloat(b.FontSize, 'f', -1, 64) + "pt;"
	if b.Bold {
		style += " font-weight: bold;"
	}
	style += " text-align: " + b.Align.String() + ";"
	if b.MarginTop > 0 {
		style += " margin-top: " + strconv.FormatFloat(b.MarginTop, 'f', -1, 64) + "pt;"
	}
	return template.CSS(style)
}

// RenderHTML renders doc to a standalone HTML page titled after the resume owner.
func RenderHTML(doc Document) ([]byte, error) {
	title := "Resume"
	if len(doc.Blocks) > 0 && doc.Blocks[0].Kind == KindName && doc.Blocks[0].Text != "" {
		title = doc.Blocks[0].Text
	}
	return Write(doc, NewHTMLWriter(title))
}
