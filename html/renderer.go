// Package html renders entries as styled HTML for rich-text views and export.
package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/fwojciec/hadisler"
)

// Ensure Renderer implements hadisler.Renderer at compile time.
var _ hadisler.Renderer = (*Renderer)(nil)

// Palette holds the colors of one theme.
type Palette struct {
	Accent       string
	Arabic       string
	Text         string
	Muted        string
	CommentaryBg string
	Border       string
	Highlight    string
	DocumentBg   string
	DocumentFg   string
}

// Light and Dark are the built-in palettes.
var (
	Light = Palette{
		Accent:       "#45ad1d",
		Arabic:       "#e74c3c",
		Text:         "#333333",
		Muted:        "#7f8c8d",
		CommentaryBg: "#ffffff",
		Border:       "#d1d8d5",
		Highlight:    "#ff0000",
		DocumentBg:   "#f0f2f1",
		DocumentFg:   "#2c3e50",
	}
	Dark = Palette{
		Accent:       "#45ad1d",
		Arabic:       "#e74c3c",
		Text:         "#dddddd",
		Muted:        "#7f8c8d",
		CommentaryBg: "#424242",
		Border:       "#d1d8d5",
		Highlight:    "#ff0000",
		DocumentBg:   "#2b2b2b",
		DocumentFg:   "#e0e0e0",
	}
)

// Renderer renders entries as an HTML fragment with inline styles.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.New("entries").Parse(entriesTemplate))}
}

type styles struct {
	Header         template.CSS
	Original       template.CSS
	Narrator       template.CSS
	Body           template.CSS
	Commentary     template.CSS
	CommentaryHead template.CSS
	CommentaryText template.CSS
	Rule           template.CSS
	Highlight      template.CSS
}

type entryView struct {
	ID         int64
	Original   string
	Narrator   string
	Body       []hadisler.Segment
	Commentary []hadisler.Segment
}

type view struct {
	Styles  styles
	Labels  map[string]string
	Entries []entryView
}

// Render renders entries. Occurrences of opts.Term in the body and
// commentary are wrapped in a highlighted span.
func (r *Renderer) Render(entries []*hadisler.Entry, opts hadisler.RenderOptions) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	palette := Light
	if opts.DarkMode {
		palette = Dark
	}

	v := view{
		Styles: newStyles(palette, fontSize(opts.FontSize)),
		Labels: map[string]string{
			"Entry":      hadisler.LabelEntry,
			"Narrator":   hadisler.LabelNarrator,
			"Body":       hadisler.LabelBody,
			"Commentary": hadisler.LabelCommentary,
		},
		Entries: make([]entryView, 0, len(entries)),
	}
	for _, e := range entries {
		v.Entries = append(v.Entries, entryView{
			ID:         e.ID,
			Original:   e.Original,
			Narrator:   e.Narrator,
			Body:       hadisler.Highlight(e.Body, opts.Term),
			Commentary: hadisler.Highlight(e.CommentaryText(), opts.Term),
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render entries: %w", err)
	}
	return buf.String(), nil
}

func fontSize(size int) int {
	if size == 0 {
		return hadisler.DefaultFontSize
	}
	return hadisler.ClampFontSize(size)
}

func newStyles(p Palette, size int) styles {
	css := func(format string, args ...any) template.CSS {
		return template.CSS(fmt.Sprintf(format, args...))
	}
	return styles{
		Header:         css("color: %s; font-weight: bold; font-size: 12pt; text-align: center;", p.Accent),
		Original:       css(`direction: rtl; font-size: %dpt; color: %s; font-family: "Amiri", serif; line-height: 1.4;`, size+10, p.Arabic),
		Narrator:       css("color: %s; font-size: 10pt; margin-top: 8px; margin-bottom: 5px;", p.Muted),
		Body:           css("font-size: %dpt; line-height: 1.5; color: %s;", size, p.Text),
		Commentary:     css("background-color: %s; padding: 18px; border-left: 4px solid %s; margin-top: 15px; border-radius: 4px; border: 1px solid %s;", p.CommentaryBg, p.Accent, p.Border),
		CommentaryHead: css("color: %s; font-size: 9pt;", p.Accent),
		CommentaryText: css("font-size: %dpt; line-height: 1.5; color: %s; margin-top: 8px;", size-1, p.Text),
		Rule:           css("border: 0; border-top: 1px solid %s; margin-top: 25px;", p.Border),
		Highlight:      css("color: %s; font-weight: bold;", p.Highlight),
	}
}

const entriesTemplate = `{{- $s := .Styles -}}{{- $l := .Labels -}}
{{- range .Entries -}}
<div class="entry" style="margin-bottom: 35px; word-wrap: break-word;">
<div class="entry-id" style="{{$s.Header}}">— {{index $l "Entry"}}: {{.ID}} —</div>
{{- if .Original}}
<div class="entry-original" dir="rtl" style="{{$s.Original}}">{{.Original}}</div>
{{- end}}
<p class="entry-narrator" style="{{$s.Narrator}}"><b>{{index $l "Narrator"}}:</b> {{.Narrator}}</p>
<p class="entry-body" style="{{$s.Body}}"><b>{{index $l "Body"}}: {{range .Body}}{{if .Match}}<span class="highlight" style="{{$s.Highlight}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}</b></p>
<div class="entry-commentary" style="{{$s.Commentary}}">
<b style="{{$s.CommentaryHead}}">{{index $l "Commentary"}}</b>
<div class="entry-commentary-text" style="{{$s.CommentaryText}}">{{range .Commentary}}{{if .Match}}<span class="highlight" style="{{$s.Highlight}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}</div>
</div>
<hr style="{{$s.Rule}}">
</div>
{{end -}}`

// Document wraps a rendered fragment in a standalone HTML page.
func Document(title, fragment string, dark bool) (string, error) {
	palette := Light
	if dark {
		palette = Dark
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, struct {
		Title string
		Style template.CSS
		Body  template.HTML
	}{
		Title: title,
		Style: template.CSS(fmt.Sprintf("background-color: %s; color: %s; padding: 10px;", palette.DocumentBg, palette.DocumentFg)),
		Body:  template.HTML(fragment),
	}); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return buf.String(), nil
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body style="{{.Style}}">
{{.Body}}
</body>
</html>
`))
