// Package goquery extracts plain text from rendered HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/hadisler"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements hadisler.TextExtractor at compile time.
var _ hadisler.TextExtractor = (*TextExtractor)(nil)

// blockElements start and end a line of text.
var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "div": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hr": true, "li": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "tr": true, "ul": true,
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"head": true, "script": true, "style": true, "template": true,
}

// TextExtractor flattens HTML to plain text, one line per block element.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the visible text of s. Runs of whitespace inside a
// line collapse to one space and empty lines are dropped.
func (e *TextExtractor) ExtractText(s string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", hadisler.Errorf(hadisler.EINVALID, "failed to parse HTML: %v", err)
	}

	var b strings.Builder
	walk(doc.Find("body"), &b)

	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}

func walk(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if node.Type == html.TextNode {
			b.WriteString(strings.ReplaceAll(node.Data, "\n", " "))
			return
		}
		if node.Type != html.ElementNode {
			return
		}

		name := goquery.NodeName(s)
		switch {
		case skippedElements[name]:
		case name == "br":
			b.WriteString("\n")
		case blockElements[name]:
			b.WriteString("\n")
			walk(s, b)
			b.WriteString("\n")
		default:
			walk(s, b)
		}
	})
}
