// Package htmltomarkdown converts rendered entries from HTML to Markdown.
package htmltomarkdown

import (
	"slices"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/hadisler"
	"golang.org/x/net/html"
)

// Ensure Converter implements hadisler.Converter at compile time.
var _ hadisler.Converter = (*Converter)(nil)

// HighlightDelimiter wraps search matches in the Markdown output. Matches
// inside the bold body line become bold italic.
const HighlightDelimiter = "*"

// Converter wraps html-to-markdown to convert rendered entries to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	conv.Register.RendererFor("span", converter.TagTypeInline, renderHighlight, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// renderHighlight emphasises spans with the highlight class and leaves
// every other span to the default renderer.
func renderHighlight(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	if !hasClass(n, "highlight") {
		return converter.RenderTryNext
	}

	w.WriteString(HighlightDelimiter)
	ctx.RenderChildNodes(ctx, w, n)
	w.WriteString(HighlightDelimiter)
	return converter.RenderSuccess
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && slices.Contains(strings.Fields(a.Val), class) {
			return true
		}
	}
	return false
}

// Convert transforms HTML content into Markdown. Inline styles are
// dropped; bold labels, search highlights and line structure are kept.
func (c *Converter) Convert(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", hadisler.Errorf(hadisler.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(s)
	if err != nil {
		return "", err
	}

	return result, nil
}
