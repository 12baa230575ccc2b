package hadisler

// Converter converts rendered HTML to Markdown.
type Converter interface {
	// Convert transforms HTML produced by an HTML Renderer into Markdown.
	Convert(html string) (string, error)
}
