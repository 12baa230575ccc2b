package hadisler

// TextExtractor extracts the visible text from rendered HTML, the way a
// rich-text widget flattens its content for the clipboard.
type TextExtractor interface {
	// ExtractText returns the text content of html with one line per block.
	ExtractText(html string) (string, error)
}
