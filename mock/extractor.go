package mock

import "github.com/fwojciec/hadisler"

var _ hadisler.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of hadisler.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
