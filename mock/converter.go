package mock

import "github.com/fwojciec/hadisler"

var _ hadisler.Converter = (*Converter)(nil)

// Converter is a mock implementation of hadisler.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
