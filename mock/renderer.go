package mock

import "github.com/fwojciec/hadisler"

var _ hadisler.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of hadisler.Renderer.
type Renderer struct {
	RenderFn func(entries []*hadisler.Entry, opts hadisler.RenderOptions) (string, error)
}

func (r *Renderer) Render(entries []*hadisler.Entry, opts hadisler.RenderOptions) (string, error) {
	return r.RenderFn(entries, opts)
}
