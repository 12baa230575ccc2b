package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/hadisler"
)

// Ensure LoggingRenderer implements hadisler.Renderer.
var _ hadisler.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   hadisler.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next hadisler.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(entries []*hadisler.Entry, opts hadisler.RenderOptions) (out string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			r.logger.Error("render", "count", len(entries), "err", err)
			return
		}
		r.logger.Debug("render",
			"count", len(entries),
			"term", opts.Term,
			"dark", opts.DarkMode,
			"font_size", opts.FontSize,
			"bytes", len(out),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Render(entries, opts)
}
