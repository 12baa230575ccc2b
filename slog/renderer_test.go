package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/hadisler"
	"github.com/fwojciec/hadisler/mock"
	hslog "github.com/fwojciec/hadisler/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("logs render details at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Renderer{
			RenderFn: func(entries []*hadisler.Entry, opts hadisler.RenderOptions) (string, error) {
				return "<div>ok</div>", nil
			},
		}

		r := hslog.NewLoggingRenderer(inner, logger)
		out, err := r.Render([]*hadisler.Entry{{ID: 1}}, hadisler.RenderOptions{Term: "alpha", FontSize: 12})

		require.NoError(t, err)
		assert.Equal(t, "<div>ok</div>", out)
		output := buf.String()
		assert.Contains(t, output, "count=1")
		assert.Contains(t, output, "term=alpha")
		assert.Contains(t, output, "font_size=12")
		assert.Contains(t, output, "bytes=13")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Renderer{
			RenderFn: func(entries []*hadisler.Entry, opts hadisler.RenderOptions) (string, error) {
				return "", errors.New("template failed")
			},
		}

		r := hslog.NewLoggingRenderer(inner, logger)
		_, err := r.Render(nil, hadisler.RenderOptions{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="template failed"`)
	})
}
