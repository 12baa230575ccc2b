// Package slog provides logging decorators for hadisler services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hadisler"
)

// Ensure LoggingCatalogService implements hadisler.CatalogService.
var _ hadisler.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with logging. Failures are
// logged at error level so that a session which degrades silently in the
// UI still leaves a trace.
type LoggingCatalogService struct {
	next   hadisler.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next hadisler.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// ListChapters delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) ListChapters(ctx context.Context) (chapters []string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "list chapters",
			"count", len(chapters),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ListChapters(ctx)
}

// ListTopics delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) ListTopics(ctx context.Context, chapter string) (topics []string, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "list topics",
			"chapter", chapter,
			"count", len(topics),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ListTopics(ctx, chapter)
}

// FindEntriesByTopic delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FindEntriesByTopic(ctx context.Context, topic string) (entries []*hadisler.Entry, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "find entries",
			"topic", topic,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindEntriesByTopic(ctx, topic)
}

// SearchEntries delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) SearchEntries(ctx context.Context, term string) (entries []*hadisler.Entry, err error) {
	defer func(begin time.Time) {
		s.log(ctx, err, "search entries",
			"term", term,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SearchEntries(ctx, term)
}

func (s *LoggingCatalogService) log(ctx context.Context, err error, msg string, args ...any) {
	if err != nil {
		s.logger.ErrorContext(ctx, msg, append(args, "err", err)...)
		return
	}
	s.logger.InfoContext(ctx, msg, args...)
}
