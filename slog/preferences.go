package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/hadisler"
)

// Ensure LoggingPreferenceService implements hadisler.PreferenceService.
var _ hadisler.PreferenceService = (*LoggingPreferenceService)(nil)

// LoggingPreferenceService wraps a PreferenceService with logging.
type LoggingPreferenceService struct {
	next   hadisler.PreferenceService
	logger *slog.Logger
}

// NewLoggingPreferenceService creates a new LoggingPreferenceService.
func NewLoggingPreferenceService(next hadisler.PreferenceService, logger *slog.Logger) *LoggingPreferenceService {
	return &LoggingPreferenceService{next: next, logger: logger}
}

// LoadPreferences delegates to the wrapped service. A load error means the
// defaults are in use, so it is logged as a warning.
func (s *LoggingPreferenceService) LoadPreferences(ctx context.Context) (p *hadisler.Preferences, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.WarnContext(ctx, "load preferences, using defaults",
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.InfoContext(ctx, "load preferences",
			"dark", p.DarkMode,
			"font_size", p.FontSize,
			"chapter", p.LastChapter,
			"topic", p.LastTopic,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.LoadPreferences(ctx)
}

// SavePreferences delegates to the wrapped service and logs the operation.
func (s *LoggingPreferenceService) SavePreferences(ctx context.Context, p *hadisler.Preferences) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.ErrorContext(ctx, "save preferences",
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.DebugContext(ctx, "save preferences",
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SavePreferences(ctx, p)
}
