package mock

import (
	"context"

	"github.com/fwojciec/hadisler"
)

var _ hadisler.PreferenceService = (*PreferenceService)(nil)

// PreferenceService is a mock implementation of hadisler.PreferenceService.
type PreferenceService struct {
	LoadPreferencesFn func(ctx context.Context) (*hadisler.Preferences, error)
	SavePreferencesFn func(ctx context.Context, p *hadisler.Preferences) error
}

func (s *PreferenceService) LoadPreferences(ctx context.Context) (*hadisler.Preferences, error) {
	return s.LoadPreferencesFn(ctx)
}

func (s *PreferenceService) SavePreferences(ctx context.Context, p *hadisler.Preferences) error {
	return s.SavePreferencesFn(ctx, p)
}
