// Package mock provides mock implementations of hadisler interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/hadisler"
)

var _ hadisler.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of hadisler.CatalogService.
type CatalogService struct {
	ListChaptersFn       func(ctx context.Context) ([]string, error)
	ListTopicsFn         func(ctx context.Context, chapter string) ([]string, error)
	FindEntriesByTopicFn func(ctx context.Context, topic string) ([]*hadisler.Entry, error)
	SearchEntriesFn      func(ctx context.Context, term string) ([]*hadisler.Entry, error)
}

func (s *CatalogService) ListChapters(ctx context.Context) ([]string, error) {
	return s.ListChaptersFn(ctx)
}

func (s *CatalogService) ListTopics(ctx context.Context, chapter string) ([]string, error) {
	return s.ListTopicsFn(ctx, chapter)
}

func (s *CatalogService) FindEntriesByTopic(ctx context.Context, topic string) ([]*hadisler.Entry, error) {
	return s.FindEntriesByTopicFn(ctx, topic)
}

func (s *CatalogService) SearchEntries(ctx context.Context, term string) ([]*hadisler.Entry, error) {
	return s.SearchEntriesFn(ctx, term)
}
