package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/hadisler"
)

// Compile-time interface verification.
var _ hadisler.CatalogService = (*CatalogService)(nil)

// CatalogService implements hadisler.CatalogService using SQLite.
// Every call opens its own read-only handle and closes it before returning.
type CatalogService struct {
	path string
}

// NewCatalogService creates a new CatalogService reading the database at path.
func NewCatalogService(path string) *CatalogService {
	return &CatalogService{path: path}
}

// withDB opens a read-only handle for the duration of fn.
func (s *CatalogService) withDB(fn func(db *DB) error) error {
	db := NewDB(s.path)
	db.ReadOnly = true
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// ListChapters returns distinct chapters in order of first appearance.
func (s *CatalogService) ListChapters(ctx context.Context) ([]string, error) {
	var chapters []string
	err := s.withDB(func(db *DB) error {
		var err error
		chapters, err = queryStrings(ctx, db, `
			SELECT fasil FROM hadisler
			WHERE fasil IS NOT NULL
			GROUP BY fasil
			ORDER BY MIN(_id)
		`)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	return chapters, nil
}

// ListTopics returns distinct topics of chapter in order of first appearance.
func (s *CatalogService) ListTopics(ctx context.Context, chapter string) ([]string, error) {
	var topics []string
	err := s.withDB(func(db *DB) error {
		var err error
		topics, err = queryStrings(ctx, db, `
			SELECT konu FROM hadisler
			WHERE fasil = ? AND konu IS NOT NULL
			GROUP BY konu
			ORDER BY MIN(_id)
		`, chapter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

const selectEntries = `
	SELECT h._id, h.fasil, h.konu, h.arabca, h.hadis, h.ravi, s._id, s.serh
	FROM hadisler h
	LEFT JOIN serh s ON h.serh1_id = s._id
`

// FindEntriesByTopic returns entries whose topic equals topic.
func (s *CatalogService) FindEntriesByTopic(ctx context.Context, topic string) ([]*hadisler.Entry, error) {
	var entries []*hadisler.Entry
	err := s.withDB(func(db *DB) error {
		var err error
		entries, err = queryEntries(ctx, db, selectEntries+" WHERE h.konu = ? ORDER BY h._id", topic)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find entries by topic: %w", err)
	}
	return entries, nil
}

// SearchEntries returns entries whose body or Arabic text contains term
// case-insensitively, or whose ID equals term.
func (s *CatalogService) SearchEntries(ctx context.Context, term string) ([]*hadisler.Entry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, hadisler.Errorf(hadisler.EINVALID, "search term required")
	}

	var query strings.Builder
	pattern := "%" + escapeLike(term) + "%"
	args := []any{pattern, pattern}

	query.WriteString(selectEntries)
	query.WriteString(` WHERE (h.hadis LIKE ? ESCAPE '\' OR h.arabca LIKE ? ESCAPE '\'`)
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		query.WriteString(" OR h._id = ?")
		args = append(args, id)
	}
	query.WriteString(") ORDER BY h._id")

	var entries []*hadisler.Entry
	err := s.withDB(func(db *DB) error {
		var err error
		entries, err = queryEntries(ctx, db, query.String(), args...)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return entries, nil
}
