package hadisler

import "context"

// NoCommentaryText is shown in place of the commentary block when an entry
// has no linked commentary record.
const NoCommentaryText = "Bu hadis için şerh kaydı bulunamadı."

// Entry represents a single hadith record.
type Entry struct {
	ID       int64  `json:"id"`
	Chapter  string `json:"chapter"`
	Topic    string `json:"topic"`
	Original string `json:"original"` // Arabic text
	Body     string `json:"body"`
	Narrator string `json:"narrator"`

	// Commentary is nil when the entry has no linked commentary.
	Commentary *Commentary `json:"commentary,omitempty"`
}

// CommentaryText returns the commentary body or NoCommentaryText.
func (e *Entry) CommentaryText() string {
	if e.Commentary == nil {
		return NoCommentaryText
	}
	return e.Commentary.Body
}

// Commentary represents an explanatory text attached to an entry.
type Commentary struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
}

// CatalogService represents read-only access to the hadith catalog.
// Chapters and topics are listed in order of first appearance in the
// catalog, not alphabetically.
type CatalogService interface {
	// ListChapters returns the distinct chapter names.
	ListChapters(ctx context.Context) ([]string, error)

	// ListTopics returns the distinct topic names within a chapter.
	ListTopics(ctx context.Context, chapter string) ([]string, error)

	// FindEntriesByTopic returns the entries whose topic equals topic exactly.
	FindEntriesByTopic(ctx context.Context, topic string) ([]*Entry, error)

	// SearchEntries returns entries whose body or original text contains
	// term, ignoring case, or whose ID equals term when it is a number.
	// Returns EINVALID if term is blank.
	SearchEntries(ctx context.Context, term string) ([]*Entry, error)
}
