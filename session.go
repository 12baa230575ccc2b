package hadisler

import (
	"context"
	"slices"
	"strings"
)

// SessionState describes what the reader has navigated to.
type SessionState int

// SessionState values.
const (
	StateEmpty SessionState = iota
	StateChapter
	StateTopic
)

// String returns a short name for the state.
func (s SessionState) String() string {
	switch s {
	case StateChapter:
		return "chapter"
	case StateTopic:
		return "topic"
	default:
		return "empty"
	}
}

// Session holds the navigation, theme and font state of one reader and
// drives the catalog, renderer and preference store in response to user
// actions. A Session is not safe for concurrent use; it is meant to be
// owned by a single presentation loop.
//
// Catalog and preference failures never surface from a Session: a failed
// query leaves the corresponding list or detail empty and a failed save is
// dropped until the next one. Wrap the services with logging decorators to
// observe them.
type Session struct {
	catalog  CatalogService
	prefs    PreferenceService
	renderer Renderer

	preferences *Preferences
	width       int

	chapters []string
	topics   []string
	chapter  string
	topic    string
	term     string
	entries  []*Entry
	detail   string
}

// NewSession returns a Session with default preferences. Call Start to
// load the stored preferences and restore the last position.
func NewSession(catalog CatalogService, prefs PreferenceService, renderer Renderer) *Session {
	return &Session{
		catalog:     catalog,
		prefs:       prefs,
		renderer:    renderer,
		preferences: DefaultPreferences(),
	}
}

// Start loads preferences and chapters, then replays the stored chapter
// and topic selection as if the reader had clicked through them.
func (s *Session) Start(ctx context.Context) {
	p, _ := s.prefs.LoadPreferences(ctx)
	if p == nil {
		p = DefaultPreferences()
	}
	p.FontSize = ClampFontSize(p.FontSize)
	s.preferences = p

	s.chapters, _ = s.catalog.ListChapters(ctx)

	chapter, topic := p.LastChapter, p.LastTopic
	if chapter == "" || !slices.Contains(s.chapters, chapter) {
		return
	}
	s.SelectChapter(ctx, chapter)

	if topic == "" || !slices.Contains(s.topics, topic) {
		return
	}
	s.SelectTopic(ctx, topic)
}

// SelectChapter loads the topics of chapter and clears the topic
// selection, any active search and the detail pane.
func (s *Session) SelectChapter(ctx context.Context, chapter string) {
	s.chapter = chapter
	s.topic = ""
	s.term = ""

	s.topics, _ = s.catalog.ListTopics(ctx, chapter)
	s.setEntries(nil)

	s.preferences.LastChapter = chapter
	s.preferences.LastTopic = ""
	s.save(ctx)
}

// SelectTopic clears any active search and displays the entries of topic.
func (s *Session) SelectTopic(ctx context.Context, topic string) {
	s.topic = topic
	s.term = ""

	entries, _ := s.catalog.FindEntriesByTopic(ctx, topic)
	s.setEntries(entries)

	s.preferences.LastTopic = topic
	s.save(ctx)
}

// Search displays the entries matching term with every occurrence
// highlighted. Blank terms are ignored. The chapter and topic selection
// is left untouched and nothing is persisted.
func (s *Session) Search(ctx context.Context, term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	s.term = term
	entries, _ := s.catalog.SearchEntries(ctx, term)
	s.setEntries(entries)
}

// ClearSearch drops the active search and goes back to the selected
// topic, if any.
func (s *Session) ClearSearch(ctx context.Context) {
	if s.term == "" {
		return
	}
	if s.topic == "" {
		s.term = ""
		s.setEntries(nil)
		return
	}
	s.SelectTopic(ctx, s.topic)
}

// AdjustFontSize changes the font size by step within
// [MinFontSize, MaxFontSize] and re-renders the current entries.
func (s *Session) AdjustFontSize(ctx context.Context, step int) {
	s.preferences.FontSize = ClampFontSize(s.preferences.FontSize + step)
	s.render()
	s.save(ctx)
}

// ToggleTheme switches between light and dark mode and re-renders the
// current entries.
func (s *Session) ToggleTheme(ctx context.Context) {
	s.preferences.DarkMode = !s.preferences.DarkMode
	s.render()
	s.save(ctx)
}

// SetWidth sets the width handed to the renderer and re-renders.
func (s *Session) SetWidth(width int) {
	if width == s.width {
		return
	}
	s.width = width
	s.render()
}

// Save persists the current preferences.
func (s *Session) Save(ctx context.Context) error {
	return s.prefs.SavePreferences(ctx, s.preferences.Clone())
}

// State returns the current navigation state.
func (s *Session) State() SessionState {
	switch {
	case s.topic != "":
		return StateTopic
	case s.chapter != "":
		return StateChapter
	default:
		return StateEmpty
	}
}

// Chapters returns the chapter list.
func (s *Session) Chapters() []string { return s.chapters }

// Topics returns the topics of the selected chapter.
func (s *Session) Topics() []string { return s.topics }

// Chapter returns the selected chapter.
func (s *Session) Chapter() string { return s.chapter }

// Topic returns the selected topic.
func (s *Session) Topic() string { return s.topic }

// SearchTerm returns the active search term.
func (s *Session) SearchTerm() string { return s.term }

// Entries returns the displayed entries.
func (s *Session) Entries() []*Entry { return s.entries }

// Detail returns the rendered detail pane.
func (s *Session) Detail() string { return s.detail }

// Preferences returns a copy of the current preferences.
func (s *Session) Preferences() *Preferences { return s.preferences.Clone() }

// PlainText returns the displayed entries as plain text.
func (s *Session) PlainText() string {
	return FormatEntries(s.entries)
}

func (s *Session) setEntries(entries []*Entry) {
	s.entries = entries
	s.render()
}

func (s *Session) render() {
	if len(s.entries) == 0 {
		s.detail = ""
		return
	}

	detail, err := s.renderer.Render(s.entries, RenderOptions{
		Term:     s.term,
		DarkMode: s.preferences.DarkMode,
		FontSize: s.preferences.FontSize,
		Width:    s.width,
	})
	if err != nil {
		s.detail = ""
		return
	}
	s.detail = detail
}

func (s *Session) save(ctx context.Context) {
	_ = s.Save(ctx)
}
