package hadisler

import (
	"context"
	"encoding/json"
)

// Font size bounds, in points.
const (
	MinFontSize     = 8
	MaxFontSize     = 30
	DefaultFontSize = 12
)

// Preferences represents the reader's persisted settings.
type Preferences struct {
	DarkMode    bool
	FontSize    int
	LastChapter string
	LastTopic   string

	// Extra holds keys this version does not recognise so they survive a save.
	Extra map[string]json.RawMessage
}

// DefaultPreferences returns the built-in preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{FontSize: DefaultFontSize}
}

// ClampFontSize limits size to [MinFontSize, MaxFontSize].
func ClampFontSize(size int) int {
	return max(MinFontSize, min(size, MaxFontSize))
}

// Clone returns a deep copy of p.
func (p *Preferences) Clone() *Preferences {
	other := *p
	if p.Extra != nil {
		other.Extra = make(map[string]json.RawMessage, len(p.Extra))
		for k, v := range p.Extra {
			other.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &other
}

// PreferenceService represents a store for the reader's preferences.
type PreferenceService interface {
	// LoadPreferences returns the stored preferences merged over the
	// defaults. It always returns usable preferences; a non-nil error
	// reports why the stored document was ignored.
	LoadPreferences(ctx context.Context) (*Preferences, error)

	// SavePreferences replaces the stored document with p.
	SavePreferences(ctx context.Context, p *Preferences) error
}
