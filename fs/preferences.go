// Package fs provides file-based storage for reader preferences.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/hadisler"
)

// DefaultPreferencesFile is the preferences file name in the home directory.
const DefaultPreferencesFile = ".hadisler_config.json"

// Document keys.
const (
	keyDarkMode    = "is_dark_mode"
	keyFontSize    = "base_font_size"
	keyLastChapter = "last_fasil"
	keyLastTopic   = "last_konu"
)

// DefaultPreferencesPath returns ~/.hadisler_config.json, or the bare file
// name when the home directory cannot be determined.
func DefaultPreferencesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultPreferencesFile
	}
	return filepath.Join(home, DefaultPreferencesFile)
}

// Ensure PreferenceService implements hadisler.PreferenceService at compile time.
var _ hadisler.PreferenceService = (*PreferenceService)(nil)

// PreferenceService stores preferences as a flat JSON document.
type PreferenceService struct {
	path string
}

// NewPreferenceService creates a new PreferenceService backed by path.
func NewPreferenceService(path string) *PreferenceService {
	return &PreferenceService{path: path}
}

// Path returns the preferences file path.
func (s *PreferenceService) Path() string {
	return s.path
}

// LoadPreferences reads the document and merges it over the defaults.
// A missing file yields the defaults and no error. An unreadable or
// malformed file yields the defaults and the error.
func (s *PreferenceService) LoadPreferences(ctx context.Context) (*hadisler.Preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return hadisler.DefaultPreferences(), nil
	} else if err != nil {
		return hadisler.DefaultPreferences(), fmt.Errorf("failed to read preferences: %w", err)
	}

	p, err := DecodePreferences(data)
	if err != nil {
		return hadisler.DefaultPreferences(), err
	}
	return p, nil
}

// SavePreferences writes the whole document. The file is written next to
// the target and renamed over it so a failed write never leaves a
// truncated document behind.
func (s *PreferenceService) SavePreferences(ctx context.Context, p *hadisler.Preferences) error {
	data, err := EncodePreferences(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	// CreateTemp uses 0600; keep the mode of the file being replaced.
	mode := os.FileMode(0644)
	if fi, err := os.Stat(s.path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// DecodePreferences parses a preferences document over the defaults.
// Keys with a value of the wrong type keep their default; unknown keys
// are kept in Extra. The font size is clamped.
func DecodePreferences(data []byte) (*hadisler.Preferences, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, hadisler.Errorf(hadisler.EINVALID, "malformed preferences: %v", err)
	}
	if doc == nil {
		return nil, hadisler.Errorf(hadisler.EINVALID, "malformed preferences: not an object")
	}

	p := hadisler.DefaultPreferences()
	for key, raw := range doc {
		switch key {
		case keyDarkMode:
			_ = json.Unmarshal(raw, &p.DarkMode)
		case keyFontSize:
			var size int
			if err := json.Unmarshal(raw, &size); err == nil {
				p.FontSize = size
			}
		case keyLastChapter:
			p.LastChapter = decodeOptionalString(raw)
		case keyLastTopic:
			p.LastTopic = decodeOptionalString(raw)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[key] = raw
		}
	}
	p.FontSize = hadisler.ClampFontSize(p.FontSize)

	return p, nil
}

// decodeOptionalString decodes a string that may be null.
func decodeOptionalString(raw json.RawMessage) string {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return ""
	}
	return *s
}

// EncodePreferences serialises p as indented UTF-8 JSON. Empty selections
// are written as null.
func EncodePreferences(p *hadisler.Preferences) ([]byte, error) {
	doc := make(map[string]any, len(p.Extra)+4)
	for k, v := range p.Extra {
		doc[k] = v
	}
	doc[keyDarkMode] = p.DarkMode
	doc[keyFontSize] = p.FontSize
	doc[keyLastChapter] = optionalString(p.LastChapter)
	doc[keyLastTopic] = optionalString(p.LastTopic)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode preferences: %w", err)
	}
	return buf.Bytes(), nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
