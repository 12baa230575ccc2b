package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/hadisler"
	"github.com/fwojciec/hadisler/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_LoadPreferences(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults when file is missing", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewPreferenceService(filepath.Join(t.TempDir(), "prefs.json"))

		p, err := svc.LoadPreferences(context.Background())

		require.NoError(t, err)
		assert.Equal(t, hadisler.DefaultPreferences(), p)
	})

	t.Run("returns defaults and error for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		svc := fs.NewPreferenceService(path)

		p, err := svc.LoadPreferences(context.Background())

		require.Error(t, err)
		assert.Equal(t, hadisler.EINVALID, hadisler.ErrorCode(err))
		assert.Equal(t, hadisler.DefaultPreferences(), p)
	})

	t.Run("returns defaults and error when path is a directory", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewPreferenceService(t.TempDir())

		p, err := svc.LoadPreferences(context.Background())

		require.Error(t, err)
		assert.Equal(t, hadisler.DefaultPreferences(), p)
	})

	t.Run("reads document written by earlier versions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.json")
		doc := `{
    "is_dark_mode": true,
    "base_font_size": 15,
    "last_fasil": "İman",
    "last_konu": null
}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
		svc := fs.NewPreferenceService(path)

		p, err := svc.LoadPreferences(context.Background())

		require.NoError(t, err)
		assert.True(t, p.DarkMode)
		assert.Equal(t, 15, p.FontSize)
		assert.Equal(t, "İman", p.LastChapter)
		assert.Empty(t, p.LastTopic)
		assert.Nil(t, p.Extra)
	})
}

func TestDecodePreferences(t *testing.T) {
	t.Parallel()

	t.Run("merges partial document over defaults", func(t *testing.T) {
		t.Parallel()

		p, err := fs.DecodePreferences([]byte(`{"is_dark_mode": true}`))

		require.NoError(t, err)
		assert.True(t, p.DarkMode)
		assert.Equal(t, hadisler.DefaultFontSize, p.FontSize)
	})

	t.Run("clamps font size", func(t *testing.T) {
		t.Parallel()

		p, err := fs.DecodePreferences([]byte(`{"base_font_size": 99}`))
		require.NoError(t, err)
		assert.Equal(t, hadisler.MaxFontSize, p.FontSize)

		p, err = fs.DecodePreferences([]byte(`{"base_font_size": 1}`))
		require.NoError(t, err)
		assert.Equal(t, hadisler.MinFontSize, p.FontSize)
	})

	t.Run("ignores values of the wrong type", func(t *testing.T) {
		t.Parallel()

		p, err := fs.DecodePreferences([]byte(`{"is_dark_mode": "yes", "base_font_size": "big", "last_fasil": 3}`))

		require.NoError(t, err)
		assert.False(t, p.DarkMode)
		assert.Equal(t, hadisler.DefaultFontSize, p.FontSize)
		assert.Empty(t, p.LastChapter)
	})

	t.Run("keeps unknown keys", func(t *testing.T) {
		t.Parallel()

		p, err := fs.DecodePreferences([]byte(`{"window": {"w": 800}, "base_font_size": 14}`))

		require.NoError(t, err)
		require.Contains(t, p.Extra, "window")
		assert.JSONEq(t, `{"w": 800}`, string(p.Extra["window"]))
	})

	t.Run("rejects non-object document", func(t *testing.T) {
		t.Parallel()

		_, err := fs.DecodePreferences([]byte(`null`))
		require.Error(t, err)

		_, err = fs.DecodePreferences([]byte(`[1, 2]`))
		require.Error(t, err)
	})
}

func TestPreferenceService_SavePreferences(t *testing.T) {
	t.Parallel()

	t.Run("round-trips preferences", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewPreferenceService(filepath.Join(t.TempDir(), "prefs.json"))
		ctx := context.Background()

		for _, want := range []*hadisler.Preferences{
			{DarkMode: true, FontSize: 30, LastChapter: "Faith", LastTopic: "Pillars"},
			{DarkMode: false, FontSize: 8},
			{FontSize: 12, LastChapter: "Namaz"},
			{FontSize: 21, LastChapter: "Zekât", LastTopic: "Öşür", Extra: map[string]json.RawMessage{"version": json.RawMessage(`2`)}},
		} {
			require.NoError(t, svc.SavePreferences(ctx, want))

			got, err := svc.LoadPreferences(ctx)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("writes null for empty selection and keeps text readable", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.json")
		svc := fs.NewPreferenceService(path)

		err := svc.SavePreferences(context.Background(), &hadisler.Preferences{FontSize: 12, LastChapter: "İman & <Amel>"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"last_konu": null`)
		assert.Contains(t, string(data), `"last_fasil": "İman & <Amel>"`)
	})

	t.Run("preserves unknown keys", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"geometry": [1, 2], "base_font_size": 12}`), 0644))
		svc := fs.NewPreferenceService(path)
		ctx := context.Background()

		p, err := svc.LoadPreferences(ctx)
		require.NoError(t, err)
		p.DarkMode = true
		require.NoError(t, svc.SavePreferences(ctx, p))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, []any{float64(1), float64(2)}, doc["geometry"])
		assert.Equal(t, true, doc["is_dark_mode"])
	})

	t.Run("creates parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "prefs.json")
		svc := fs.NewPreferenceService(path)

		require.NoError(t, svc.SavePreferences(context.Background(), hadisler.DefaultPreferences()))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("creates new file readable by others", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.json")
		svc := fs.NewPreferenceService(path)

		require.NoError(t, svc.SavePreferences(context.Background(), hadisler.DefaultPreferences()))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), fi.Mode().Perm())
	})

	t.Run("keeps the mode of the replaced file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "prefs.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))
		require.NoError(t, os.Chmod(path, 0640))
		svc := fs.NewPreferenceService(path)

		require.NoError(t, svc.SavePreferences(context.Background(), hadisler.DefaultPreferences()))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), fi.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		svc := fs.NewPreferenceService(filepath.Join(dir, "prefs.json"))

		require.NoError(t, svc.SavePreferences(context.Background(), hadisler.DefaultPreferences()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "prefs.json", entries[0].Name())
	})

	t.Run("returns error when directory is not writable", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		svc := fs.NewPreferenceService(filepath.Join(blocker, "prefs.json"))

		err := svc.SavePreferences(context.Background(), hadisler.DefaultPreferences())

		require.Error(t, err)
	})
}

func TestDefaultPreferencesPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fs.DefaultPreferencesFile, filepath.Base(fs.DefaultPreferencesPath()))
}
