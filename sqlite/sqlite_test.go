package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/hadisler"
	"github.com/fwojciec/hadisler/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row is a fixture entry. Zero CommentaryID means no commentary.
type row struct {
	ID           int64
	Chapter      any
	Topic        any
	Original     string
	Body         string
	Narrator     string
	CommentaryID int64
}

// setupCatalog creates a catalog database in a temp dir and returns its path.
func setupCatalog(t *testing.T, commentary map[int64]string, rows ...row) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hadisler.db")
	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.CreateSchema(ctx))

	for id, body := range commentary {
		_, err := db.ExecContext(ctx, "INSERT INTO serh (_id, serh) VALUES (?, ?)", id, body)
		require.NoError(t, err)
	}
	for _, r := range rows {
		var commentaryID any
		if r.CommentaryID != 0 {
			commentaryID = r.CommentaryID
		}
		_, err := db.ExecContext(ctx, `
			INSERT INTO hadisler (_id, fasil, konu, arabca, hadis, ravi, serh1_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.Chapter, r.Topic, r.Original, r.Body, r.Narrator, commentaryID)
		require.NoError(t, err)
	}

	return path
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on writable database", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		ctx := context.Background()
		require.NoError(t, db.CreateSchema(ctx))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM hadisler").Scan(&count))
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM serh").Scan(&count))
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("returns EUNAVAILABLE for missing read-only database", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "missing.db"))
		db.ReadOnly = true
		err := db.Open()

		require.Error(t, err)
		assert.Equal(t, hadisler.EUNAVAILABLE, hadisler.ErrorCode(err))
	})

	t.Run("rejects writes on read-only database", func(t *testing.T) {
		t.Parallel()

		path := setupCatalog(t, nil)
		db := sqlite.NewDB(path)
		db.ReadOnly = true
		require.NoError(t, db.Open())
		defer db.Close()

		_, err := db.ExecContext(context.Background(), "DELETE FROM hadisler")
		require.Error(t, err)

		err = db.CreateSchema(context.Background())
		assert.Equal(t, hadisler.EINVALID, hadisler.ErrorCode(err))
	})
}
