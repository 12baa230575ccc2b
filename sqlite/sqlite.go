// Package sqlite provides SQLite-based storage implementations for hadisler services.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/fwojciec/hadisler"
	"github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/ext/unicode"
)

// DefaultFile is the file name of the catalog shipped with the program.
const DefaultFile = "hadisler.db"

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string

	// ReadOnly opens the database without write access. The file must exist.
	ReadOnly bool
}

// NewDB creates a new DB instance with the given path.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Open opens the database connection.
func (db *DB) Open() error {
	if db.ReadOnly {
		if _, err := os.Stat(db.path); errors.Is(err, os.ErrNotExist) {
			return hadisler.Errorf(hadisler.EUNAVAILABLE, "database %q not found", db.path)
		}
	}

	// The unicode extension makes LIKE fold case beyond ASCII.
	conn, err := driver.Open(db.dsn(), unicode.Register)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One handle is enough for a single reader and keeps the file lock simple.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds instead of failing with "database is locked".
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn
	return nil
}

// dsn returns the data source name. Read-only handles use a URI filename
// so the mode can be passed along.
func (db *DB) dsn() string {
	if !db.ReadOnly {
		return db.path
	}
	u := url.URL{Scheme: "file", Path: db.path, RawQuery: "mode=ro"}
	return u.String()
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// CreateSchema creates the catalog tables if they don't exist.
// The catalog is normally shipped prebuilt; this exists for fixtures and
// for starting an empty catalog.
func (db *DB) CreateSchema(ctx context.Context) error {
	if db.ReadOnly {
		return hadisler.Errorf(hadisler.EINVALID, "cannot create schema on a read-only database")
	}

	schema := `
		CREATE TABLE IF NOT EXISTS serh (
			_id INTEGER PRIMARY KEY,
			serh TEXT
		);

		CREATE TABLE IF NOT EXISTS hadisler (
			_id INTEGER PRIMARY KEY,
			fasil TEXT,
			konu TEXT,
			arabca TEXT,
			hadis TEXT,
			ravi TEXT,
			serh1_id INTEGER REFERENCES serh(_id)
		);

		CREATE INDEX IF NOT EXISTS idx_hadisler_fasil ON hadisler(fasil);
		CREATE INDEX IF NOT EXISTS idx_hadisler_konu ON hadisler(konu);
	`

	_, err := db.db.ExecContext(ctx, schema)
	return err
}
