package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/hadisler"
)

// likeEscaper escapes LIKE wildcards so the term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes s for use in a LIKE pattern with ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// queryStrings runs a query returning a single text column.
func queryStrings(ctx context.Context, db *DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// queryEntries runs a query selecting the columns of selectEntries.
func queryEntries(ctx context.Context, db *DB, query string, args ...any) ([]*hadisler.Entry, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*hadisler.Entry
	for rows.Next() {
		var e hadisler.Entry
		var chapter, topic, original, body, narrator, commentary sql.NullString
		var commentaryID sql.NullInt64

		if err := rows.Scan(&e.ID, &chapter, &topic, &original, &body, &narrator,
			&commentaryID, &commentary); err != nil {
			return nil, err
		}

		e.Chapter = chapter.String
		e.Topic = topic.String
		e.Original = original.String
		e.Body = body.String
		e.Narrator = narrator.String

		// An empty commentary row is treated like a missing one.
		if commentaryID.Valid && commentary.String != "" {
			e.Commentary = &hadisler.Commentary{ID: commentaryID.Int64, Body: commentary.String}
		}

		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
