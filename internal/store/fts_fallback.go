//go:build !sqlite_fts5

package store

import (
	"database/sql"
	"fmt"
)

func initFTS(_ *sql.DB) error {
	// FTS5 not compiled in; search falls back to LIKE over the notes table.
	return nil
}

func ftsUpsert(_ *sql.Tx, _, _, _ string, _ []string) error {
	// Title, content, and tags already live in the notes table.
	return nil
}

func ftsDelete(_ *sql.Tx, _ string) {}

// SearchNotes performs a LIKE-based search (fallback when FTS5 is not
// compiled in). Archived notes are excluded and the 50-row cap applies; the
// rank is always 0 because the fallback has no native relevance value.
func (db *DB) SearchNotes(query string) ([]SearchHit, error) {
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT id, title, content, updated_at, substr(content, 1, 200), 0
		FROM notes
		WHERE is_archived = 0 AND (title LIKE ? OR content LIKE ? OR tags LIKE ?)
		ORDER BY updated_at DESC
		LIMIT ?
	`, like, like, like, maxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("store: search: %w", err)
	}
	defer rows.Close()

	var out []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.ID, &h.Title, &h.Content, &h.UpdatedAt, &h.Excerpt, &h.Rank); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// RebuildSearchIndex is a no-op without FTS5; the notes table itself is the
// search source.
func (db *DB) RebuildSearchIndex() error {
	return nil
}
