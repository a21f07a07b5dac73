//go:build sqlite_fts5

package store

import (
	"database/sql"
	"fmt"
	"strings"
)

func initFTS(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
			id UNINDEXED,
			title,
			content,
			tags,
			tokenize = 'unicode61 remove_diacritics 2'
		);
	`)
	return err
}

// ftsUpsert rewrites the index entry for a note inside the caller's
// transaction, keeping the index in lockstep with the notes table.
func ftsUpsert(tx *sql.Tx, id, title, content string, tags []string) error {
	_, _ = tx.Exec(`DELETE FROM notes_fts WHERE id = ?`, id)
	_, err := tx.Exec(`INSERT INTO notes_fts (id, title, content, tags) VALUES (?, ?, ?, ?)`,
		id, title, content, strings.Join(tags, " "))
	if err != nil {
		return fmt.Errorf("store: upsert fts: %w", err)
	}
	return nil
}

func ftsDelete(tx *sql.Tx, id string) {
	_, _ = tx.Exec(`DELETE FROM notes_fts WHERE id = ?`, id)
}

// SearchNotes runs an FTS5 match over (title, content, tags), restricted to
// non-archived notes, best match first, capped at 50 hits. Excerpts come from
// the engine's snippet mechanism with <mark> match markers.
func (db *DB) SearchNotes(query string) ([]SearchHit, error) {
	rows, err := db.conn.Query(`
		SELECT n.id,
		       n.title,
		       n.content,
		       n.updated_at,
		       snippet(notes_fts, 2, '<mark>', '</mark>', '...', 32),
		       rank
		FROM notes_fts
		JOIN notes n ON n.id = notes_fts.id
		WHERE notes_fts MATCH ? AND n.is_archived = 0
		ORDER BY rank
		LIMIT ?
	`, query, maxSearchResults)
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

// RebuildSearchIndex repopulates the FTS table from the notes table. The
// index is entirely derived and always rebuildable this way.
func (db *DB) RebuildSearchIndex() error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(`DELETE FROM notes_fts`); err != nil {
		return fmt.Errorf("store: clear fts: %w", err)
	}

	rows, err := tx.Query(`SELECT id, title, content, tags FROM notes`)
	if err != nil {
		return fmt.Errorf("store: read notes for rebuild: %w", err)
	}
	defer rows.Close()

	type entry struct {
		id, title, content string
		tags               []string
	}
	var entries []entry
	for rows.Next() {
		var e entry
		var tags string
		if err := rows.Scan(&e.id, &e.title, &e.content, &tags); err != nil {
			return err
		}
		e.tags = decodeTags(tags)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, e := range entries {
		if err := ftsUpsert(tx, e.id, e.title, e.content, e.tags); err != nil {
			return err
		}
	}
	return tx.Commit()
}
