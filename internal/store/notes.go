package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/models"
)

const noteColumns = `id, title, content, collection_id, tags, created_at, updated_at, word_count, character_count, is_archived`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	var n models.Note
	var tags string
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CollectionID, &tags,
		&n.CreatedAt, &n.UpdatedAt, &n.WordCount, &n.CharacterCount, &n.IsArchived)
	if err != nil {
		return nil, err
	}
	n.Tags = decodeTags(tags)
	return &n, nil
}

// InsertNote persists a fully built note and its search index entry in one
// transaction. The caller is responsible for content normalization and the
// derived counts.
func (db *DB) InsertNote(n *models.Note) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	_, err = tx.Exec(`
		INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Content, n.CollectionID, encodeTags(n.Tags),
		n.CreatedAt, n.UpdatedAt, n.WordCount, n.CharacterCount, n.IsArchived)
	if err != nil {
		return fmt.Errorf("store: insert note: %w", err)
	}
	if err := ftsUpsert(tx, n.ID, n.Title, n.Content, n.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateNoteContent replaces a note's content and derived counts. The new
// updated_at is computed inside the transaction and is strictly greater than
// the prior value; the search index entry is rewritten in the same
// transaction.
func (db *DB) UpdateNoteContent(id, content string, wordCount, charCount int) (*models.Note, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	n, err := getNoteTx(tx, id)
	if err != nil {
		return nil, err
	}

	now := nextTimestamp(n.UpdatedAt)
	_, err = tx.Exec(`
		UPDATE notes SET content = ?, updated_at = ?, word_count = ?, character_count = ?
		WHERE id = ?
	`, content, now, wordCount, charCount, id)
	if err != nil {
		return nil, fmt.Errorf("store: update note: %w", err)
	}
	if err := ftsUpsert(tx, id, n.Title, content, n.Tags); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	n.Content = content
	n.UpdatedAt = now
	n.WordCount = wordCount
	n.CharacterCount = charCount
	return n, nil
}

// MoveNote reassigns a note to a collection (nil clears the reference) and
// advances updated_at.
func (db *DB) MoveNote(id string, collectionID *string) (*models.Note, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	n, err := getNoteTx(tx, id)
	if err != nil {
		return nil, err
	}

	now := nextTimestamp(n.UpdatedAt)
	_, err = tx.Exec(`UPDATE notes SET collection_id = ?, updated_at = ? WHERE id = ?`,
		collectionID, now, id)
	if err != nil {
		return nil, fmt.Errorf("store: move note: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	n.CollectionID = collectionID
	n.UpdatedAt = now
	return n, nil
}

// DeleteNote removes a note and its search index entry. Image associations
// are removed by the note_images cascade.
func (db *DB) DeleteNote(id string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, id)
	res, err := tx.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("note %s: %w", id, apperr.ErrNotFound)
	}
	return tx.Commit()
}

// GetNote returns a single note by id.
func (db *DB) GetNote(id string) (*models.Note, error) {
	n, err := scanNote(db.conn.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get note: %w", err)
	}
	return n, nil
}

func getNoteTx(tx *sql.Tx, id string) (*models.Note, error) {
	n, err := scanNote(tx.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("note %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get note: %w", err)
	}
	return n, nil
}

// ListNotes returns all non-archived notes, most recently updated first.
func (db *DB) ListNotes() ([]models.Note, error) {
	rows, err := db.conn.Query(`
		SELECT ` + noteColumns + ` FROM notes
		WHERE is_archived = 0
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list notes: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

// NotesByIDs returns the notes matching ids in creation-time order,
// regardless of the order ids were supplied in. Unknown ids are skipped.
func (db *DB) NotesByIDs(ids []string) ([]models.Note, error) {
	if len(ids) == 0 {
		return []models.Note{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := db.conn.Query(`
		SELECT `+noteColumns+` FROM notes
		WHERE id IN (`+placeholders+`)
		ORDER BY created_at
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("store: notes by ids: %w", err)
	}
	defer rows.Close()
	return collectNotes(rows)
}

func collectNotes(rows *sql.Rows) ([]models.Note, error) {
	out := []models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}
