package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/models"
)

const imageColumns = `id, filename, original_name, file_path, size, mime_type, created_at`

func scanImage(row rowScanner) (*models.Image, error) {
	var img models.Image
	err := row.Scan(&img.ID, &img.Filename, &img.OriginalName, &img.FilePath,
		&img.Size, &img.MimeType, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// InsertImage persists image metadata and, when noteID is given, the
// note association in the same transaction.
func (db *DB) InsertImage(img *models.Image, noteID *string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(`
		INSERT INTO images (`+imageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, img.ID, img.Filename, img.OriginalName, img.FilePath, img.Size, img.MimeType, img.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert image: %w", err)
	}

	if noteID != nil {
		_, err = tx.Exec(`INSERT INTO note_images (note_id, image_id, created_at) VALUES (?, ?, ?)`,
			*noteID, img.ID, img.CreatedAt)
		if err != nil {
			return fmt.Errorf("store: associate image with note: %w", err)
		}
	}
	return tx.Commit()
}

// GetImage returns image metadata by id.
func (db *DB) GetImage(id string) (*models.Image, error) {
	img, err := scanImage(db.conn.QueryRow(`SELECT `+imageColumns+` FROM images WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("image %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get image: %w", err)
	}
	return img, nil
}

// ListImages returns every stored image, newest first.
func (db *DB) ListImages() ([]models.Image, error) {
	rows, err := db.conn.Query(`SELECT ` + imageColumns + ` FROM images ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list images: %w", err)
	}
	defer rows.Close()
	return collectImages(rows)
}

// ListImagesForNote returns the images associated with a note, newest first.
func (db *DB) ListImagesForNote(noteID string) ([]models.Image, error) {
	rows, err := db.conn.Query(`
		SELECT i.id, i.filename, i.original_name, i.file_path, i.size, i.mime_type, i.created_at
		FROM images i
		JOIN note_images ni ON i.id = ni.image_id
		WHERE ni.note_id = ?
		ORDER BY i.created_at DESC
	`, noteID)
	if err != nil {
		return nil, fmt.Errorf("store: list images for note: %w", err)
	}
	defer rows.Close()
	return collectImages(rows)
}

// DeleteImage removes the metadata row; note associations are removed by the
// cascade.
func (db *DB) DeleteImage(id string) error {
	res, err := db.conn.Exec(`DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete image: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("image %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// SetImageAssociation adds (used=true) or removes (used=false) the
// note/image association. Adding an existing association is a no-op.
func (db *DB) SetImageAssociation(imageID, noteID string, used bool) error {
	if used {
		_, err := db.conn.Exec(`
			INSERT INTO note_images (note_id, image_id, created_at)
			VALUES (?, ?, ?)
			ON CONFLICT (note_id, image_id) DO NOTHING
		`, noteID, imageID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("store: add image association: %w", err)
		}
		return nil
	}
	_, err := db.conn.Exec(`DELETE FROM note_images WHERE note_id = ? AND image_id = ?`, noteID, imageID)
	if err != nil {
		return fmt.Errorf("store: remove image association: %w", err)
	}
	return nil
}

func collectImages(rows *sql.Rows) ([]models.Image, error) {
	out := []models.Image{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *img)
	}
	return out, rows.Err()
}
