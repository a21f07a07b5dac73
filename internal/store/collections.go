package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/models"
)

const collectionColumns = `id, name, description, parent_id, color, icon, sort_order, created_at, updated_at`

func scanCollection(row rowScanner) (*models.Collection, error) {
	var c models.Collection
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.Color, &c.Icon,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCollection persists a new collection. The sort order is allocated
// inside the insert transaction as max(sibling sort_order)+1, starting at 1
// when no siblings exist, so concurrent creations cannot collide.
//
// A referenced parent must exist (enforced by the foreign key); a freshly
// created collection cannot be its own ancestor, so the tree stays acyclic.
func (db *DB) CreateCollection(c *models.Collection) (*models.Collection, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	order, err := nextSortOrder(tx, c.ParentID)
	if err != nil {
		return nil, err
	}
	c.SortOrder = order

	_, err = tx.Exec(`
		INSERT INTO collections (`+collectionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Description, c.ParentID, c.Color, c.Icon,
		c.SortOrder, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("store: insert collection: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return c, nil
}

func nextSortOrder(tx *sql.Tx, parentID *string) (int, error) {
	var max sql.NullInt64
	var err error
	if parentID != nil {
		err = tx.QueryRow(`SELECT MAX(sort_order) FROM collections WHERE parent_id = ?`, *parentID).Scan(&max)
	} else {
		err = tx.QueryRow(`SELECT MAX(sort_order) FROM collections WHERE parent_id IS NULL`).Scan(&max)
	}
	if err != nil {
		return 0, fmt.Errorf("store: next sort order: %w", err)
	}
	return int(max.Int64) + 1, nil
}

// UpdateCollection renames a collection and replaces its description.
func (db *DB) UpdateCollection(id, name string, description *string) (*models.Collection, error) {
	now := time.Now().UTC()
	res, err := db.conn.Exec(`
		UPDATE collections SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, name, description, now, id)
	if err != nil {
		return nil, fmt.Errorf("store: update collection: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, fmt.Errorf("collection %s: %w", id, apperr.ErrNotFound)
	}
	return db.GetCollection(id)
}

// DeleteCollection removes a childless collection. Notes referencing it are
// reassigned to "no collection" in the same transaction before the row is
// removed; a collection with children fails with apperr.ErrHasChildren.
func (db *DB) DeleteCollection(id string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var children int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM collections WHERE parent_id = ?`, id).Scan(&children); err != nil {
		return fmt.Errorf("store: count children: %w", err)
	}
	if children > 0 {
		return fmt.Errorf("collection %s: %w", id, apperr.ErrHasChildren)
	}

	if _, err := tx.Exec(`UPDATE notes SET collection_id = NULL WHERE collection_id = ?`, id); err != nil {
		return fmt.Errorf("store: detach notes: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM collections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete collection: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("collection %s: %w", id, apperr.ErrNotFound)
	}
	return tx.Commit()
}

// GetCollection returns a single collection by id.
func (db *DB) GetCollection(id string) (*models.Collection, error) {
	c, err := scanCollection(db.conn.QueryRow(`SELECT `+collectionColumns+` FROM collections WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("collection %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get collection: %w", err)
	}
	return c, nil
}

// ListCollections returns every collection ordered by (parent_id, sort_order)
// so callers can reconstruct tree order deterministically. Only the order
// within one parent is contractual; the placement of root-level items
// relative to nested groups follows the engine's NULL collation.
func (db *DB) ListCollections() ([]models.Collection, error) {
	rows, err := db.conn.Query(`
		SELECT ` + collectionColumns + ` FROM collections
		ORDER BY parent_id, sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list collections: %w", err)
	}
	defer rows.Close()

	out := []models.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
