package store

import (
	"fmt"
	"os"

	"github.com/notura/notura/internal/models"
)

// Info returns storage diagnostics: entity counts (archived notes included)
// and the on-disk size of the primary data file. LastBackup is always absent;
// backups are not managed by this layer.
func (db *DB) Info() (*models.StorageInfo, error) {
	info := &models.StorageInfo{}

	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&info.TotalNotes); err != nil {
		return nil, fmt.Errorf("store: count notes: %w", err)
	}
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM collections`).Scan(&info.TotalCollections); err != nil {
		return nil, fmt.Errorf("store: count collections: %w", err)
	}

	if st, err := os.Stat(db.path); err == nil {
		info.DatabaseSize = st.Size()
	}
	return info, nil
}
