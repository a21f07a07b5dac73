// Package testutil provides shared test helpers for setting up datastores,
// image stores, and services.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/notura/notura/internal/imagestore"
	"github.com/notura/notura/internal/noteservice"
	"github.com/notura/notura/internal/store"
)

// TestStore creates a temporary SQLite datastore that is automatically
// cleaned up.
func TestStore(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "notura-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestImageStore creates a temporary image directory with a filesystem
// provider.
func TestImageStore(t *testing.T) (string, imagestore.Provider) {
	t.Helper()
	dir := t.TempDir()
	files, err := imagestore.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, files
}

// TestService wires a full service over temporary stores with a discarding
// logger and no event sink.
func TestService(t *testing.T) *noteservice.Service {
	t.Helper()
	db := TestStore(t)
	_, files := TestImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return noteservice.NewService(db, files, logger, nil)
}
