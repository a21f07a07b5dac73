// Package apperr defines the sentinel errors shared across the application.
package apperr

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrHasChildren indicates a collection still has child collections and
	// therefore cannot be deleted.
	ErrHasChildren = errors.New("collection has child collections")
	// ErrUnsupportedFormat indicates an unrecognised export format string.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrNoNotesSelected indicates an export was requested with an empty id list.
	ErrNoNotesSelected = errors.New("no notes selected for export")
	// ErrStorageIO indicates a filesystem read or write failed for image bytes.
	ErrStorageIO = errors.New("storage io failure")
)
