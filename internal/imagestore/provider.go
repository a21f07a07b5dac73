// Package imagestore defines the filesystem abstraction for image bytes.
// Image metadata in the datastore is the source of truth for what exists;
// files here are payload only.
package imagestore

// Provider is the interface for image blob operations.
type Provider interface {
	// Write atomically stores data under filename (a plain name, no path
	// separators) and returns the absolute path it was stored at.
	Write(filename string, data []byte) (string, error)
	// Read returns the raw bytes of the stored file.
	Read(filename string) ([]byte, error)
	// Remove deletes the stored file.
	Remove(filename string) error
}
