package imagestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS implements Provider backed by a single local directory.
type FS struct {
	root string // absolute path to the images directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("imagestore: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("imagestore: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("imagestore: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// safeName validates that the filename is a plain name (no path separators,
// no traversal) and returns the absolute path under the root.
func (f *FS) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("imagestore: filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("imagestore: invalid filename: %s", name)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("imagestore: path escapes image root: %s", name)
	}
	return abs, nil
}

// Write atomically stores data: tmp file → fsync → rename.
func (f *FS) Write(filename string, data []byte) (string, error) {
	abs, err := f.safeName(filename)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(f.root, ".notura-tmp-*")
	if err != nil {
		return "", fmt.Errorf("imagestore: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("imagestore: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("imagestore: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("imagestore: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return "", fmt.Errorf("imagestore: rename: %w", err)
	}
	success = true
	return abs, nil
}

// Read returns the raw bytes of a stored file.
func (f *FS) Read(filename string) ([]byte, error) {
	abs, err := f.safeName(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("imagestore: read %s: %w", filename, err)
	}
	return data, nil
}

// Remove deletes a stored file.
func (f *FS) Remove(filename string) error {
	abs, err := f.safeName(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("imagestore: remove %s: %w", filename, err)
	}
	return nil
}
