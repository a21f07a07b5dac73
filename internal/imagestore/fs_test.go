package imagestore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func testFS(t *testing.T) *FS {
	t.Helper()
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	fs := testFS(t)
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	path, err := fs.Write("img.png", payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("returned path %q is not absolute", path)
	}

	got, err := fs.Read("img.png")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("read back %v, want %v", got, payload)
	}
}

func TestWriteOverwrites(t *testing.T) {
	fs := testFS(t)
	if _, err := fs.Write("f.png", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Write("f.png", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	got, _ := fs.Read("f.png")
	if string(got) != "v2" {
		t.Errorf("got %q, want v2", got)
	}
}

func TestRemove(t *testing.T) {
	fs := testFS(t)
	path, err := fs.Write("gone.png", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if err := fs.Remove("gone.png"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}
	if err := fs.Remove("gone.png"); err == nil {
		t.Error("removing a missing file should error")
	}
}

func TestRejectsUnsafeNames(t *testing.T) {
	fs := testFS(t)
	for _, name := range []string{"", "../escape.png", "a/b.png", "..", "/abs.png"} {
		if _, err := fs.Write(name, []byte("x")); err == nil {
			t.Errorf("Write(%q) should be rejected", name)
		}
		if _, err := fs.Read(name); err == nil {
			t.Errorf("Read(%q) should be rejected", name)
		}
	}
}

func TestNewFSRequiresDirectory(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("NewFS on a missing directory should error")
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFS(file); err == nil {
		t.Error("NewFS on a file should error")
	}
}
