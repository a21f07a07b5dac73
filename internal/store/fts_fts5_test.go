//go:build sqlite_fts5

package store

import (
	"strings"
	"testing"
)

func TestFTS5TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM notes_fts`).Scan(&count); err != nil {
		t.Fatalf("notes_fts table missing: %v", err)
	}
}

func TestFTS5SnippetAndRank(t *testing.T) {
	db := testDB(t)
	insertNote(t, db, "Engine Notes", "The embedded engine provides powerful full-text retrieval.")

	hits, err := db.SearchNotes("powerful")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("len = %d, want 1", len(hits))
	}
	if !strings.Contains(hits[0].Excerpt, "<mark>") || !strings.Contains(hits[0].Excerpt, "</mark>") {
		t.Errorf("excerpt %q missing match markers", hits[0].Excerpt)
	}
	// bm25 rank: lower (negative) is better; a match is never positive.
	if hits[0].Rank > 0 {
		t.Errorf("rank = %f, want <= 0", hits[0].Rank)
	}
}

func TestFTS5UpdateReplacesIndexEntry(t *testing.T) {
	db := testDB(t)
	n := insertNote(t, db, "Evolving", "original wording")

	if _, err := db.UpdateNoteContent(n.ID, "replacement wording", 2, 19); err != nil {
		t.Fatalf("UpdateNoteContent: %v", err)
	}

	hits, _ := db.SearchNotes("original")
	if len(hits) != 0 {
		t.Error("stale index entry should be gone")
	}
	hits, _ = db.SearchNotes("replacement")
	if len(hits) != 1 {
		t.Errorf("len = %d, want 1", len(hits))
	}
}

func TestFTS5TitleAndTagsIndexed(t *testing.T) {
	db := testDB(t)
	n := insertNote(t, db, "Quarterly Review", "body text")
	n.Tags = []string{"finance"}
	// Re-index with tags via the rebuild path.
	if _, err := db.conn.Exec(`UPDATE notes SET tags = ? WHERE id = ?`, encodeTags(n.Tags), n.ID); err != nil {
		t.Fatal(err)
	}
	if err := db.RebuildSearchIndex(); err != nil {
		t.Fatalf("RebuildSearchIndex: %v", err)
	}

	if hits, _ := db.SearchNotes("Quarterly"); len(hits) != 1 {
		t.Error("title should be indexed")
	}
	if hits, _ := db.SearchNotes("finance"); len(hits) != 1 {
		t.Error("tags should be indexed")
	}
}

func TestFTS5Rebuild(t *testing.T) {
	db := testDB(t)
	insertNote(t, db, "Recoverable", "axolotl care instructions")

	// Blow the derived index away; it must be rebuildable from notes alone.
	if _, err := db.conn.Exec(`DELETE FROM notes_fts`); err != nil {
		t.Fatal(err)
	}
	if hits, _ := db.SearchNotes("axolotl"); len(hits) != 0 {
		t.Fatal("index should be empty before rebuild")
	}

	if err := db.RebuildSearchIndex(); err != nil {
		t.Fatalf("RebuildSearchIndex: %v", err)
	}
	if hits, _ := db.SearchNotes("axolotl"); len(hits) != 1 {
		t.Error("rebuilt index should serve the note")
	}
}
