package store

// Search assertions here hold for both the FTS5 and the LIKE fallback build;
// engine-specific behaviour (snippets, rank) is covered in fts_fts5_test.go.

import "testing"

func TestSearchNotesMatching(t *testing.T) {
	db := testDB(t)
	rust := insertNote(t, db, "Rust Programming", "Rust is a systems programming language")
	js := insertNote(t, db, "JavaScript Guide", "JavaScript is a web programming language")
	insertNote(t, db, "Python Tutorial", "Python is great for data science")

	hits, err := db.SearchNotes("programming")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("len = %d, want 2", len(hits))
	}
	found := map[string]bool{}
	for _, h := range hits {
		found[h.ID] = true
	}
	if !found[rust.ID] || !found[js.ID] {
		t.Errorf("hits = %+v, want the Rust and JavaScript notes", hits)
	}
}

func TestSearchNotesExcludesArchived(t *testing.T) {
	db := testDB(t)
	hidden := insertNote(t, db, "Hidden", "zebrafish research")
	if _, err := db.conn.Exec(`UPDATE notes SET is_archived = 1 WHERE id = ?`, hidden.ID); err != nil {
		t.Fatal(err)
	}
	insertNote(t, db, "Visible", "zebrafish observation")

	hits, err := db.SearchNotes("zebrafish")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("len = %d, want 1 (archived excluded)", len(hits))
	}
	if hits[0].ID == hidden.ID {
		t.Error("archived note surfaced in search")
	}
}

func TestSearchNotesCap(t *testing.T) {
	db := testDB(t)
	for i := 0; i < maxSearchResults+5; i++ {
		insertNote(t, db, "Bulk", "quokka sighting log")
	}
	hits, err := db.SearchNotes("quokka")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(hits) != maxSearchResults {
		t.Errorf("len = %d, want cap %d", len(hits), maxSearchResults)
	}
}
