package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/models"
)

func TestInsertAndGetNote(t *testing.T) {
	db := testDB(t)
	n := insertNote(t, db, "Hello", "world content")

	got, err := db.GetNote(n.ID)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if got.Title != "Hello" || got.Content != "world content" {
		t.Errorf("got %+v", got)
	}
	if got.IsArchived {
		t.Error("new note should not be archived")
	}
	if len(got.Tags) != 0 {
		t.Errorf("tags = %v, want empty", got.Tags)
	}
}

func TestGetNoteNotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.GetNote("missing-id")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateNoteContentAdvancesUpdatedAt(t *testing.T) {
	db := testDB(t)
	n := insertNote(t, db, "Note", "v1")

	upd, err := db.UpdateNoteContent(n.ID, "v2", 1, 2)
	if err != nil {
		t.Fatalf("UpdateNoteContent: %v", err)
	}
	if !upd.UpdatedAt.After(n.UpdatedAt) {
		t.Errorf("updated_at %v not strictly after %v", upd.UpdatedAt, n.UpdatedAt)
	}
	if upd.Content != "v2" || upd.WordCount != 1 || upd.CharacterCount != 2 {
		t.Errorf("got %+v", upd)
	}

	// Immediate second update must still strictly advance.
	upd2, err := db.UpdateNoteContent(n.ID, "v3", 1, 2)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if !upd2.UpdatedAt.After(upd.UpdatedAt) {
		t.Errorf("second updated_at %v not strictly after %v", upd2.UpdatedAt, upd.UpdatedAt)
	}
}

func TestUpdateNoteNotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.UpdateNoteContent("nope", "x", 1, 1)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteNote(t *testing.T) {
	db := testDB(t)
	n := insertNote(t, db, "Doomed", "searchableword here")

	if err := db.DeleteNote(n.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if _, err := db.GetNote(n.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	hits, err := db.SearchNotes("searchableword")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	for _, h := range hits {
		if h.ID == n.ID {
			t.Error("deleted note still in search results")
		}
	}

	if err := db.DeleteNote(n.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}

func TestListNotesExcludesArchivedAndOrders(t *testing.T) {
	db := testDB(t)
	older := insertNote(t, db, "Older", "a")
	archived := insertNote(t, db, "Archived", "b")
	if _, err := db.conn.Exec(`UPDATE notes SET is_archived = 1 WHERE id = ?`, archived.ID); err != nil {
		t.Fatal(err)
	}
	newer, err := db.UpdateNoteContent(older.ID, "bumped", 1, 6)
	if err != nil {
		t.Fatal(err)
	}
	latest := insertNote(t, db, "Latest", "c")
	if _, err := db.UpdateNoteContent(latest.ID, "c2", 1, 2); err != nil {
		t.Fatal(err)
	}

	notes, err := db.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("len = %d, want 2 (archived excluded)", len(notes))
	}
	if notes[0].ID != latest.ID || notes[1].ID != newer.ID {
		t.Errorf("order = [%s %s], want newest updated first", notes[0].Title, notes[1].Title)
	}
}

func TestMoveNote(t *testing.T) {
	db := testDB(t)
	c := insertCollection(t, db, "Work", nil)
	n := insertNote(t, db, "Mover", "content")

	moved, err := db.MoveNote(n.ID, &c.ID)
	if err != nil {
		t.Fatalf("MoveNote: %v", err)
	}
	if moved.CollectionID == nil || *moved.CollectionID != c.ID {
		t.Errorf("collection_id = %v, want %s", moved.CollectionID, c.ID)
	}
	if !moved.UpdatedAt.After(n.UpdatedAt) {
		t.Error("move should advance updated_at")
	}

	cleared, err := db.MoveNote(n.ID, nil)
	if err != nil {
		t.Fatalf("MoveNote to none: %v", err)
	}
	if cleared.CollectionID != nil {
		t.Errorf("collection_id = %v, want nil", cleared.CollectionID)
	}

	if _, err := db.MoveNote("ghost", &c.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("move missing = %v, want ErrNotFound", err)
	}
}

func TestNotesByIDsCreationOrder(t *testing.T) {
	db := testDB(t)
	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		now := time.Now().UTC()
		n := &models.Note{ID: uuid.NewString(), Title: title, Content: title, Tags: []string{}, CreatedAt: now, UpdatedAt: now}
		if err := db.InsertNote(n); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, n.ID)
		time.Sleep(2 * time.Millisecond)
	}

	// Request in reverse; result must come back in creation order.
	got, err := db.NotesByIDs([]string{ids[2], ids[0], ids[1]})
	if err != nil {
		t.Fatalf("NotesByIDs: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Title != want {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Title, want)
		}
	}
}
