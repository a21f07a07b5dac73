package noteservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/export"
)

func TestExportNotesRequiresSelection(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ExportNotes(context.Background(), nil, export.FormatMarkdown)
	if !errors.Is(err, apperr.ErrNoNotesSelected) {
		t.Errorf("err = %v, want ErrNoNotesSelected", err)
	}
}

func TestExportNotesUnsupportedFormat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, "One", "body", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = svc.ExportNotes(ctx, []string{n.ID}, "pdf")
	if !errors.Is(err, apperr.ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExportNotesUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ExportNotes(context.Background(), []string{"missing"}, export.FormatMarkdown)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestExportNotesMarkdown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, "Standup", "Discussed roadmap.", nil, []string{"work"})
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.ExportNotes(ctx, []string{n.ID}, export.FormatMarkdown)
	if err != nil {
		t.Fatalf("ExportNotes: %v", err)
	}
	for _, fragment := range []string{"# Standup", "*Created: ", "*Tags: work*", "Discussed roadmap.", "\n---\n"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateNote(ctx, "Alpha", "alpha body", nil, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.CreateNote(ctx, "Beta", "beta body", nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	out, err := svc.ExportNotes(ctx, []string{a.ID, b.ID}, export.FormatJSON)
	if err != nil {
		t.Fatalf("ExportNotes: %v", err)
	}

	count, err := svc.ImportNotes(ctx, out)
	if err != nil {
		t.Fatalf("ImportNotes: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	notes, err := svc.ListNotes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 4 {
		t.Fatalf("len = %d, want 4 (2 originals + 2 imported)", len(notes))
	}
	// Imported copies get fresh identities.
	seen := map[string]int{}
	for _, n := range notes {
		seen[n.Title]++
		if n.ID == a.ID && n.Title != "Alpha" {
			t.Errorf("original note mutated: %+v", n)
		}
	}
	if seen["Alpha"] != 2 || seen["Beta"] != 2 {
		t.Errorf("titles = %v", seen)
	}
}

func TestImportNotesMarkdown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	source := "# First note\n\nSome content here.\n---\n# Second note\n\nMore content."
	count, err := svc.ImportNotes(ctx, source)
	if err != nil {
		t.Fatalf("ImportNotes: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	notes, err := svc.ListNotes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	titles := map[string]bool{}
	for _, n := range notes {
		titles[n.Title] = true
		if n.WordCount == 0 {
			t.Errorf("note %q has no derived word count", n.Title)
		}
	}
	if !titles["First note"] || !titles["Second note"] {
		t.Errorf("titles = %v", titles)
	}
}
