package noteservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notura/notura/internal/apperr"
	"github.com/notura/notura/internal/export"
	"github.com/notura/notura/internal/models"
	"github.com/notura/notura/internal/text"
)

// ExportNotes renders the selected notes in the requested format. At least
// one note id must be given, and every id must resolve.
func (s *Service) ExportNotes(_ context.Context, ids []string, format string) (string, error) {
	if len(ids) == 0 {
		return "", apperr.ErrNoNotesSelected
	}
	notes, err := s.store.NotesByIDs(ids)
	if err != nil {
		return "", err
	}
	switch format {
	case export.FormatMarkdown:
		return export.Markdown(notes), nil
	case export.FormatJSON:
		return export.JSON(notes)
	default:
		return "", fmt.Errorf("format %q: %w", format, apperr.ErrUnsupportedFormat)
	}
}

// ImportNotes parses source (JSON first, Markdown fallback) and persists each
// parsed note as a fresh entity with new identifiers, timestamps, and derived
// counts. It returns the number of notes created.
func (s *Service) ImportNotes(_ context.Context, source string) (int, error) {
	imported := export.ParseImport(source)
	for _, in := range imported {
		normalized := text.Normalize(in.Content)
		now := time.Now().UTC()
		n := &models.Note{
			ID:             uuid.NewString(),
			Title:          in.Title,
			Content:        normalized,
			CollectionID:   in.CollectionID,
			Tags:           nonNilSlice(in.Tags),
			CreatedAt:      now,
			UpdatedAt:      now,
			WordCount:      text.WordCount(normalized),
			CharacterCount: text.CharCount(normalized),
		}
		if err := s.store.InsertNote(n); err != nil {
			return 0, fmt.Errorf("import note %q: %w", in.Title, err)
		}
		s.notify("note.created", n.ID)
	}
	return len(imported), nil
}
