// Package noteservice implements the application operations over the
// datastore and the image blob store: note and collection lifecycle,
// full-text search with highlight extraction, export/import, and image
// persistence.
package noteservice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/notura/notura/internal/imagestore"
	"github.com/notura/notura/internal/models"
	"github.com/notura/notura/internal/store"
	"github.com/notura/notura/internal/text"
)

// EventSink receives entity change notifications. Implementations must not
// block; delivery is best-effort.
type EventSink interface {
	PublishEntityEvent(eventType, id string)
}

// Service coordinates datastore and image store operations.
type Service struct {
	store  *store.DB
	files  imagestore.Provider
	logger *slog.Logger
	events EventSink
}

// NewService creates a new note service. events may be nil, in which case no
// notifications are emitted.
func NewService(st *store.DB, files imagestore.Provider, logger *slog.Logger, events EventSink) *Service {
	return &Service{store: st, files: files, logger: logger, events: events}
}

func (s *Service) notify(eventType, id string) {
	if s.events != nil {
		s.events.PublishEntityEvent(eventType, id)
	}
}

// CreateNote persists a new note. Content is normalized and the word and
// character counts are derived from the normalized form.
func (s *Service) CreateNote(_ context.Context, title, content string, collectionID *string, tags []string) (*models.Note, error) {
	normalized := text.Normalize(content)
	now := time.Now().UTC()
	n := &models.Note{
		ID:             uuid.NewString(),
		Title:          title,
		Content:        normalized,
		CollectionID:   collectionID,
		Tags:           nonNilSlice(tags),
		CreatedAt:      now,
		UpdatedAt:      now,
		WordCount:      text.WordCount(normalized),
		CharacterCount: text.CharCount(normalized),
	}
	if err := s.store.InsertNote(n); err != nil {
		return nil, err
	}
	s.notify("note.created", n.ID)
	return n, nil
}

// UpdateNote replaces a note's content, re-deriving its counts. The note's
// updated_at strictly advances even under rapid successive updates.
func (s *Service) UpdateNote(_ context.Context, id, content string) (*models.Note, error) {
	normalized := text.Normalize(content)
	n, err := s.store.UpdateNoteContent(id, normalized, text.WordCount(normalized), text.CharCount(normalized))
	if err != nil {
		return nil, err
	}
	s.notify("note.updated", id)
	return n, nil
}

// MoveNote reassigns a note to a collection, or to no collection when
// collectionID is nil.
func (s *Service) MoveNote(_ context.Context, id string, collectionID *string) (*models.Note, error) {
	n, err := s.store.MoveNote(id, collectionID)
	if err != nil {
		return nil, err
	}
	s.notify("note.updated", id)
	return n, nil
}

// DeleteNote removes a note, its search index entry, and its image
// associations.
func (s *Service) DeleteNote(_ context.Context, id string) error {
	if err := s.store.DeleteNote(id); err != nil {
		return err
	}
	s.notify("note.deleted", id)
	return nil
}

// GetNote returns a single note by id.
func (s *Service) GetNote(_ context.Context, id string) (*models.Note, error) {
	return s.store.GetNote(id)
}

// ListNotes returns all non-archived notes, most recently updated first.
func (s *Service) ListNotes(_ context.Context) ([]models.Note, error) {
	return s.store.ListNotes()
}

// StorageInfo reports datastore diagnostics.
func (s *Service) StorageInfo(_ context.Context) (*models.StorageInfo, error) {
	return s.store.Info()
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
