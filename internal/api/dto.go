package api

import (
	"github.com/notura/notura/internal/models"
)

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Title        string   `json:"title" example:"Meeting notes" validate:"required"`
	Content      string   `json:"content" example:"Discussed the roadmap." validate:"required"`
	CollectionID *string  `json:"collection_id,omitempty" example:"a3f1..."`
	Tags         []string `json:"tags,omitempty" example:"work,planning"`
}

// UpdateNoteRequest is the request body for replacing a note's content.
type UpdateNoteRequest struct {
	Content string `json:"content" example:"Updated content." validate:"required"`
}

// MoveNoteRequest is the request body for reassigning a note's collection.
// A null collection_id moves the note to the root.
type MoveNoteRequest struct {
	CollectionID *string `json:"collection_id"`
}

// CreateCollectionRequest is the request body for creating a collection.
type CreateCollectionRequest struct {
	Name        string  `json:"name" example:"Projects" validate:"required"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	Color       *string `json:"color,omitempty" example:"#7c3aed"`
	Icon        *string `json:"icon,omitempty" example:"folder"`
}

// UpdateCollectionRequest is the request body for renaming a collection.
type UpdateCollectionRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// ExportRequest selects notes and a format for export.
type ExportRequest struct {
	NoteIDs []string `json:"note_ids" validate:"required"`
	Format  string   `json:"format" example:"markdown" validate:"required"`
}

// ImportRequest carries a JSON or Markdown document to import notes from.
type ImportRequest struct {
	Source string `json:"source" validate:"required"`
}

// ImportResponse reports how many notes an import created.
type ImportResponse struct {
	Imported int `json:"imported" example:"3" validate:"required"`
}

// ExportResponse wraps the rendered export document.
type ExportResponse struct {
	Format string `json:"format" example:"markdown" validate:"required"`
	Data   string `json:"data" validate:"required"`
}

// SaveImageRequest is the request body for storing an image. Data carries the
// payload as standard base64.
type SaveImageRequest struct {
	Data         string  `json:"data" validate:"required"`
	OriginalName string  `json:"original_name" example:"screenshot.png" validate:"required"`
	MimeType     string  `json:"mime_type" example:"image/png" validate:"required"`
	NoteID       *string `json:"note_id,omitempty"`
}

// AssociationRequest links or unlinks an image and a note.
type AssociationRequest struct {
	NoteID string `json:"note_id" validate:"required"`
	IsUsed bool   `json:"is_used"`
}

// NoteListResponse wraps note listings.
type NoteListResponse struct {
	Notes []models.Note `json:"notes" validate:"required"`
	Total int           `json:"total" example:"42" validate:"required"`
}

// CollectionListResponse wraps collection listings.
type CollectionListResponse struct {
	Collections []models.Collection `json:"collections" validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []models.SearchResult `json:"results" validate:"required"`
}

// RecentSearchesResponse wraps the saved query history.
type RecentSearchesResponse struct {
	Queries []string `json:"queries" validate:"required"`
}
