// Package models defines the domain types for Notura.
package models

import "time"

// Note is a persisted note entity. Content is normalized text; WordCount and
// CharacterCount are always derived from Content at the moment of the last
// write and never settable independently.
type Note struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CollectionID   *string   `json:"collection_id,omitempty"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	WordCount      int       `json:"word_count"`
	CharacterCount int       `json:"character_count"`
	IsArchived     bool      `json:"is_archived"`
}

// Collection is a node in the self-referential collection tree. SortOrder is
// unique among siblings sharing the same parent.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ParentID    *string   `json:"parent_id,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Image is the metadata row for a stored image. Filename is system-generated
// and distinct from OriginalName; the metadata row, not the file, is the
// source of truth for existence.
type Image struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"file_path"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// ImageWithData is an image plus an inline-encoded payload suitable for
// direct display in the frontend.
type ImageWithData struct {
	Image
	DataURL string `json:"data_url"`
}

// SearchResult is a single ranked full-text search hit.
//
// Relevance is the engine's native rank value, surfaced verbatim. For FTS5
// builds this is the bm25 rank where lower (more negative) means a better
// match; the fallback engine reports 0.
type SearchResult struct {
	NoteID       string    `json:"note_id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Highlights   []string  `json:"highlights"`
	Relevance    float64   `json:"relevance_score"`
	LastModified time.Time `json:"last_modified"`
}

// SearchFilters narrows search results. It is accepted on the public search
// surface for forward compatibility but is currently not applied; callers
// should not expect filtering behaviour yet.
type SearchFilters struct {
	Collections []string   `json:"collections,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	DateRange   *DateRange `json:"date_range,omitempty"`
	ContentType *string    `json:"content_type,omitempty"`
}

// DateRange bounds a search filter in time.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// StorageInfo reports datastore diagnostics. LastBackup is currently always
// absent; backups are external to this layer.
type StorageInfo struct {
	TotalNotes       int     `json:"total_notes"`
	TotalCollections int     `json:"total_collections"`
	DatabaseSize     int64   `json:"database_size"`
	LastBackup       *string `json:"last_backup"`
}
