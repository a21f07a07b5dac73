package store

import "time"

// maxSearchResults caps the result set returned by SearchNotes.
const maxSearchResults = 50

// SearchHit is a raw full-text match before highlight extraction. Rank is the
// engine's native relevance value, surfaced verbatim: bm25 rank for FTS5
// builds (lower is better), 0 for the fallback engine.
type SearchHit struct {
	ID        string
	Title     string
	Content   string
	UpdatedAt time.Time
	Excerpt   string
	Rank      float64
}
