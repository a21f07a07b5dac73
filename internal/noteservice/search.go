package noteservice

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/notura/notura/internal/models"
)

// highlightContext is the number of bytes of surrounding content kept on
// each side of a matched term.
const highlightContext = 30

// Search runs a full-text query over non-archived notes and decorates each
// hit with contextual highlight windows. A blank query returns an empty
// result set without touching storage. filters is accepted for forward
// compatibility and currently not applied.
func (s *Service) Search(_ context.Context, query string, filters *models.SearchFilters) ([]models.SearchResult, error) {
	_ = filters
	q := strings.TrimSpace(query)
	if q == "" {
		return []models.SearchResult{}, nil
	}
	hits, err := s.store.SearchNotes(q)
	if err != nil {
		return nil, err
	}
	results := make([]models.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = models.SearchResult{
			NoteID:       h.ID,
			Title:        h.Title,
			Excerpt:      h.Excerpt,
			Highlights:   extractHighlights(h.Content, q),
			Relevance:    h.Rank,
			LastModified: h.UpdatedAt,
		}
	}
	return results, nil
}

// RecentSearches returns the saved query history. History persistence is not
// implemented yet; the list is always empty.
func (s *Service) RecentSearches(_ context.Context) ([]string, error) {
	return []string{}, nil
}

// SaveRecentSearch records a query in the search history. Currently a no-op;
// see RecentSearches.
func (s *Service) SaveRecentSearch(_ context.Context, query string) error {
	return nil
}

// RebuildSearchIndex drops and repopulates the full-text index from the
// notes table.
func (s *Service) RebuildSearchIndex(_ context.Context) error {
	return s.store.RebuildSearchIndex()
}

// extractHighlights returns one highlight per whitespace-separated query
// term: the first case-insensitive occurrence of the term in content, wrapped
// in a window of highlightContext bytes per side. Terms that do not occur
// contribute nothing. Windows are snapped outward to rune boundaries and
// always framed with ellipses.
func extractHighlights(content, query string) []string {
	highlights := []string{}
	lowered := strings.ToLower(content)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		idx := strings.Index(lowered, term)
		if idx < 0 {
			continue
		}
		start := max(idx-highlightContext, 0)
		end := min(idx+len(term)+highlightContext, len(content))
		for start > 0 && !utf8.RuneStart(content[start]) {
			start--
		}
		for end < len(content) && !utf8.RuneStart(content[end]) {
			end++
		}
		highlights = append(highlights, "..."+content[start:end]+"...")
	}
	return highlights
}
