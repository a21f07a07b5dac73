package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/notura/notura/internal/models"
)

// ImportedNote is an incoming note before persistence. Identifiers,
// timestamps, and derived counts are never taken from the source; the caller
// reassigns all of them on insert.
type ImportedNote struct {
	Title        string
	Content      string
	Tags         []string
	CollectionID *string
}

// ParseImport interprets source as a JSON note list first; when that fails it
// falls back to the Markdown import format. A malformed JSON document is
// therefore never a hard failure.
func ParseImport(source string) []ImportedNote {
	if notes, ok := parseJSON(source); ok {
		return notes
	}
	return parseMarkdown(source)
}

func parseJSON(source string) ([]ImportedNote, bool) {
	var notes []models.Note
	if err := json.Unmarshal([]byte(source), &notes); err != nil {
		return nil, false
	}
	out := make([]ImportedNote, len(notes))
	for i, n := range notes {
		out[i] = ImportedNote{
			Title:        n.Title,
			Content:      n.Content,
			Tags:         n.Tags,
			CollectionID: n.CollectionID,
		}
	}
	return out, true
}

// parseMarkdown splits source on horizontal-rule separators; each non-empty
// section becomes one note. The title comes from the first line with leading
// heading markers stripped; the whole section (heading line included) is the
// content. Imported Markdown notes carry no collection.
func parseMarkdown(source string) []ImportedNote {
	sections := strings.Split(source, "\n---\n")
	var out []ImportedNote
	for i, section := range sections {
		if strings.TrimSpace(section) == "" {
			continue
		}
		lines := strings.Split(section, "\n")
		title := fmt.Sprintf("Imported Note %d", i+1)
		if len(lines) > 0 {
			title = strings.TrimSpace(strings.TrimLeft(lines[0], "#"))
		}
		out = append(out, ImportedNote{
			Title:   title,
			Content: section,
			Tags:    []string{},
		})
	}
	return out
}
