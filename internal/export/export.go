// Package export converts between note entities and their external
// representations: a lightweight Markdown form and a lossless JSON form.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/notura/notura/internal/models"
)

// Recognised export format strings.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// timestampFormat is the human-readable form used in Markdown exports.
const timestampFormat = "2006-01-02 15:04:05"

// Markdown renders notes in the given order: heading from the title,
// created/updated timestamps, a tags line only when tags exist, the raw
// content, and a horizontal-rule separator. Deterministic for identical
// input order.
func Markdown(notes []models.Note) string {
	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&b, "# %s\n\n", n.Title)
		fmt.Fprintf(&b, "*Created: %s*\n", n.CreatedAt.UTC().Format(timestampFormat))
		fmt.Fprintf(&b, "*Updated: %s*\n\n", n.UpdatedAt.UTC().Format(timestampFormat))
		if len(n.Tags) > 0 {
			fmt.Fprintf(&b, "*Tags: %s*\n\n", strings.Join(n.Tags, ", "))
		}
		b.WriteString(n.Content)
		b.WriteString("\n\n---\n\n")
	}
	return b.String()
}

// JSON renders the full note list as pretty-printed JSON. The output
// round-trips losslessly through ParseImport.
func JSON(notes []models.Note) (string, error) {
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: serialize notes: %w", err)
	}
	return string(data), nil
}
