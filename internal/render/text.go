package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/starford/globelex/internal/definition"
)

// Text writes doc as indented plain text for terminals: paragraphs flush
// left, list items bulleted and indented by level.
func Text(w io.Writer, doc definition.Document) error {
	for _, b := range doc {
		line := b.Text
		if b.Kind == definition.ListItem {
			bullet := "•"
			if b.Level > 1 {
				bullet = "◦"
			}
			line = strings.Repeat("  ", b.Level) + bullet + " " + b.Text
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
