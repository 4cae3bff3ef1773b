package mcpserver

import (
	"fmt"
	"strings"

	"github.com/starford/globelex/internal/citation"
	"github.com/starford/globelex/internal/models"
)

// SourcesURI is the resource describing the dataset layout.
const SourcesURI = "globelex://sources"

// SourcesGuide renders the source table as Markdown: IDs accepted by the
// tools, dataset column positions and the citation form of each source.
func SourcesGuide() string {
	var b strings.Builder
	b.WriteString("# GloBE glossary sources\n\n")
	b.WriteString("Pass the `id` column to the `source` and `compare` arguments. ")
	b.WriteString("Column positions are zero-based cells of a dataset row.\n\n")
	b.WriteString("| id | label | term | definition | citation | citation example |\n")
	b.WriteString("|----|-------|------|------------|----------|------------------|\n")
	for _, s := range models.Sources() {
		c := s.Columns()
		fmt.Fprintf(&b, "| `%s` | %s | %d | %d | %d | %s |\n",
			s.ID(), s.Label(), c.Term, c.Definition, c.Citation, citation.Format("1", s))
	}
	b.WriteString("\nCitations that do not start with a digit are returned unchanged.\n")
	b.WriteString("Definitions are split on line breaks; lines starting with `a)`, `1)` are list items, ")
	b.WriteString("`ii)`, `iv)` are nested items. A lone `i)`, `v)` or `x)` is a lettered item.\n")
	return b.String()
}
