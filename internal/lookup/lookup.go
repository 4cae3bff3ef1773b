// Package lookup implements term search and the source-selection state of a
// lookup session.
package lookup

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/starford/globelex/internal/models"
)

// Filter returns the records whose term for active contains search, ignoring
// case. An empty search returns every record, including those with an empty
// term for active. Input order is preserved.
func Filter(records []models.TermRecord, active models.Source, search string) []models.TermRecord {
	fold := cases.Fold()
	needle := fold.String(search)
	out := make([]models.TermRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(fold.String(rec.Term(active)), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Equivalents returns the sources other than active that carry a term for
// rec, in display order.
func Equivalents(rec models.TermRecord, active models.Source) []models.Source {
	var out []models.Source
	for _, s := range models.Sources() {
		if s != active && rec.Term(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
