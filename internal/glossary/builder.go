// Package glossary builds the in-memory term table from decoded dataset rows
// and keeps it current as the dataset changes.
package glossary

import (
	"github.com/starford/globelex/internal/dataset"
	"github.com/starford/globelex/internal/models"
)

// Build maps every row to a TermRecord using the fixed column positions of
// each source. Rows without a term in any source are dropped; survivors keep
// their input order and are numbered from zero.
func Build(rows []dataset.Row) []models.TermRecord {
	out := make([]models.TermRecord, 0, len(rows))
	for _, row := range rows {
		rec := buildRecord(row)
		if !rec.HasTerm() {
			continue
		}
		rec.ID = len(out)
		out = append(out, rec)
	}
	return out
}

func buildRecord(row dataset.Row) models.TermRecord {
	var rec models.TermRecord
	for _, s := range models.Sources() {
		cols := s.Columns()
		rec.Entries[s] = models.Entry{
			Term:        row.Cell(cols.Term),
			Definition:  row.Cell(cols.Definition),
			CitationRaw: row.Cell(cols.Citation),
		}
	}
	return rec
}
