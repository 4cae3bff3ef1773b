package models

// Entry is one source's slice of a glossary row. Cells missing from the row
// are stored as empty strings.
type Entry struct {
	Term        string `json:"term"`
	Definition  string `json:"definition"`
	CitationRaw string `json:"citation_raw"`
}

// TermRecord bundles the entries of every source for a single dataset row.
type TermRecord struct {
	ID      int               `json:"id"`
	Entries [NumSources]Entry `json:"-"`
}

// Entry returns the entry of source s.
func (r TermRecord) Entry(s Source) Entry {
	return r.Entries[s]
}

// Term returns the term of source s, or "" when absent.
func (r TermRecord) Term(s Source) string {
	return r.Entries[s].Term
}

// HasTerm reports whether at least one source carries a term.
func (r TermRecord) HasTerm() bool {
	for _, e := range r.Entries {
		if e.Term != "" {
			return true
		}
	}
	return false
}
