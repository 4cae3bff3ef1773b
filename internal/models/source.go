// Package models defines the domain types for globelex.
package models

import (
	"fmt"

	"github.com/starford/globelex/internal/apperr"
)

// Source is one of the five fixed legal-text families a glossary entry can
// belong to. The set is closed: NumSources is the only valid upper bound.
type Source int

const (
	ModeleFR Source = iota
	ModeleEN
	DirectiveFR
	DirectiveEN
	CGI

	NumSources = 5
)

// Family groups sources that share a citation template.
type Family int

const (
	FamilyModel Family = iota
	FamilyDirective
	FamilyCGI
)

// Columns are the cell positions of a source inside a dataset row.
type Columns struct {
	Term       int `json:"term"`
	Definition int `json:"definition"`
	Citation   int `json:"citation"`
}

type descriptor struct {
	id      string
	label   string
	family  Family
	columns Columns
}

// Columns 0 and 5 are citations shared by a FR/EN pair.
var descriptors = [NumSources]descriptor{
	ModeleFR:    {id: "modeleFR", label: "Modèle (FR)", family: FamilyModel, columns: Columns{Term: 1, Definition: 2, Citation: 0}},
	ModeleEN:    {id: "modeleEN", label: "Modèle (EN)", family: FamilyModel, columns: Columns{Term: 3, Definition: 4, Citation: 0}},
	DirectiveFR: {id: "directiveFR", label: "Directive (FR)", family: FamilyDirective, columns: Columns{Term: 6, Definition: 7, Citation: 5}},
	DirectiveEN: {id: "directiveEN", label: "Directive (EN)", family: FamilyDirective, columns: Columns{Term: 8, Definition: 9, Citation: 5}},
	CGI:         {id: "cgi", label: "CGI", family: FamilyCGI, columns: Columns{Term: 11, Definition: 12, Citation: 10}},
}

// Sources returns every source in display order.
func Sources() []Source {
	return []Source{ModeleFR, ModeleEN, DirectiveFR, DirectiveEN, CGI}
}

// MinColumns is the smallest row width that holds every source's cells.
func MinColumns() int {
	n := 0
	for _, d := range descriptors {
		for _, c := range []int{d.columns.Term, d.columns.Definition, d.columns.Citation} {
			if c+1 > n {
				n = c + 1
			}
		}
	}
	return n
}

// ParseSource resolves a source identifier such as "directiveEN".
func ParseSource(id string) (Source, error) {
	for i, d := range descriptors {
		if d.id == id {
			return Source(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", apperr.ErrInvalidSource, id)
}

// Valid reports whether s is one of the five known sources.
func (s Source) Valid() bool {
	return s >= 0 && s < NumSources
}

// ID returns the stable identifier of s.
func (s Source) ID() string {
	if !s.Valid() {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return descriptors[s].id
}

// Label returns the human-readable name shown in pickers.
func (s Source) Label() string {
	if !s.Valid() {
		return ""
	}
	return descriptors[s].label
}

// Family returns the citation family of s.
func (s Source) Family() Family {
	return descriptors[s].family
}

// Columns returns the dataset cell positions of s.
func (s Source) Columns() Columns {
	return descriptors[s].columns
}

func (s Source) String() string {
	return s.ID()
}

// MarshalText encodes s as its identifier.
func (s Source) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", apperr.ErrInvalidSource, int(s))
	}
	return []byte(s.ID()), nil
}

// UnmarshalText decodes an identifier produced by MarshalText.
func (s *Source) UnmarshalText(text []byte) error {
	v, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
