package lookup

import (
	"fmt"

	"github.com/starford/globelex/internal/apperr"
	"github.com/starford/globelex/internal/models"
)

// NoSelection marks a State without a selected record.
const NoSelection = -1

// State is the selection state of one lookup session. Transitions return a
// new State; Active and Compare always differ.
type State struct {
	Active   models.Source `json:"active"`
	Compare  models.Source `json:"compare"`
	Search   string        `json:"search"`
	Selected int           `json:"selected"`
}

// NewState returns a State searching in active and comparing with compare.
// When both are equal compare is reassigned as in SelectSource.
func NewState(active, compare models.Source) (State, error) {
	if !active.Valid() || !compare.Valid() {
		return State{}, fmt.Errorf("%w: active %d, compare %d", apperr.ErrInvalidSource, int(active), int(compare))
	}
	st := State{Active: active, Compare: compare, Selected: NoSelection}
	if st.Compare == st.Active {
		st.Compare = firstOther(active)
	}
	return st, nil
}

// DefaultState searches the model text in French and compares with English.
func DefaultState() State {
	return State{Active: models.ModeleFR, Compare: models.ModeleEN, Selected: NoSelection}
}

// SelectSource makes s the active source. If s was the comparison source,
// Compare moves to the first source in display order that differs from s.
func (st State) SelectSource(s models.Source) State {
	st.Active = s
	if st.Compare == s {
		st.Compare = firstOther(s)
	}
	return st
}

// SelectCompare sets the comparison source. Choosing the active source is
// rejected.
func (st State) SelectCompare(s models.Source) (State, error) {
	if !s.Valid() {
		return st, fmt.Errorf("%w: %d", apperr.ErrInvalidSource, int(s))
	}
	if s == st.Active {
		return st, fmt.Errorf("%w: compare source must differ from %s", apperr.ErrInvalidSource, st.Active)
	}
	st.Compare = s
	return st, nil
}

// SetSearch replaces the search text.
func (st State) SetSearch(q string) State {
	st.Search = q
	return st
}

// Select marks the record with the given ID as selected.
func (st State) Select(id int) State {
	st.Selected = id
	return st
}

// CompareChoices lists the sources that may be compared against Active.
func (st State) CompareChoices() []models.Source {
	out := make([]models.Source, 0, models.NumSources-1)
	for _, s := range models.Sources() {
		if s != st.Active {
			out = append(out, s)
		}
	}
	return out
}

// Results applies the state's search to records.
func (st State) Results(records []models.TermRecord) []models.TermRecord {
	return Filter(records, st.Active, st.Search)
}

func firstOther(s models.Source) models.Source {
	for _, o := range models.Sources() {
		if o != s {
			return o
		}
	}
	return s
}
