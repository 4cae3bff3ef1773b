package glossary

import (
	"sync/atomic"
	"time"

	"github.com/starford/globelex/internal/apperr"
	"github.com/starford/globelex/internal/models"
)

// Table is an immutable, ordered term table.
type Table struct {
	records  []models.TermRecord
	checksum string
	source   string
	loadedAt time.Time
}

// NewTable wraps records. The caller must not modify records afterwards.
func NewTable(records []models.TermRecord, checksum, source string) *Table {
	return &Table{
		records:  records,
		checksum: checksum,
		source:   source,
		loadedAt: time.Now(),
	}
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the record with the given ID.
func (t *Table) At(id int) (models.TermRecord, error) {
	if id < 0 || id >= len(t.records) {
		return models.TermRecord{}, apperr.ErrNotFound
	}
	return t.records[id], nil
}

// Records returns the records in table order. The slice is shared and must be
// treated as read-only.
func (t *Table) Records() []models.TermRecord { return t.records }

// Checksum returns the SHA-256 of the dataset the table was built from.
func (t *Table) Checksum() string { return t.checksum }

// Source returns the dataset location.
func (t *Table) Source() string { return t.source }

// LoadedAt returns when the table was built.
func (t *Table) LoadedAt() time.Time { return t.loadedAt }

// Store holds the current table. The table is swapped wholesale on reload, so
// readers never observe a partially built table.
type Store struct {
	current atomic.Pointer[Table]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Table returns the current table, or apperr.ErrNoData before the first
// successful load.
func (s *Store) Table() (*Table, error) {
	t := s.current.Load()
	if t == nil {
		return nil, apperr.ErrNoData
	}
	return t, nil
}

// Replace installs t as the current table.
func (s *Store) Replace(t *Table) {
	s.current.Store(t)
}
