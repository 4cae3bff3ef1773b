// Package lexicon serves glossary lookups to the outer surfaces (HTTP, MCP,
// CLI). It joins the term table, the selection rules and the text
// formatters into ready-to-display views.
package lexicon

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/starford/globelex/internal/citation"
	"github.com/starford/globelex/internal/dataset"
	"github.com/starford/globelex/internal/definition"
	"github.com/starford/globelex/internal/glossary"
	"github.com/starford/globelex/internal/lookup"
	"github.com/starford/globelex/internal/models"
	"github.com/starford/globelex/internal/render"
)

const defaultLimit = 50

// SourceInfo describes one source for pickers.
type SourceInfo struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Cols  models.Columns `json:"columns"`
}

// TermHit is one row of a search result list.
type TermHit struct {
	ID   int    `json:"id"`
	Term string `json:"term"`
}

// SideView is the display of one source's entry for a record.
type SideView struct {
	Source     models.Source       `json:"source"`
	Label      string              `json:"label"`
	Term       string              `json:"term"`
	Citation   string              `json:"citation"`
	Definition definition.Document `json:"definition"`
	HTML       string              `json:"html"`
}

// Equivalent is a term of the same record in another source.
type Equivalent struct {
	Source models.Source `json:"source"`
	Label  string        `json:"label"`
	Term   string        `json:"term"`
}

// TermView is the side-by-side comparison of a record.
type TermView struct {
	ID          int          `json:"id"`
	Active      SideView     `json:"active"`
	Compare     SideView     `json:"compare"`
	Equivalents []Equivalent `json:"equivalents"`
}

// Status summarises the loaded table.
type Status struct {
	Terms    int       `json:"terms"`
	Checksum string    `json:"checksum"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Notifier is told about the outcome of every reload.
type Notifier interface {
	PublishReloaded(count int, checksum string)
	PublishLoadFailed(err error)
}

// Service coordinates the term store and the dataset provider.
type Service struct {
	store    *glossary.Store
	provider dataset.Provider
	opts     dataset.Options
	logger   *slog.Logger

	// serialises Sync so an older snapshot never replaces a newer one
	reloadMu sync.Mutex
	notifier Notifier
}

// NewService creates a new lexicon service.
func NewService(store *glossary.Store, provider dataset.Provider, opts dataset.Options, logger *slog.Logger) *Service {
	return &Service{store: store, provider: provider, opts: opts, logger: logger}
}

// SetNotifier registers n for reload outcomes. Call it before serving.
func (s *Service) SetNotifier(n Notifier) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()
	s.notifier = n
}

// Sources lists the five sources in display order.
func (s *Service) Sources() []SourceInfo {
	out := make([]SourceInfo, 0, models.NumSources)
	for _, src := range models.Sources() {
		out = append(out, SourceInfo{ID: src.ID(), Label: src.Label(), Cols: src.Columns()})
	}
	return out
}

// Search returns the terms of source matching q. A non-positive limit uses
// the default; the total count of matches is returned alongside.
func (s *Service) Search(_ context.Context, source models.Source, q string, limit int) ([]TermHit, int, error) {
	tbl, err := s.store.Table()
	if err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	matches := lookup.Filter(tbl.Records(), source, q)
	n := min(limit, len(matches))
	hits := make([]TermHit, n)
	for i, rec := range matches[:n] {
		hits[i] = TermHit{ID: rec.ID, Term: rec.Term(source)}
	}
	return hits, len(matches), nil
}

// Term builds the comparison view of record id under the given selection.
func (s *Service) Term(_ context.Context, id int, st lookup.State) (*TermView, error) {
	tbl, err := s.store.Table()
	if err != nil {
		return nil, err
	}
	rec, err := tbl.At(id)
	if err != nil {
		return nil, err
	}
	active, err := side(rec, st.Active)
	if err != nil {
		return nil, err
	}
	compare, err := side(rec, st.Compare)
	if err != nil {
		return nil, err
	}
	eqs := lookup.Equivalents(rec, st.Active)
	view := &TermView{
		ID:          rec.ID,
		Active:      active,
		Compare:     compare,
		Equivalents: make([]Equivalent, 0, len(eqs)),
	}
	for _, src := range eqs {
		view.Equivalents = append(view.Equivalents, Equivalent{Source: src, Label: src.Label(), Term: rec.Term(src)})
	}
	return view, nil
}

// Reload re-reads the dataset. It reports whether the table changed.
// Concurrent calls run one at a time. A registered Notifier hears about
// failures and about changed tables.
func (s *Service) Reload(ctx context.Context) (bool, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	changed, err := glossary.Sync(ctx, s.store, s.provider, s.opts, s.logger)
	if err != nil {
		s.logger.Error("lexicon: reload failed", slog.String("source", s.provider.Name()), slog.String("error", err.Error()))
		if s.notifier != nil {
			s.notifier.PublishLoadFailed(err)
		}
		return false, err
	}
	if changed && s.notifier != nil {
		if tbl, err := s.store.Table(); err == nil {
			s.notifier.PublishReloaded(tbl.Len(), tbl.Checksum())
		}
	}
	return changed, nil
}

// Status describes the current table.
func (s *Service) Status(_ context.Context) (*Status, error) {
	tbl, err := s.store.Table()
	if err != nil {
		return nil, err
	}
	return &Status{
		Terms:    tbl.Len(),
		Checksum: tbl.Checksum(),
		Source:   tbl.Source(),
		LoadedAt: tbl.LoadedAt(),
	}, nil
}

// FormatCitation exposes the citation formatter.
func (s *Service) FormatCitation(raw string, source models.Source) string {
	return citation.Format(raw, source)
}

// StructureDefinition exposes the definition structurer with its HTML form.
func (s *Service) StructureDefinition(raw string) (definition.Document, string, error) {
	doc := definition.Structure(raw)
	markup, err := render.HTML(doc)
	if err != nil {
		return nil, "", err
	}
	return doc, markup, nil
}

func side(rec models.TermRecord, src models.Source) (SideView, error) {
	e := rec.Entry(src)
	doc := definition.Structure(e.Definition)
	markup, err := render.HTML(doc)
	if err != nil {
		return SideView{}, err
	}
	return SideView{
		Source:     src,
		Label:      src.Label(),
		Term:       e.Term,
		Citation:   citation.Format(e.CitationRaw, src),
		Definition: doc,
		HTML:       markup,
	}, nil
}
