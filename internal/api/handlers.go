package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/globelex/internal/apperr"
	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/lookup"
	"github.com/starford/globelex/internal/models"
)

// Handler holds API route handlers.
type Handler struct {
	svc      *lexicon.Service
	defaults lookup.State
}

// NewHandler creates a new Handler.
func NewHandler(svc *lexicon.Service, defaults lookup.State) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, op string, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr), errors.Is(err, apperr.ErrInvalidSource):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, apperr.ErrMalformedRow):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrNoData):
		writeJSON(w, http.StatusServiceUnavailable, errorBody("glossary not loaded"))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// source resolves an optional source ID, falling back to def.
func source(id string, def models.Source) (models.Source, error) {
	if id == "" {
		return def, nil
	}
	return models.ParseSource(id)
}

// ListSources handles GET /api/sources.
//
//	@Summary		List the glossary sources in display order
//	@Tags			sources
//	@Produce		json
//	@Success		200	{object}	SourcesResponse
//	@Security		BearerAuth
//	@Router			/sources [get]
func (h *Handler) ListSources(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SourcesResponse{Sources: h.svc.Sources()})
}

// ListTerms handles GET /api/terms.
//
//	@Summary		Filter terms of a source
//	@Tags			terms
//	@Produce		json
//	@Param			source	query		string	false	"Source ID"
//	@Param			q		query		string	false	"Case-insensitive substring"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	TermListResponse
//	@Failure		400		{object}	errResponse
//	@Failure		503		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/terms [get]
func (h *Handler) ListTerms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := TermsQuery{Source: q.Get("source"), Query: q.Get("q")}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("limit must be an integer"))
			return
		}
		query.Limit = n
	}
	if err := query.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	src, err := source(query.Source, h.defaults.Active)
	if err != nil {
		writeError(w, "list terms", err)
		return
	}

	hits, total, err := h.svc.Search(r.Context(), src, query.Query, query.Limit)
	if err != nil {
		writeError(w, "list terms", err)
		return
	}
	writeJSON(w, http.StatusOK, TermListResponse{Source: src, Terms: hits, Total: total})
}

// GetTerm handles GET /api/terms/{id}.
//
//	@Summary		Compare one term across two sources
//	@Tags			terms
//	@Produce		json
//	@Param			id		path		int		true	"Term ID"
//	@Param			source	query		string	false	"Active source ID"
//	@Param			compare	query		string	false	"Comparison source ID"
//	@Success		200		{object}	TermResponse
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Failure		503		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/terms/{id} [get]
func (h *Handler) GetTerm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("id must be an integer"))
		return
	}

	q := r.URL.Query()
	st := h.defaults
	if raw := q.Get("source"); raw != "" {
		src, err := models.ParseSource(raw)
		if err != nil {
			writeError(w, "get term", err)
			return
		}
		st = st.SelectSource(src)
	}
	if raw := q.Get("compare"); raw != "" {
		cmp, err := models.ParseSource(raw)
		if err != nil {
			writeError(w, "get term", err)
			return
		}
		if st, err = st.SelectCompare(cmp); err != nil {
			writeError(w, "get term", err)
			return
		}
	}

	view, err := h.svc.Term(r.Context(), id, st)
	if err != nil {
		writeError(w, "get term", err)
		return
	}
	writeJSON(w, http.StatusOK, TermResponse{
		State:          st.Select(id),
		CompareChoices: st.CompareChoices(),
		Term:           view,
	})
}

// Reload handles POST /api/reload.
//
//	@Summary		Re-read the dataset
//	@Tags			dataset
//	@Produce		json
//	@Success		200	{object}	ReloadResponse
//	@Failure		422	{object}	errResponse
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	changed, err := h.svc.Reload(r.Context())
	if errors.Is(err, apperr.ErrMalformedRow) {
		writeError(w, "reload", err)
		return
	}
	if err != nil {
		// The previous table, if any, stays in service.
		writeJSON(w, http.StatusServiceUnavailable, errorBody("reload failed: "+err.Error()))
		return
	}
	st, err := h.svc.Status(r.Context())
	if err != nil {
		writeError(w, "reload", err)
		return
	}
	writeJSON(w, http.StatusOK, ReloadResponse{Changed: changed, Status: st})
}

// Status handles GET /api/status.
//
//	@Summary		Describe the loaded term table
//	@Tags			dataset
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		writeError(w, "status", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// FormatCitation handles POST /api/format/citation.
//
//	@Summary		Format a raw citation for a source
//	@Tags			format
//	@Accept			json
//	@Produce		json
//	@Param			body	body		FormatCitationRequest	true	"Citation and source"
//	@Success		200		{object}	FormatCitationResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/format/citation [post]
func (h *Handler) FormatCitation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req FormatCitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	src, err := models.ParseSource(req.Source)
	if err != nil {
		writeError(w, "format citation", err)
		return
	}
	writeJSON(w, http.StatusOK, FormatCitationResponse{Citation: h.svc.FormatCitation(req.Citation, src)})
}

// StructureDefinition handles POST /api/format/definition.
//
//	@Summary		Split a definition into paragraphs and list items
//	@Tags			format
//	@Accept			json
//	@Produce		json
//	@Param			body	body		StructureDefinitionRequest	true	"Definition text"
//	@Success		200		{object}	StructureDefinitionResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/format/definition [post]
func (h *Handler) StructureDefinition(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req StructureDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	doc, markup, err := h.svc.StructureDefinition(req.Definition)
	if err != nil {
		writeError(w, "structure definition", err)
		return
	}
	writeJSON(w, http.StatusOK, StructureDefinitionResponse{Blocks: doc, HTML: markup})
}
