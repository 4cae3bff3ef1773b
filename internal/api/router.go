package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/lookup"
)

// NewRouter creates a chi router with all API routes mounted.
// defaults is the selection used when a request names no source.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *lexicon.Service, defaults lookup.State, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, defaults)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/sources", h.ListSources)

	// Terms.
	r.Get("/terms", h.ListTerms)
	r.Get("/terms/{id}", h.GetTerm)

	// Dataset.
	r.Post("/reload", h.Reload)
	r.Get("/status", h.Status)

	// Formatters.
	r.Post("/format/citation", h.FormatCitation)
	r.Post("/format/definition", h.StructureDefinition)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
