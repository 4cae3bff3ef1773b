package api

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/globelex/internal/definition"
	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/lookup"
	"github.com/starford/globelex/internal/models"
)

const maxLimit = 500

func sourceIDs() []interface{} {
	ids := make([]interface{}, 0, models.NumSources)
	for _, s := range models.Sources() {
		ids = append(ids, s.ID())
	}
	return ids
}

// TermsQuery holds the query parameters of GET /terms.
type TermsQuery struct {
	Source string
	Query  string
	Limit  int
}

// Validate validates the query.
func (q TermsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Source, validation.In(sourceIDs()...)),
		validation.Field(&q.Limit, validation.Min(0), validation.Max(maxLimit)),
	)
}

// FormatCitationRequest is the request body for formatting a citation.
type FormatCitationRequest struct {
	Citation string `json:"citation" example:"10.1"`
	Source   string `json:"source" example:"modeleFR" validate:"required"`
}

// Validate validates the request.
func (r FormatCitationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Source, validation.Required, validation.In(sourceIDs()...)),
	)
}

// StructureDefinitionRequest is the request body for structuring a definition.
type StructureDefinitionRequest struct {
	Definition string `json:"definition" example:"Désigne :\na) une entité\nb) un établissement"`
}

// SourceInfo is a source descriptor (aliased from the domain layer).
type SourceInfo = lexicon.SourceInfo

// TermHit is one search result (aliased from the domain layer).
type TermHit = lexicon.TermHit

// TermView is the comparison view (aliased from the domain layer).
type TermView = lexicon.TermView

// StatusResponse is the table status (aliased from the domain layer).
type StatusResponse = lexicon.Status

// SourcesResponse wraps the source list.
type SourcesResponse struct {
	Sources []SourceInfo `json:"sources" validate:"required"`
}

// TermListResponse wraps filtered terms.
type TermListResponse struct {
	Source models.Source `json:"source" example:"modeleFR" validate:"required"`
	Terms  []TermHit     `json:"terms" validate:"required"`
	Total  int           `json:"total" example:"42" validate:"required"`
}

// TermResponse is the comparison view together with the selection it was built for.
type TermResponse struct {
	State          lookup.State    `json:"state"`
	CompareChoices []models.Source `json:"compare_choices"`
	Term           *TermView       `json:"term"`
}

// ReloadResponse reports the outcome of a forced reload.
type ReloadResponse struct {
	Changed bool            `json:"changed"`
	Status  *StatusResponse `json:"status"`
}

// FormatCitationResponse carries a formatted citation.
type FormatCitationResponse struct {
	Citation string `json:"citation" example:"Modèle de règles, art. 10.1"`
}

// StructureDefinitionResponse carries a structured definition and its markup.
type StructureDefinitionResponse struct {
	Blocks definition.Document `json:"blocks"`
	HTML   string              `json:"html"`
}
