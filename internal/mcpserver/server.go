// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes glossary lookups for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/globelex/internal/apperr"
	"github.com/starford/globelex/internal/lexicon"
	"github.com/starford/globelex/internal/lookup"
	"github.com/starford/globelex/internal/models"
)

const searchLimit = 20

// Server wraps the MCP server with glossary tools.
type Server struct {
	mcp      *server.MCPServer
	svc      *lexicon.Service
	defaults lookup.State
}

// New creates a new MCP server with all glossary tools registered.
func New(svc *lexicon.Service, defaults lookup.State, version string) *Server {
	s := &Server{svc: svc, defaults: defaults}

	s.mcp = server.NewMCPServer(
		"GloBE Lexicon",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_sources",
		mcp.WithDescription("List the glossary sources (model rules, directive, CGI) with their IDs."),
	), s.listSources)

	s.mcp.AddTool(mcp.NewTool("search_terms",
		mcp.WithDescription("Case-insensitive substring search over the terms of one source. "+
			"An empty query lists every term of the source."),
		mcp.WithString("source", mcp.Description("Source ID (see list_sources); defaults to modeleFR")),
		mcp.WithString("query", mcp.Description("Text to look for in the term")),
	), s.searchTerms)

	s.mcp.AddTool(mcp.NewTool("get_term",
		mcp.WithDescription("Show a term side by side in two sources, with formatted citations, "+
			"structured definitions and the equivalent terms of the other sources."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Term ID from search_terms")),
		mcp.WithString("source", mcp.Description("Active source ID")),
		mcp.WithString("compare", mcp.Description("Comparison source ID; must differ from source")),
	), s.getTerm)

	s.mcp.AddTool(mcp.NewTool("format_citation",
		mcp.WithDescription("Format a raw article reference the way the glossary displays it."),
		mcp.WithString("citation", mcp.Required(), mcp.Description("Raw citation cell, e.g. 10.1")),
		mcp.WithString("source", mcp.Required(), mcp.Description("Source ID")),
	), s.formatCitation)

	s.mcp.AddTool(mcp.NewTool("structure_definition",
		mcp.WithDescription("Split a definition into paragraphs and nested list items."),
		mcp.WithString("definition", mcp.Required(), mcp.Description("Definition text with line breaks")),
	), s.structureDefinition)

	s.mcp.AddResource(
		mcp.NewResource(SourcesURI, "Glossary sources",
			mcp.WithResourceDescription("Source IDs, dataset column positions and citation forms."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSourcesResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func toolError(err error) *mcp.CallToolResult {
	if errors.Is(err, apperr.ErrNoData) {
		return mcp.NewToolResultError("glossary not loaded")
	}
	return mcp.NewToolResultError(err.Error())
}

func optionalSource(req mcp.CallToolRequest, key string) (models.Source, bool, error) {
	id := req.GetString(key, "")
	if id == "" {
		return 0, false, nil
	}
	s, err := models.ParseSource(id)
	return s, err == nil, err
}

func (s *Server) listSources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.svc.Sources())
}

func (s *Server) searchTerms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	src, ok, err := optionalSource(req, "source")
	if err != nil {
		return toolError(err), nil
	}
	if !ok {
		src = s.defaults.Active
	}
	hits, total, err := s.svc.Search(ctx, src, req.GetString("query", ""), searchLimit)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(map[string]any{
		"source": src,
		"terms":  hits,
		"total":  total,
	})
}

func (s *Server) getTerm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st := s.defaults
	src, ok, err := optionalSource(req, "source")
	if err != nil {
		return toolError(err), nil
	}
	if ok {
		st = st.SelectSource(src)
	}
	cmp, ok, err := optionalSource(req, "compare")
	if err != nil {
		return toolError(err), nil
	}
	if ok {
		if st, err = st.SelectCompare(cmp); err != nil {
			return toolError(err), nil
		}
	}

	view, err := s.svc.Term(ctx, id, st)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(view)
}

func (s *Server) formatCitation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("citation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	src, err := models.ParseSource(id)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(s.svc.FormatCitation(raw, src)), nil
}

func (s *Server) structureDefinition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("definition")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, _, err := s.svc.StructureDefinition(raw)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(doc)
}

func (s *Server) readSourcesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      SourcesURI,
			MIMEType: "text/markdown",
			Text:     SourcesGuide(),
		},
	}, nil
}
