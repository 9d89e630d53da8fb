// Package mcp provides an MCP (Model Context Protocol) server adapter
// for textlens. It lets AI assistants run the analysis pipeline and
// query the document collection.
package mcp

import "errors"

// Errors returned when the server is constructed without its required ports.
var (
	ErrMissingAnalysisService = errors.New("mcp: analysis service is required")
	ErrMissingDocumentService = errors.New("mcp: document service is required")
	ErrMissingSearchService   = errors.New("mcp: search service is required")
)
