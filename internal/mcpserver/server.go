// Package mcpserver serves the oasmodel formatter, validator and document
// queries as Model Context Protocol tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasmodel"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasmodel MCP server. Formats, validates and inspects OpenAPI 3.0 documents.

Every tool takes a spec object with either "file" (a path on disk) or "content" (inline JSON or YAML).

Configuration is read from OASMODEL_* environment variables set in your MCP client config:
- OASMODEL_MAX_DEPTH (default: 128) nesting limit for decoding
- OASMODEL_INDENT (default: 2) spaces per level in formatted output, 0 for compact
- OASMODEL_STRICT (default: false) treat warnings as failures in validate
- OASMODEL_NO_WARNINGS (default: false) suppress warnings in validate
- OASMODEL_LIMIT (default: 100) default page size for list results
- OASMODEL_MAX_LIMIT (default: 1000) upper bound on any requested page size
- OASMODEL_MAX_INLINE_SIZE (default: 10MiB) largest accepted document
- OASMODEL_CACHE_ENABLED (default: true), OASMODEL_CACHE_MAX_SIZE (default: 10), OASMODEL_CACHE_TTL (default: 15m)

Decoded documents are cached per session. File entries are keyed by path and content hash, inline content by its SHA-256.`

func newServer() *mcp.Server {
	impl := &mcp.Implementation{Name: "oasmodel", Version: oasmodel.Version()}
	s := mcp.NewServer(impl, &mcp.ServerOptions{Instructions: serverInstructions})
	registerAllTools(s)
	return s
}

// Run serves on stdin/stdout until the client hangs up or ctx ends.
func Run(ctx context.Context) error {
	return newServer().Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "format",
		Description: "Re-encode an OpenAPI document in canonical form: unset fields omitted, keyed collections in document order, $ref nodes rendered alone. Returns JSON by default; set yaml=true for YAML or compact=true for single-line JSON.",
	}, handleFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check an OpenAPI document for inconsistent schema constraints, malformed path templates, undeclared path parameters and unresolved $ref targets. Returns errors and warnings with JSON path locations. Use offset/limit to paginate. Defaults are configurable via OASMODEL_STRICT and OASMODEL_NO_WARNINGS.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_ref",
		Description: "Resolve a local reference such as #/components/schemas/Pet against the document's components and return the target rendered as JSON. Schema, parameter and response references follow chains to the first non-reference target.",
	}, handleResolveRef)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_schemas",
		Description: "List every schema in the document with its JSON path, type, nesting depth and whether it is a named component. Filter with components_only, inline_only, type or name. Use offset/limit to paginate.",
	}, handleListSchemas)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List every operation in the document in path order with method, path, operationId and tags. Filter with method, tag or path_prefix. Use offset/limit to paginate.",
	}, handleListOperations)
}

// paginate returns items[offset:offset+limit], clamped to the slice. A
// non-positive limit means cfg.Limit and no page exceeds cfg.MaxLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) {
		return nil
	}
	if limit <= 0 {
		limit = cfg.Limit
	}
	limit = min(limit, cfg.MaxLimit, len(items)-offset)
	return items[offset : offset+limit]
}

// makeSlice is nil for n == 0 so empty results are omitted from JSON.
func makeSlice[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, 0, n)
}

// absPath matches absolute paths under the usual Unix roots.
var absPath = regexp.MustCompile(`/(?:home|Users|root|tmp|private|var|opt|srv|mnt|etc|usr|run|snap|nix)(?:/[\w.@+-]*)*`)

// sanitizeError hides host paths from clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return absPath.ReplaceAllLiteralString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
