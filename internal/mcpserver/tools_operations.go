package mcpserver

import (
	"context"
	"slices"
	"strings"

	"github.com/erraggy/oasmodel/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listOperationsInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OAS document to inspect"`
	Method     string    `json:"method,omitempty"      jsonschema:"Filter by HTTP method (case-insensitive)"`
	Tag        string    `json:"tag,omitempty"         jsonschema:"Filter by tag name (exact match)"`
	PathPrefix string    `json:"path_prefix,omitempty" jsonschema:"Only operations whose path template starts with this prefix"`
	Offset     int       `json:"offset,omitempty"      jsonschema:"Skip the first N results (for pagination)"`
	Limit      int       `json:"limit,omitempty"       jsonschema:"Maximum number of results to return (default 100)"`
}

type operationSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

type listOperationsOutput struct {
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
}

func handleListOperations(_ context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, listOperationsOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	collector, err := walker.CollectOperations(doc, walker.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return errResult(err), listOperationsOutput{}, nil
	}

	var matched []operationSummary
	for _, info := range collector.All {
		op := info.Operation
		if input.Method != "" && !strings.EqualFold(info.Method, input.Method) {
			continue
		}
		if input.Tag != "" && !slices.Contains(op.Tags, input.Tag) {
			continue
		}
		if input.PathPrefix != "" && !strings.HasPrefix(info.PathTemplate, input.PathPrefix) {
			continue
		}
		matched = append(matched, operationSummary{
			Method:      strings.ToUpper(info.Method),
			Path:        info.PathTemplate,
			OperationID: op.OperationID,
			Summary:     op.Summary,
			Tags:        op.Tags,
			Deprecated:  op.Deprecated != nil && *op.Deprecated,
		})
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, listOperationsOutput{
		Total:      len(collector.All),
		Matched:    len(matched),
		Returned:   len(page),
		Operations: page,
	}, nil
}
