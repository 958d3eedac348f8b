package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/walker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listSchemasInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OAS document to inspect"`
	ComponentsOnly bool      `json:"components_only,omitempty" jsonschema:"Only schemas inside the components section"`
	InlineOnly     bool      `json:"inline_only,omitempty"     jsonschema:"Only schemas found under paths"`
	Type           string    `json:"type,omitempty"            jsonschema:"Filter by schema type (string, integer, number, boolean, array, object). Use ref for reference schemas."`
	Name           string    `json:"name,omitempty"            jsonschema:"Filter by component or property name (exact match)"`
	Offset         int       `json:"offset,omitempty"          jsonschema:"Skip the first N results (for pagination)"`
	Limit          int       `json:"limit,omitempty"           jsonschema:"Maximum number of results to return (default 100)"`
}

type schemaSummary struct {
	JSONPath    string `json:"path"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Ref         string `json:"ref,omitempty"`
	Depth       int    `json:"depth"`
	IsComponent bool   `json:"is_component"`
}

type listSchemasOutput struct {
	Total    int             `json:"total"`
	Matched  int             `json:"matched"`
	Returned int             `json:"returned"`
	Schemas  []schemaSummary `json:"schemas,omitempty"`
}

func handleListSchemas(_ context.Context, _ *mcp.CallToolRequest, input listSchemasInput) (*mcp.CallToolResult, listSchemasOutput, error) {
	if input.ComponentsOnly && input.InlineOnly {
		return errResult(fmt.Errorf("cannot use both components_only and inline_only")), listSchemasOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}

	collector, err := walker.CollectSchemas(doc, walker.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return errResult(err), listSchemasOutput{}, nil
	}

	source := collector.All
	switch {
	case input.ComponentsOnly:
		source = collector.Components
	case input.InlineOnly:
		source = collector.Inline
	}

	var matched []schemaSummary
	for _, info := range source {
		summary := summarizeSchema(info)
		if input.Type != "" && !matchSchemaType(summary, input.Type) {
			continue
		}
		if input.Name != "" && info.Name != input.Name {
			continue
		}
		matched = append(matched, summary)
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, listSchemasOutput{
		Total:    len(collector.All),
		Matched:  len(matched),
		Returned: len(page),
		Schemas:  page,
	}, nil
}

func summarizeSchema(info *walker.SchemaInfo) schemaSummary {
	s := schemaSummary{
		JSONPath:    info.JSONPath,
		Name:        info.Name,
		Depth:       info.Depth,
		IsComponent: info.IsComponent,
	}
	if model.IsNil(info.Schema) {
		return s
	}
	if core := info.Schema.Core(); core.IsRef() {
		s.Ref = core.Ref
	} else {
		s.Type = info.Schema.SchemaType()
	}
	return s
}

func matchSchemaType(s schemaSummary, want string) bool {
	if strings.EqualFold(want, "ref") {
		return s.Ref != ""
	}
	return s.Ref == "" && strings.EqualFold(s.Type, want)
}
