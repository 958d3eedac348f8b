package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/oasjson"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type formatInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OAS document to format"`
	YAML    bool      `json:"yaml,omitempty"    jsonschema:"Render YAML instead of JSON"`
	Compact bool      `json:"compact,omitempty" jsonschema:"Render single-line JSON. Ignored when yaml is set."`
	Indent  *int      `json:"indent,omitempty"  jsonschema:"Spaces per nesting level for JSON output (default from OASMODEL_INDENT)"`
}

type formatOutput struct {
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
	Document string `json:"document"`
}

func handleFormat(_ context.Context, _ *mcp.CallToolRequest, input formatInput) (*mcp.CallToolResult, formatOutput, error) {
	indent := cfg.Indent
	if input.Indent != nil {
		if *input.Indent < 0 || *input.Indent > 8 {
			return errResult(fmt.Errorf("indent must be between 0 and 8, got %d", *input.Indent)), formatOutput{}, nil
		}
		indent = *input.Indent
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	var (
		data   []byte
		format string
	)
	switch {
	case input.YAML:
		format = "yaml"
		data, err = oasjson.MarshalYAML(doc, oasjson.WithMaxDepth(cfg.MaxDepth))
	case input.Compact || indent == 0:
		format = "json"
		data, err = oasjson.Marshal(doc, oasjson.WithMaxDepth(cfg.MaxDepth))
	default:
		format = "json"
		data, err = oasjson.MarshalIndent(doc, "", strings.Repeat(" ", indent), oasjson.WithMaxDepth(cfg.MaxDepth))
	}
	if err != nil {
		return errResult(err), formatOutput{}, nil
	}

	return nil, formatOutput{Format: format, Bytes: len(data), Document: string(data)}, nil
}
