package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/oasjson"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document holding the components"`
	Ref  string    `json:"ref"  jsonschema:"Local reference, e.g. #/components/schemas/Pet"`
}

type resolveOutput struct {
	Ref     string `json:"ref"`
	Section string `json:"section"`
	Name    string `json:"name"`
	Target  string `json:"target"`
}

func handleResolveRef(_ context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	section, name, ok := pathutil.ParseComponentRef(input.Ref)
	if !ok {
		return errResult(fmt.Errorf("ref %q is not of the form #/components/<section>/<name>", input.Ref)), resolveOutput{}, nil
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	node, err := doc.Components.Resolve(input.Ref)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	data, err := oasjson.MarshalIndent(node, "", strings.Repeat(" ", max(cfg.Indent, 1)), oasjson.WithMaxDepth(cfg.MaxDepth))
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	return nil, resolveOutput{
		Ref:     input.Ref,
		Section: section,
		Name:    name,
		Target:  string(data),
	}, nil
}
