package mcpserver

import (
	"context"

	"github.com/erraggy/oasmodel/validator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type validateInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OAS document to validate"`
	Strict     *bool     `json:"strict,omitempty"      jsonschema:"Treat warnings as failures"`
	NoWarnings *bool     `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
	Offset     int       `json:"offset,omitempty"      jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int       `json:"limit,omitempty"       jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateIssue struct {
	Path      string `json:"path"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Operation string `json:"operation,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Version      string          `json:"version"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Returned     int             `json:"returned"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func toValidateIssues(in []validator.Issue) []validateIssue {
	out := makeSlice[validateIssue](len(in))
	for _, i := range in {
		vi := validateIssue{Path: i.Path, Message: i.Message, Field: i.Field}
		if i.Operation != nil && !i.Operation.IsEmpty() {
			vi.Operation = i.Operation.String()
		}
		out = append(out, vi)
	}
	return out
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result := validator.Validate(doc,
		validator.WithStrictMode(strict),
		validator.WithIncludeWarnings(!noWarnings),
		validator.WithMaxDepth(cfg.MaxDepth),
	)

	output := validateOutput{
		Valid:        result.Valid,
		Version:      doc.OpenAPI,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Errors:       paginate(toValidateIssues(result.Errors), input.Offset, input.Limit),
	}
	if !noWarnings {
		output.Warnings = paginate(toValidateIssues(result.Warnings), input.Offset, input.Limit)
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}
