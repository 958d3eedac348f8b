// Package issues provides the issue type reported by the validator.
package issues

import (
	"fmt"

	"github.com/erraggy/oasmodel/internal/severity"
)

// Issue represents a single problem found in a document.
type Issue struct {
	// Path is the JSON path to the problematic node (e.g., "paths./pets.get.responses")
	Path string `json:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message"`
	// Severity indicates the severity level of the issue
	Severity severity.Severity `json:"severity"`
	// Field is the specific field name that has the issue
	Field string `json:"field,omitempty"`
	// Value is the problematic value (optional)
	Value any `json:"value,omitempty"`
	// Operation identifies the operation the issue belongs to. Nil outside
	// paths.
	Operation *OperationContext `json:"operation,omitempty"`
}

// String returns a one-line report, prefixed by the severity symbol:
//
//	✗ components.schemas.Name: minLength 5 exceeds maxLength 2
func (i Issue) String() string {
	where := i.Path
	if i.Operation != nil && !i.Operation.IsEmpty() {
		where = fmt.Sprintf("%s %s", i.Path, i.Operation.String())
	}
	if where == "" {
		where = "(document)"
	}
	return fmt.Sprintf("%s %s: %s", i.Severity.Symbol(), where, i.Message)
}

// FieldPath returns the path of the offending field: Path joined with Field
// when Field is set.
func (i Issue) FieldPath() string {
	switch {
	case i.Field == "":
		return i.Path
	case i.Path == "":
		return i.Field
	default:
		return i.Path + "." + i.Field
	}
}
