package issues

import "fmt"

// OperationContext identifies the operation an issue was found under.
type OperationContext struct {
	// Method is the HTTP method (GET, POST, etc.) - empty for path-level issues
	Method string `json:"method,omitempty"`
	// Path is the URL path template (e.g., "/users/{id}")
	Path string `json:"path,omitempty"`
	// OperationID is the operationId if defined (may be empty)
	OperationID string `json:"operationId,omitempty"`
}

// String returns a parenthesized identifier for reports, preferring the
// operationId. It returns "" for an empty context.
func (c OperationContext) String() string {
	switch {
	case c.IsEmpty():
		return ""
	case c.OperationID != "":
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	case c.Method != "":
		return fmt.Sprintf("(%s %s)", c.Method, c.Path)
	default:
		return fmt.Sprintf("(path: %s)", c.Path)
	}
}

// IsEmpty returns true if no fields are set.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
