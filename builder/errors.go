package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/oaserrors"
)

// ComponentType names the kind of element a BuilderError refers to.
type ComponentType string

const (
	ComponentOperation ComponentType = "operation"
	ComponentPath      ComponentType = "path"
	ComponentParameter ComponentType = "parameter"
	ComponentSchema    ComponentType = "schema"
	ComponentResponse  ComponentType = "response"
	ComponentTag       ComponentType = "tag"
)

// Location is a method and path template pair, e.g. "GET /pets".
type Location struct {
	Method string
	Path   string
}

func (l Location) String() string {
	return strings.ToUpper(l.Method) + " " + l.Path
}

// BuilderError is one problem recorded while assembling a document. Every
// BuilderError matches oaserrors.ErrConfig.
type BuilderError struct {
	Component   ComponentType
	Name        string // component name or path template
	Method      string // set for operation errors
	OperationID string
	Message     string

	// FirstOccurrence is set on duplicate operationId errors.
	FirstOccurrence *Location
	Cause           error
}

func (e *BuilderError) subject() string {
	parts := make([]string, 0, 3)
	if e.Component != "" {
		parts = append(parts, string(e.Component))
	}
	if e.Method != "" {
		parts = append(parts, strings.ToUpper(e.Method))
	}
	if e.Name != "" {
		parts = append(parts, e.Name)
	}
	s := strings.Join(parts, " ")
	if e.OperationID != "" {
		s += " (operationId " + e.OperationID + ")"
	}
	return s
}

func (e *BuilderError) Error() string {
	segs := []string{"builder"}
	if s := e.subject(); s != "" {
		segs = append(segs, s)
	}
	if e.Message != "" {
		msg := e.Message
		if e.FirstOccurrence != nil {
			msg += "; first defined at " + e.FirstOccurrence.String()
		}
		segs = append(segs, msg)
	}
	if e.Cause != nil {
		segs = append(segs, e.Cause.Error())
	}
	return strings.Join(segs, ": ")
}

func (e *BuilderError) Unwrap() error        { return e.Cause }
func (e *BuilderError) Is(target error) bool { return target == oaserrors.ErrConfig }

func errDuplicateOperationID(id string, at, first Location) *BuilderError {
	return &BuilderError{
		Component:       ComponentOperation,
		Method:          at.Method,
		Name:            at.Path,
		OperationID:     id,
		Message:         fmt.Sprintf("duplicate operationId %q", id),
		FirstOccurrence: &first,
	}
}

func errUnsupportedMethod(at Location) *BuilderError {
	return &BuilderError{
		Component: ComponentOperation,
		Method:    at.Method,
		Name:      at.Path,
		Message:   "unsupported HTTP method: " + at.Method,
	}
}

func errEmptyName(c ComponentType) *BuilderError {
	return &BuilderError{Component: c, Message: "name must not be empty"}
}

func errNilValue(c ComponentType, name string) *BuilderError {
	return &BuilderError{Component: c, Name: name, Message: "value must not be nil"}
}

// BuilderErrors is everything recorded before Build, in call order.
type BuilderErrors []*BuilderError

func (errs BuilderErrors) Error() string {
	live := errs.Unwrap()
	switch len(live) {
	case 0:
		return ""
	case 1:
		if len(errs) == 1 {
			return live[0].Error()
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "builder: %d error(s)", len(errs))
	for _, e := range live {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.TrimPrefix(e.Error(), "builder: "))
	}
	return sb.String()
}

// Unwrap exposes the non-nil errors to errors.Is and errors.As.
func (errs BuilderErrors) Unwrap() []error {
	out := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}
