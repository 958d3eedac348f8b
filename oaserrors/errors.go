// Package oaserrors provides structured error types for oasmodel.
//
// Every type matches one sentinel through errors.Is, and can be pulled out
// of a wrapped chain with errors.As:
//
//   - ParseError (ErrParse): malformed JSON/YAML or a wrongly typed field
//   - ReferenceError (ErrReference, ErrCircularReference): an unresolvable or looping $ref
//   - ValidationError (ErrValidation): a problem reported by the validator
//   - ResourceLimitError (ErrResourceLimit): nesting past the recursion guard
//   - ConfigError (ErrConfig): a bad option or misuse of the construction API
//
// For example:
//
//	doc, err := oasjson.Unmarshal(data)
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // malformed input
//	}
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) && refErr.IsCircular {
//	    // the $ref chain loops back on itself
//	}
package oaserrors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrParse             = errors.New("parse error")
	ErrReference         = errors.New("reference error")
	ErrCircularReference = errors.New("circular reference")
	ErrValidation        = errors.New("validation error")
	ErrResourceLimit     = errors.New("resource limit exceeded")
	ErrConfig            = errors.New("configuration error")
)

// joinSegments renders the non-empty segments separated by ": ", with the
// cause's message last.
func joinSegments(cause error, segs ...string) string {
	var b strings.Builder
	for _, s := range segs {
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(s)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// ParseError reports input that could not be decoded into a document.
type ParseError struct {
	Path     string // source file, when known
	JSONPath string // dotted location inside the document, e.g. "paths./foo.get"
	Line     int    // 1-based; 0 when unknown
	Column   int    // 1-based; 0 when unknown
	Message  string
	Cause    error
}

// position renders "file:line:col", or "line N" when there is no file.
func (e *ParseError) position() string {
	var b strings.Builder
	b.WriteString(e.Path)
	if e.Line > 0 {
		if e.Path == "" {
			b.WriteString("line ")
		} else {
			b.WriteByte(':')
		}
		b.WriteString(strconv.Itoa(e.Line))
		if e.Column > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.Column))
		}
	}
	return b.String()
}

func (e *ParseError) Error() string {
	return joinSegments(e.Cause, ErrParse.Error(), e.position(), e.JSONPath, e.Message)
}

func (e *ParseError) Unwrap() error        { return e.Cause }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ReferenceError reports a $ref that cannot be followed within the
// document's components.
type ReferenceError struct {
	Ref        string
	Section    string // components section, e.g. "schemas"
	IsCircular bool
	Message    string
	Cause      error
}

func (e *ReferenceError) Error() string {
	kind := ErrReference
	if e.IsCircular {
		kind = ErrCircularReference
	}
	return joinSegments(e.Cause, kind.Error(), e.Ref, e.Message)
}

func (e *ReferenceError) Unwrap() error { return e.Cause }

// Is matches ErrReference always and ErrCircularReference for loops.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrCircularReference:
		return e.IsCircular
	}
	return false
}

// ValidationError is a single validator finding promoted to an error.
type ValidationError struct {
	Path    string // e.g. "components.schemas.Address"
	Field   string
	Value   any
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	head := ErrValidation.Error()
	if loc := strings.Trim(e.Path+"."+e.Field, "."); loc != "" {
		head += " at " + loc
	}
	return joinSegments(e.Cause, head, e.Message)
}

func (e *ValidationError) Unwrap() error        { return e.Cause }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ResourceLimitError reports that a configured bound was crossed, such as
// the maximum nesting depth while decoding, encoding or walking.
type ResourceLimitError struct {
	ResourceType string // e.g. "nesting_depth"
	Limit        int64
	Actual       int64 // 0 when unknown
	Path         string
	Message      string
}

func (e *ResourceLimitError) Error() string {
	detail := e.ResourceType
	if e.Limit > 0 {
		if e.Actual > 0 {
			detail += fmt.Sprintf(" %d > %d", e.Actual, e.Limit)
		} else {
			detail += fmt.Sprintf(" > %d", e.Limit)
		}
	}
	if e.Path != "" {
		detail += " at " + e.Path
	}
	return joinSegments(nil, ErrResourceLimit.Error(), strings.TrimSpace(detail), e.Message)
}

func (e *ResourceLimitError) Unwrap() error        { return nil }
func (e *ResourceLimitError) Is(target error) bool { return target == ErrResourceLimit }

// ConfigError reports an invalid option, an empty registry key or a nil
// value where one is required.
type ConfigError struct {
	Option  string
	Value   any
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	head := ErrConfig.Error()
	if e.Option != "" {
		head += " for " + e.Option
		if e.Value != nil {
			head += fmt.Sprintf(" (got %#v)", e.Value)
		}
	}
	return joinSegments(e.Cause, head, e.Message)
}

func (e *ConfigError) Unwrap() error        { return e.Cause }
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }
