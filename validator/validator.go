package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/oasmodel/internal/issues"
	"github.com/erraggy/oasmodel/internal/severity"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/walker"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a document that third-party tooling would reject
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a likely mistake or recommendation
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

// Issue is a single validation finding.
type Issue = issues.Issue

// OperationContext identifies the operation an issue was found under.
type OperationContext = issues.OperationContext

// Result contains the findings of a validation run.
type Result struct {
	// Valid is true if no errors were found. In strict mode warnings also
	// count.
	Valid bool
	// Errors contains all validation errors in document order
	Errors []Issue
	// Warnings contains all validation warnings in document order
	Warnings []Issue
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int

	strict bool
}

// Issues returns errors followed by warnings.
func (r *Result) Issues() []Issue {
	out := make([]Issue, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Err returns nil for a valid result. Otherwise each failing issue becomes
// an *oaserrors.ValidationError and the errors are joined.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	failing := r.Errors
	if r.strict {
		failing = r.Issues()
	}
	errs := make([]error, 0, len(failing))
	for _, i := range failing {
		errs = append(errs, &oaserrors.ValidationError{
			Path:    i.Path,
			Field:   i.Field,
			Value:   i.Value,
			Message: i.Message,
		})
	}
	return errors.Join(errs...)
}

// String renders one issue per line.
func (r *Result) String() string {
	var sb strings.Builder
	for _, i := range r.Issues() {
		sb.WriteString(i.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Validator checks a document for internally inconsistent constraints,
// dangling references and common authoring mistakes. It never evaluates
// data against schemas.
type Validator struct {
	cfg *config
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	return &Validator{cfg: applyOptions(opts...)}
}

// Validate checks doc with a one-off Validator.
func Validate(doc *model.Document, opts ...Option) *Result {
	return New(opts...).Validate(doc)
}

// Validate checks doc. A nil document yields a single error.
func (v *Validator) Validate(doc *model.Document) *Result {
	run := &run{
		cfg:    v.cfg,
		result: &Result{strict: v.cfg.strict},
		opIDs:  make(map[string]string),
	}
	if doc == nil {
		run.addError("", "document is nil")
	} else {
		run.validate(doc)
	}

	r := run.result
	if !v.cfg.includeWarnings {
		r.Warnings = nil
	}
	r.ErrorCount = len(r.Errors)
	r.WarningCount = len(r.Warnings)
	r.Valid = r.ErrorCount == 0 && (!v.cfg.strict || r.WarningCount == 0)
	v.cfg.logger.Debug("validation finished", "errors", r.ErrorCount, "warnings", r.WarningCount, "valid", r.Valid)
	return r
}

// run holds the state of one Validate call.
type run struct {
	cfg    *config
	result *Result
	doc    *model.Document

	// opIDs maps an operationId to the JSON path that first declared it.
	opIDs map[string]string
}

func (r *run) validate(doc *model.Document) {
	r.doc = doc
	r.validateRoot(doc)

	err := walker.Walk(doc,
		walker.WithMaxDepth(r.cfg.maxDepth),
		walker.WithLogger(r.cfg.logger),
		walker.WithPathItemHandler(r.onPathItem),
		walker.WithOperationHandler(r.onOperation),
		walker.WithSchemaHandler(r.onSchema),
		walker.WithRefHandler(r.onRef),
	)
	if err != nil {
		var limit *oaserrors.ResourceLimitError
		if errors.As(err, &limit) {
			r.addError(limit.Path, fmt.Sprintf("schema nesting exceeds maximum depth of %d", limit.Limit))
			return
		}
		r.addError("", err.Error())
	}
}

func (r *run) add(sev Severity, path, message string, opts ...func(*Issue)) {
	issue := Issue{Path: path, Message: message, Severity: sev}
	for _, opt := range opts {
		opt(&issue)
	}
	if sev == SeverityError {
		r.result.Errors = append(r.result.Errors, issue)
	} else {
		r.result.Warnings = append(r.result.Warnings, issue)
	}
}

// addError appends a validation error.
func (r *run) addError(path, message string, opts ...func(*Issue)) {
	r.add(SeverityError, path, message, opts...)
}

// addWarning appends a validation warning.
func (r *run) addWarning(path, message string, opts ...func(*Issue)) {
	r.add(SeverityWarning, path, message, opts...)
}

// withField sets the Field on an Issue.
func withField(field string) func(*Issue) {
	return func(i *Issue) { i.Field = field }
}

// withValue sets the Value on an Issue.
func withValue(value any) func(*Issue) {
	return func(i *Issue) { i.Value = value }
}

// withOperation attaches the operation context of wc, if any.
func withOperation(wc *walker.WalkContext, op *model.Operation) func(*Issue) {
	return func(i *Issue) {
		if !wc.InPathsScope() {
			return
		}
		oc := &OperationContext{Path: wc.PathTemplate, Method: strings.ToUpper(wc.Method)}
		if op != nil {
			oc.OperationID = op.OperationID
		}
		i.Operation = oc
	}
}
