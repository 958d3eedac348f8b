package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/walker"
)

func (r *run) validateRoot(doc *model.Document) {
	switch {
	case doc.OpenAPI == "":
		r.addError("", "openapi version is required", withField("openapi"))
	case !strings.HasPrefix(doc.OpenAPI, "3."):
		r.addError("", fmt.Sprintf("unsupported openapi version %q", doc.OpenAPI),
			withField("openapi"), withValue(doc.OpenAPI))
	}

	if doc.Info == nil {
		r.addWarning("", "info object is missing", withField("info"))
	} else {
		if strings.TrimSpace(doc.Info.Title) == "" {
			r.addWarning("info", "title is empty", withField("title"))
		}
		if strings.TrimSpace(doc.Info.Version) == "" {
			r.addWarning("info", "version is empty", withField("version"))
		}
	}

	seen := make(map[string]bool, len(doc.Tags))
	for i, tag := range doc.Tags {
		if tag == nil {
			continue
		}
		path := "tags[" + strconv.Itoa(i) + "]"
		if tag.Name == "" {
			r.addError(path, "tag name is empty", withField("name"))
			continue
		}
		if seen[tag.Name] {
			r.addWarning(path, fmt.Sprintf("duplicate tag %q", tag.Name), withField("name"), withValue(tag.Name))
		}
		seen[tag.Name] = true
	}
}

// onPathItem checks the path template itself.
func (r *run) onPathItem(wc *walker.WalkContext, _ *model.PathItem) walker.Action {
	tpl := wc.PathTemplate
	if !strings.HasPrefix(tpl, "/") {
		r.addError(wc.JSONPath, "path must begin with '/'", withValue(tpl))
		return walker.Continue
	}
	if err := validatePathTemplate(tpl); err != nil {
		r.addError(wc.JSONPath, err.Error(), withValue(tpl))
	}
	if len(tpl) > 1 && strings.HasSuffix(tpl, "/") {
		r.addWarning(wc.JSONPath, "path has a trailing slash", withValue(tpl))
	}
	return walker.Continue
}

// validatePathTemplate returns an error if the template is malformed
// (unbalanced braces, empty or duplicate parameters).
func validatePathTemplate(tpl string) error {
	if strings.Contains(tpl, "//") {
		return fmt.Errorf("path contains consecutive slashes")
	}
	if strings.ContainsAny(tpl, "?#") {
		return fmt.Errorf("path contains a query or fragment")
	}

	open := false
	for i, ch := range tpl {
		switch ch {
		case '{':
			if open {
				return fmt.Errorf("nested braces are not allowed at position %d", i)
			}
			open = true
		case '}':
			if !open {
				return fmt.Errorf("unexpected closing brace at position %d", i)
			}
			open = false
		}
	}
	if open {
		return fmt.Errorf("unclosed brace in path template")
	}
	if strings.Contains(tpl, "{}") {
		return fmt.Errorf("empty parameter name in path template")
	}

	seen := make(map[string]bool)
	for _, name := range pathutil.TemplateParams(tpl) {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("empty parameter name in path template")
		}
		if seen[name] {
			return fmt.Errorf("duplicate parameter name %q in path template", name)
		}
		seen[name] = true
	}
	return nil
}

func (r *run) onOperation(wc *walker.WalkContext, op *model.Operation) walker.Action {
	ctx := withOperation(wc, op)

	if op.OperationID != "" {
		if first, dup := r.opIDs[op.OperationID]; dup {
			r.addError(wc.JSONPath, fmt.Sprintf("duplicate operationId %q (first declared at %s)", op.OperationID, first),
				withField("operationId"), withValue(op.OperationID), ctx)
		} else {
			r.opIDs[op.OperationID] = wc.JSONPath
		}
	}

	if op.Responses.Len() == 0 {
		r.addWarning(wc.JSONPath, "operation declares no responses", withField("responses"), ctx)
	}
	for code := range op.Responses.All() {
		if !isValidStatusCode(code) {
			r.addError(pathutil.Join(wc.JSONPath, "responses"), fmt.Sprintf("invalid status code %q", code),
				withField(code), withValue(code), ctx)
		}
	}

	r.checkPathParameters(wc, op, ctx)
	return walker.Continue
}

// isValidStatusCode accepts "default", a three digit code in 100..599, or a
// range such as "2XX".
func isValidStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != 3 || code[0] < '1' || code[0] > '5' {
		return false
	}
	if code[1:] == "XX" {
		return true
	}
	_, err := strconv.Atoi(code)
	return err == nil
}

// checkPathParameters matches template parameters against the in: path
// parameters declared on the path item and the operation.
func (r *run) checkPathParameters(wc *walker.WalkContext, op *model.Operation, ctx func(*Issue)) {
	item, ok := r.doc.PathItem(wc.PathTemplate)
	if !ok || item == nil {
		return
	}

	declared := make(map[string]bool)
	params := make([]*model.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	params = append(params, item.Parameters...)
	params = append(params, op.Parameters...)
	for _, p := range params {
		if p == nil {
			continue
		}
		if p.Ref != "" {
			resolved, err := r.doc.Components.ResolveParameter(p.Ref)
			if err != nil {
				// reported by onRef
				continue
			}
			p = resolved
		}
		if p.In != model.InPath {
			continue
		}
		declared[p.Name] = true
		if p.Required == nil || !*p.Required {
			r.addError(wc.JSONPath, fmt.Sprintf("path parameter %q must be required", p.Name),
				withField("parameters"), withValue(p.Name), ctx)
		}
	}

	inTemplate := make(map[string]bool)
	for _, name := range pathutil.TemplateParams(wc.PathTemplate) {
		inTemplate[name] = true
		if !declared[name] {
			r.addError(wc.JSONPath, fmt.Sprintf("path parameter %q is not declared", name),
				withField("parameters"), withValue(name), ctx)
		}
	}
	for _, p := range params {
		if p == nil || p.Ref != "" || p.In != model.InPath {
			continue
		}
		if !inTemplate[p.Name] {
			r.addError(wc.JSONPath, fmt.Sprintf("path parameter %q does not appear in %s", p.Name, wc.PathTemplate),
				withField("parameters"), withValue(p.Name), ctx)
		}
	}
}

// refSections maps node types to the components section their references
// must point into.
var refSections = map[walker.RefNodeType]string{
	walker.RefNodeSchema:      pathutil.SectionSchemas,
	walker.RefNodeParameter:   pathutil.SectionParameters,
	walker.RefNodeResponse:    pathutil.SectionResponses,
	walker.RefNodeRequestBody: pathutil.SectionRequestBodies,
	walker.RefNodeHeader:      pathutil.SectionHeaders,
	walker.RefNodeExample:     pathutil.SectionExamples,
	walker.RefNodeLink:        pathutil.SectionLinks,
}

func (r *run) onRef(wc *walker.WalkContext, ref *walker.RefInfo) walker.Action {
	if !strings.HasPrefix(ref.Ref, "#") {
		r.addWarning(ref.SourcePath, "external reference is not checked", withField("$ref"), withValue(ref.Ref))
		return walker.Continue
	}

	section, name, ok := pathutil.ParseComponentRef(ref.Ref)
	if !ok {
		r.addError(ref.SourcePath, "reference is not of the form #/components/<section>/<name>",
			withField("$ref"), withValue(ref.Ref))
		return walker.Continue
	}
	want, known := refSections[ref.NodeType]
	if !known {
		r.addError(ref.SourcePath, fmt.Sprintf("%s references cannot point into components", ref.NodeType),
			withField("$ref"), withValue(ref.Ref))
		return walker.Continue
	}
	if section != want {
		r.addError(ref.SourcePath, fmt.Sprintf("%s reference points into %q, expected %q", ref.NodeType, section, want),
			withField("$ref"), withValue(ref.Ref))
		return walker.Continue
	}
	if !r.hasComponent(section, name) {
		r.addError(ref.SourcePath, fmt.Sprintf("unresolved reference to %s %q", want, name),
			withField("$ref"), withValue(ref.Ref))
		return walker.Continue
	}

	if section == pathutil.SectionSchemas {
		var refErr *oaserrors.ReferenceError
		if _, err := r.doc.Components.ResolveSchema(ref.Ref); errors.As(err, &refErr) && refErr.IsCircular {
			r.addError(ref.SourcePath, "reference chain loops without reaching a schema",
				withField("$ref"), withValue(ref.Ref))
		}
	}
	return walker.Continue
}

func (r *run) hasComponent(section, name string) bool {
	c := r.doc.Components
	if c == nil {
		return false
	}
	switch section {
	case pathutil.SectionSchemas:
		return c.Schemas.Has(name)
	case pathutil.SectionParameters:
		return c.Parameters.Has(name)
	case pathutil.SectionResponses:
		return c.Responses.Has(name)
	case pathutil.SectionRequestBodies:
		return c.RequestBodies.Has(name)
	case pathutil.SectionHeaders:
		return c.Headers.Has(name)
	case pathutil.SectionExamples:
		return c.Examples.Has(name)
	case pathutil.SectionLinks:
		return c.Links.Has(name)
	default:
		return false
	}
}
