package model

import (
	"strings"

	"github.com/erraggy/oasmodel/orderedmap"
)

// HTTP methods a PathItem can hold an operation for, in emission order.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists every supported HTTP method in emission order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// Paths maps URL templates to path items in insertion order.
type Paths = orderedmap.Map[*PathItem]

// NewPaths returns an empty Paths.
func NewPaths() *Paths {
	return orderedmap.New[*PathItem]()
}

// PathItem describes the operations available on a single path.
// It holds at most one operation per HTTP method.
type PathItem struct {
	Ref         string
	Summary     string
	Description string
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation
	Servers     []*Server
	Parameters  []*Parameter
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (p *PathItem) WriteFields(w *FieldWriter) {
	w.Ref(p.Ref)
	w.String("summary", p.Summary)
	w.String("description", p.Description)
	for _, m := range Methods {
		w.Node(m, p.Operation(m))
	}
	w.Nodes("servers", NodeList(p.Servers))
	w.Nodes("parameters", NodeList(p.Parameters))
	w.Extensions(p.Extensions)
}

// ReadFields implements Decodable.
func (p *PathItem) ReadFields(r *FieldReader) {
	r.String("$ref", &p.Ref)
	if p.Ref != "" {
		return
	}
	r.String("summary", &p.Summary)
	r.String("description", &p.Description)
	for _, m := range Methods {
		var op *Operation
		ReadNode(r, m, &op)
		if op != nil {
			p.SetOperation(m, op)
		}
	}
	ReadNodeList(r, "servers", &p.Servers)
	ReadNodeList(r, "parameters", &p.Parameters)
	r.Extensions(&p.Extensions)
}

// slot returns the field holding the operation for method, or nil when the
// method is not supported. method is case-insensitive.
func (p *PathItem) slot(method string) **Operation {
	switch strings.ToLower(method) {
	case MethodGet:
		return &p.Get
	case MethodPut:
		return &p.Put
	case MethodPost:
		return &p.Post
	case MethodDelete:
		return &p.Delete
	case MethodOptions:
		return &p.Options
	case MethodHead:
		return &p.Head
	case MethodPatch:
		return &p.Patch
	case MethodTrace:
		return &p.Trace
	default:
		return nil
	}
}

// SetOperation sets the operation for method, replacing any existing one.
// It reports false if method is not a supported HTTP method.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	s := p.slot(method)
	if s == nil {
		return false
	}
	*s = op
	return true
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if s := p.slot(method); s != nil {
		return *s
	}
	return nil
}

// Operations returns the set operations keyed by method, in emission order.
func (p *PathItem) Operations() *orderedmap.Map[*Operation] {
	ops := orderedmap.New[*Operation]()
	for _, m := range Methods {
		if op := p.Operation(m); op != nil {
			ops.Set(m, op)
		}
	}
	return ops
}

// AddParameter appends a path-level parameter.
func (p *PathItem) AddParameter(param *Parameter) *PathItem {
	p.Parameters = append(p.Parameters, param)
	return p
}

// IsSupportedMethod reports whether method names an operation slot on
// PathItem. The check is case-insensitive.
func IsSupportedMethod(method string) bool {
	var p PathItem
	return p.slot(method) != nil
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Parameters   []*Parameter
	RequestBody  *RequestBody
	Responses    *Responses
	Deprecated   *bool
	Security     []SecurityRequirement
	Servers      []*Server
	Extensions   *orderedmap.Map[any]
}

// WriteFields implements Node.
func (o *Operation) WriteFields(w *FieldWriter) {
	w.Strings("tags", o.Tags)
	w.String("summary", o.Summary)
	w.String("description", o.Description)
	w.Node("externalDocs", o.ExternalDocs)
	w.String("operationId", o.OperationID)
	w.Nodes("parameters", NodeList(o.Parameters))
	w.Node("requestBody", o.RequestBody)
	w.Map("responses", o.Responses)
	w.Bool("deprecated", o.Deprecated)
	w.Nodes("security", NodeList(o.Security))
	w.Nodes("servers", NodeList(o.Servers))
	w.Extensions(o.Extensions)
}

// ReadFields implements Decodable.
func (o *Operation) ReadFields(r *FieldReader) {
	r.Strings("tags", &o.Tags)
	r.String("summary", &o.Summary)
	r.String("description", &o.Description)
	ReadNode(r, "externalDocs", &o.ExternalDocs)
	r.String("operationId", &o.OperationID)
	ReadNodeList(r, "parameters", &o.Parameters)
	ReadNode(r, "requestBody", &o.RequestBody)
	ReadNodeMap(r, "responses", &o.Responses)
	r.Bool("deprecated", &o.Deprecated)
	readSecurity(r, "security", &o.Security)
	ReadNodeList(r, "servers", &o.Servers)
	r.Extensions(&o.Extensions)
}

// AddTag appends a tag name.
func (o *Operation) AddTag(tag string) *Operation {
	o.Tags = append(o.Tags, tag)
	return o
}

// AddParameter appends a parameter.
func (o *Operation) AddParameter(p *Parameter) *Operation {
	o.Parameters = append(o.Parameters, p)
	return o
}

// AddResponse sets the response for a status code ("200", "2XX",
// "default"). An existing code is replaced in place.
func (o *Operation) AddResponse(code string, resp *Response) *Operation {
	if o.Responses == nil {
		o.Responses = NewResponses()
	}
	o.Responses.Set(code, resp)
	return o
}
