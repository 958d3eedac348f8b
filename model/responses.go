package model

import (
	"github.com/erraggy/oasmodel/orderedmap"
)

// Responses maps status codes ("200", "2XX", "default") to responses in
// insertion order.
type Responses = orderedmap.Map[*Response]

// NewResponses returns an empty Responses.
func NewResponses() *Responses {
	return orderedmap.New[*Response]()
}

// Content maps media types ("application/json") to media type objects in
// insertion order.
type Content = orderedmap.Map[*MediaType]

// NewContent returns an empty Content.
func NewContent() *Content {
	return orderedmap.New[*MediaType]()
}

// Response describes a single response from an operation.
type Response struct {
	Ref         string
	Description string
	Headers     *orderedmap.Map[*Header]
	Content     *Content
	Links       *orderedmap.Map[*Link]
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (r *Response) WriteFields(w *FieldWriter) {
	w.Ref(r.Ref)
	w.String("description", r.Description)
	w.Map("headers", r.Headers)
	w.Map("content", r.Content)
	w.Map("links", r.Links)
	w.Extensions(r.Extensions)
}

// ReadFields implements Decodable.
func (r *Response) ReadFields(fr *FieldReader) {
	fr.String("$ref", &r.Ref)
	if r.Ref != "" {
		return
	}
	fr.String("description", &r.Description)
	ReadNodeMap(fr, "headers", &r.Headers)
	ReadNodeMap(fr, "content", &r.Content)
	ReadNodeMap(fr, "links", &r.Links)
	fr.Extensions(&r.Extensions)
}

// AddMediaType sets the content for a media type. An existing media type is
// replaced in place.
func (r *Response) AddMediaType(mediaType string, mt *MediaType) *Response {
	if r.Content == nil {
		r.Content = NewContent()
	}
	r.Content.Set(mediaType, mt)
	return r
}

// AddHeader sets a response header.
func (r *Response) AddHeader(name string, h *Header) *Response {
	if r.Headers == nil {
		r.Headers = orderedmap.New[*Header]()
	}
	r.Headers.Set(name, h)
	return r
}

// AddLink sets a named link.
func (r *Response) AddLink(name string, l *Link) *Response {
	if r.Links == nil {
		r.Links = orderedmap.New[*Link]()
	}
	r.Links.Set(name, l)
	return r
}

// MediaType describes the body for one media type.
type MediaType struct {
	Schema     Schema
	Example    any
	Examples   *orderedmap.Map[*Example]
	Extensions *orderedmap.Map[any]
}

// WriteFields implements Node.
func (m *MediaType) WriteFields(w *FieldWriter) {
	w.Node("schema", m.Schema)
	w.Value("example", m.Example)
	w.Map("examples", m.Examples)
	w.Extensions(m.Extensions)
}

// ReadFields implements Decodable.
func (m *MediaType) ReadFields(r *FieldReader) {
	r.Schema("schema", &m.Schema)
	r.Value("example", &m.Example)
	ReadNodeMap(r, "examples", &m.Examples)
	r.Extensions(&m.Extensions)
}

// Link describes a design-time relation from a response to an operation.
type Link struct {
	Ref          string
	OperationRef string
	OperationID  string
	Parameters   *orderedmap.Map[any]
	RequestBody  any
	Description  string
	Server       *Server
	Extensions   *orderedmap.Map[any]
}

// WriteFields implements Node.
func (l *Link) WriteFields(w *FieldWriter) {
	w.Ref(l.Ref)
	w.String("operationRef", l.OperationRef)
	w.String("operationId", l.OperationID)
	w.Map("parameters", l.Parameters)
	w.Value("requestBody", l.RequestBody)
	w.String("description", l.Description)
	w.Node("server", l.Server)
	w.Extensions(l.Extensions)
}

// ReadFields implements Decodable.
func (l *Link) ReadFields(r *FieldReader) {
	r.String("$ref", &l.Ref)
	if l.Ref != "" {
		return
	}
	r.String("operationRef", &l.OperationRef)
	r.String("operationId", &l.OperationID)
	r.AnyMap("parameters", &l.Parameters)
	r.Value("requestBody", &l.RequestBody)
	r.String("description", &l.Description)
	ReadNode(r, "server", &l.Server)
	r.Extensions(&l.Extensions)
}

// Example holds a sample value.
type Example struct {
	Ref           string
	Summary       string
	Description   string
	Value         any
	ExternalValue string
	Extensions    *orderedmap.Map[any]
}

// WriteFields implements Node.
func (e *Example) WriteFields(w *FieldWriter) {
	w.Ref(e.Ref)
	w.String("summary", e.Summary)
	w.String("description", e.Description)
	w.Value("value", e.Value)
	w.String("externalValue", e.ExternalValue)
	w.Extensions(e.Extensions)
}

// ReadFields implements Decodable.
func (e *Example) ReadFields(r *FieldReader) {
	r.String("$ref", &e.Ref)
	if e.Ref != "" {
		return
	}
	r.String("summary", &e.Summary)
	r.String("description", &e.Description)
	r.Value("value", &e.Value)
	r.String("externalValue", &e.ExternalValue)
	r.Extensions(&e.Extensions)
}
