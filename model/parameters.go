package model

import (
	"github.com/erraggy/oasmodel/orderedmap"
)

// Parameter locations.
const (
	InQuery  = "query"
	InPath   = "path"
	InHeader = "header"
	InCookie = "cookie"
)

// Parameter describes a single operation parameter.
type Parameter struct {
	Ref             string
	Name            string
	In              string
	Description     string
	Required        *bool
	Deprecated      *bool
	AllowEmptyValue *bool
	Style           string
	Explode         *bool
	AllowReserved   *bool
	Schema          Schema
	Example         any
	Examples        *orderedmap.Map[*Example]
	Content         *Content
	Extensions      *orderedmap.Map[any]
}

// NewQueryParameter returns a parameter located in the query string.
func NewQueryParameter(name string) *Parameter {
	return &Parameter{Name: name, In: InQuery}
}

// NewPathParameter returns a path parameter. Path parameters are always
// required.
func NewPathParameter(name string) *Parameter {
	return &Parameter{Name: name, In: InPath, Required: Ptr(true)}
}

// NewHeaderParameter returns a parameter carried in a request header.
func NewHeaderParameter(name string) *Parameter {
	return &Parameter{Name: name, In: InHeader}
}

// NewCookieParameter returns a parameter carried in a cookie.
func NewCookieParameter(name string) *Parameter {
	return &Parameter{Name: name, In: InCookie}
}

// WriteFields implements Node.
func (p *Parameter) WriteFields(w *FieldWriter) {
	w.Ref(p.Ref)
	w.String("name", p.Name)
	w.String("in", p.In)
	w.String("description", p.Description)
	w.Bool("required", p.Required)
	w.Bool("deprecated", p.Deprecated)
	w.Bool("allowEmptyValue", p.AllowEmptyValue)
	w.String("style", p.Style)
	w.Bool("explode", p.Explode)
	w.Bool("allowReserved", p.AllowReserved)
	w.Node("schema", p.Schema)
	w.Value("example", p.Example)
	w.Map("examples", p.Examples)
	w.Map("content", p.Content)
	w.Extensions(p.Extensions)
}

// ReadFields implements Decodable.
func (p *Parameter) ReadFields(r *FieldReader) {
	r.String("$ref", &p.Ref)
	if p.Ref != "" {
		return
	}
	r.String("name", &p.Name)
	r.String("in", &p.In)
	r.String("description", &p.Description)
	r.Bool("required", &p.Required)
	r.Bool("deprecated", &p.Deprecated)
	r.Bool("allowEmptyValue", &p.AllowEmptyValue)
	r.String("style", &p.Style)
	r.Bool("explode", &p.Explode)
	r.Bool("allowReserved", &p.AllowReserved)
	r.Schema("schema", &p.Schema)
	r.Value("example", &p.Example)
	ReadNodeMap(r, "examples", &p.Examples)
	ReadNodeMap(r, "content", &p.Content)
	r.Extensions(&p.Extensions)
}

// RequestBody describes a single request body.
type RequestBody struct {
	Ref         string
	Description string
	Content     *Content
	Required    *bool
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (b *RequestBody) WriteFields(w *FieldWriter) {
	w.Ref(b.Ref)
	w.String("description", b.Description)
	w.Map("content", b.Content)
	w.Bool("required", b.Required)
	w.Extensions(b.Extensions)
}

// ReadFields implements Decodable.
func (b *RequestBody) ReadFields(r *FieldReader) {
	r.String("$ref", &b.Ref)
	if b.Ref != "" {
		return
	}
	r.String("description", &b.Description)
	ReadNodeMap(r, "content", &b.Content)
	r.Bool("required", &b.Required)
	r.Extensions(&b.Extensions)
}

// AddMediaType sets the body content for a media type.
func (b *RequestBody) AddMediaType(mediaType string, mt *MediaType) *RequestBody {
	if b.Content == nil {
		b.Content = NewContent()
	}
	b.Content.Set(mediaType, mt)
	return b
}

// Header describes a single response or encoding header.
type Header struct {
	Ref         string
	Description string
	Required    *bool
	Deprecated  *bool
	Style       string
	Explode     *bool
	Schema      Schema
	Example     any
	Content     *Content
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (h *Header) WriteFields(w *FieldWriter) {
	w.Ref(h.Ref)
	w.String("description", h.Description)
	w.Bool("required", h.Required)
	w.Bool("deprecated", h.Deprecated)
	w.String("style", h.Style)
	w.Bool("explode", h.Explode)
	w.Node("schema", h.Schema)
	w.Value("example", h.Example)
	w.Map("content", h.Content)
	w.Extensions(h.Extensions)
}

// ReadFields implements Decodable.
func (h *Header) ReadFields(r *FieldReader) {
	r.String("$ref", &h.Ref)
	if h.Ref != "" {
		return
	}
	r.String("description", &h.Description)
	r.Bool("required", &h.Required)
	r.Bool("deprecated", &h.Deprecated)
	r.String("style", &h.Style)
	r.Bool("explode", &h.Explode)
	r.Schema("schema", &h.Schema)
	r.Value("example", &h.Example)
	ReadNodeMap(r, "content", &h.Content)
	r.Extensions(&h.Extensions)
}
