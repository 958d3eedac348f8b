package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/orderedmap"
)

// DefaultOpenAPIVersion is the "openapi" value used by NewDocument.
const DefaultOpenAPIVersion = "3.0.3"

// Document is the root of an OpenAPI 3.x document.
// A Document owns everything reachable from it; nodes are not shared
// between documents.
type Document struct {
	OpenAPI      string
	Info         *Info
	Servers      []*Server
	Paths        *Paths
	Components   *Components
	Security     []SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Extensions   *orderedmap.Map[any]
}

// NewDocument returns a document with the default OpenAPI version set.
func NewDocument() *Document {
	return &Document{OpenAPI: DefaultOpenAPIVersion}
}

// WriteFields implements Node.
func (d *Document) WriteFields(w *FieldWriter) {
	w.String("openapi", d.OpenAPI)
	w.Node("info", d.Info)
	w.Nodes("servers", NodeList(d.Servers))
	w.Map("paths", d.Paths)
	w.Node("components", d.Components)
	w.Nodes("security", NodeList(d.Security))
	w.Nodes("tags", NodeList(d.Tags))
	w.Node("externalDocs", d.ExternalDocs)
	w.Extensions(d.Extensions)
}

// ReadFields implements Decodable.
func (d *Document) ReadFields(r *FieldReader) {
	r.String("openapi", &d.OpenAPI)
	ReadNode(r, "info", &d.Info)
	ReadNodeList(r, "servers", &d.Servers)
	ReadNodeMap(r, "paths", &d.Paths)
	ReadNode(r, "components", &d.Components)
	readSecurity(r, "security", &d.Security)
	ReadNodeList(r, "tags", &d.Tags)
	ReadNode(r, "externalDocs", &d.ExternalDocs)
	r.Extensions(&d.Extensions)
}

// AddTag appends a tag.
func (d *Document) AddTag(tag *Tag) *Document {
	d.Tags = append(d.Tags, tag)
	return d
}

// AddServer appends a server.
func (d *Document) AddServer(s *Server) *Document {
	d.Servers = append(d.Servers, s)
	return d
}

// AddPathItem sets the path item for a URL template. A template that is
// already present is replaced in place.
func (d *Document) AddPathItem(template string, item *PathItem) *Document {
	if d.Paths == nil {
		d.Paths = NewPaths()
	}
	d.Paths.Set(template, item)
	return d
}

// PathItem returns the path item registered for template.
func (d *Document) PathItem(template string) (*PathItem, bool) {
	return d.Paths.Get(template)
}

// EnsureComponents returns the document's components, creating them if unset.
func (d *Document) EnsureComponents() *Components {
	if d.Components == nil {
		d.Components = &Components{}
	}
	return d.Components
}

// Info provides metadata about the API.
type Info struct {
	Title          string
	Summary        string
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	Extensions     *orderedmap.Map[any]
}

// WriteFields implements Node.
func (i *Info) WriteFields(w *FieldWriter) {
	w.String("title", i.Title)
	w.String("summary", i.Summary)
	w.String("description", i.Description)
	w.String("termsOfService", i.TermsOfService)
	w.Node("contact", i.Contact)
	w.Node("license", i.License)
	w.String("version", i.Version)
	w.Extensions(i.Extensions)
}

// ReadFields implements Decodable.
func (i *Info) ReadFields(r *FieldReader) {
	r.String("title", &i.Title)
	r.String("summary", &i.Summary)
	r.String("description", &i.Description)
	r.String("termsOfService", &i.TermsOfService)
	ReadNode(r, "contact", &i.Contact)
	ReadNode(r, "license", &i.License)
	r.String("version", &i.Version)
	r.Extensions(&i.Extensions)
}

// Contact information for the exposed API.
type Contact struct {
	Name       string
	URL        string
	Email      string
	Extensions *orderedmap.Map[any]
}

// WriteFields implements Node.
func (c *Contact) WriteFields(w *FieldWriter) {
	w.String("name", c.Name)
	w.String("url", c.URL)
	w.String("email", c.Email)
	w.Extensions(c.Extensions)
}

// ReadFields implements Decodable.
func (c *Contact) ReadFields(r *FieldReader) {
	r.String("name", &c.Name)
	r.String("url", &c.URL)
	r.String("email", &c.Email)
	r.Extensions(&c.Extensions)
}

// License information for the exposed API.
type License struct {
	Name       string
	Identifier string
	URL        string
	Extensions *orderedmap.Map[any]
}

// WriteFields implements Node.
func (l *License) WriteFields(w *FieldWriter) {
	w.String("name", l.Name)
	w.String("identifier", l.Identifier)
	w.String("url", l.URL)
	w.Extensions(l.Extensions)
}

// ReadFields implements Decodable.
func (l *License) ReadFields(r *FieldReader) {
	r.String("name", &l.Name)
	r.String("identifier", &l.Identifier)
	r.String("url", &l.URL)
	r.Extensions(&l.Extensions)
}

// ExternalDocs references external documentation.
type ExternalDocs struct {
	Description string
	URL         string
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (e *ExternalDocs) WriteFields(w *FieldWriter) {
	w.String("description", e.Description)
	w.String("url", e.URL)
	w.Extensions(e.Extensions)
}

// ReadFields implements Decodable.
func (e *ExternalDocs) ReadFields(r *FieldReader) {
	r.String("description", &e.Description)
	r.String("url", &e.URL)
	r.Extensions(&e.Extensions)
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name         string
	Description  string
	ExternalDocs *ExternalDocs
	Extensions   *orderedmap.Map[any]
}

// WriteFields implements Node.
func (t *Tag) WriteFields(w *FieldWriter) {
	w.String("name", t.Name)
	w.String("description", t.Description)
	w.Node("externalDocs", t.ExternalDocs)
	w.Extensions(t.Extensions)
}

// ReadFields implements Decodable.
func (t *Tag) ReadFields(r *FieldReader) {
	r.String("name", &t.Name)
	r.String("description", &t.Description)
	ReadNode(r, "externalDocs", &t.ExternalDocs)
	r.Extensions(&t.Extensions)
}

// Server describes a target host.
type Server struct {
	URL         string
	Description string
	Variables   *orderedmap.Map[*ServerVariable]
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (s *Server) WriteFields(w *FieldWriter) {
	w.String("url", s.URL)
	w.String("description", s.Description)
	w.Map("variables", s.Variables)
	w.Extensions(s.Extensions)
}

// ReadFields implements Decodable.
func (s *Server) ReadFields(r *FieldReader) {
	r.String("url", &s.URL)
	r.String("description", &s.Description)
	ReadNodeMap(r, "variables", &s.Variables)
	r.Extensions(&s.Extensions)
}

// ServerVariable is a substitution variable in a server URL template.
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Extensions  *orderedmap.Map[any]
}

// WriteFields implements Node.
func (v *ServerVariable) WriteFields(w *FieldWriter) {
	w.Strings("enum", v.Enum)
	w.String("default", v.Default)
	w.String("description", v.Description)
	w.Extensions(v.Extensions)
}

// ReadFields implements Decodable.
func (v *ServerVariable) ReadFields(r *FieldReader) {
	r.Strings("enum", &v.Enum)
	r.String("default", &v.Default)
	r.String("description", &v.Description)
	r.Extensions(&v.Extensions)
}

// SecurityRequirement maps a security scheme name to its required scopes.
// An empty requirement ({}) makes security optional.
type SecurityRequirement map[string][]string

// WriteFields implements Node. Scheme names are written in sorted order.
func (s SecurityRequirement) WriteFields(w *FieldWriter) {
	for _, name := range slices.Sorted(maps.Keys(s)) {
		scopes := s[name]
		if scopes == nil {
			scopes = []string{}
		}
		w.Strings(name, scopes)
	}
}

func readSecurity(r *FieldReader, name string, dst *[]SecurityRequirement) {
	v, ok := r.Raw(name)
	if !ok {
		return
	}
	list, ok := v.([]any)
	if !ok {
		r.Fail(name, "expected array, got "+kindOf(v))
		return
	}
	out := make([]SecurityRequirement, 0, len(list))
	for i, item := range list {
		obj, ok := item.(*orderedmap.Map[any])
		if !ok {
			r.Fail(fmt.Sprintf("%s[%d]", name, i), "expected object, got "+kindOf(item))
			return
		}
		req := SecurityRequirement{}
		sr := NewFieldReader(obj, fmt.Sprintf("%s[%d]", pathutil.Join(r.Path(), name), i))
		sr.unknown = r.unknown
		for _, scheme := range obj.Keys() {
			var scopes []string
			sr.Strings(scheme, &scopes)
			if scopes == nil {
				scopes = []string{}
			}
			req[scheme] = scopes
		}
		if err := sr.Err(); err != nil {
			r.setErr(err)
			return
		}
		out = append(out, req)
	}
	*dst = out
}

// DecodeDocument builds a document from a decoded JSON object tree.
func DecodeDocument(raw any) (*Document, error) {
	return decodeNode[Document](raw, "", nil)
}

// DecodeDocumentFunc is DecodeDocument with ignored keys reported to
// unknown.
func DecodeDocumentFunc(raw any, unknown UnknownFieldFunc) (*Document, error) {
	return decodeNode[Document](raw, "", unknown)
}
