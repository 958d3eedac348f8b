package model

import (
	"fmt"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

// MaxRefDepth caps how many references a single resolution may follow.
const MaxRefDepth = 100

// Components is the registry of reusable objects. Each section is its own
// mapping, so a schema and a response may share a name.
//
// Keys are case-sensitive and non-empty; putting an existing key replaces
// its value in place. Nothing here is consulted by the encoder.
type Components struct {
	Schemas       *orderedmap.Map[Schema]
	Responses     *orderedmap.Map[*Response]
	Parameters    *orderedmap.Map[*Parameter]
	Examples      *orderedmap.Map[*Example]
	RequestBodies *orderedmap.Map[*RequestBody]
	Headers       *orderedmap.Map[*Header]
	Links         *orderedmap.Map[*Link]
	Extensions    *orderedmap.Map[any]
}

// WriteFields implements Node.
func (c *Components) WriteFields(w *FieldWriter) {
	w.Map("schemas", c.Schemas)
	w.Map("responses", c.Responses)
	w.Map("parameters", c.Parameters)
	w.Map("examples", c.Examples)
	w.Map("requestBodies", c.RequestBodies)
	w.Map("headers", c.Headers)
	w.Map("links", c.Links)
	w.Extensions(c.Extensions)
}

// ReadFields implements Decodable.
func (c *Components) ReadFields(r *FieldReader) {
	r.SchemaMap("schemas", &c.Schemas)
	ReadNodeMap(r, "responses", &c.Responses)
	ReadNodeMap(r, "parameters", &c.Parameters)
	ReadNodeMap(r, "examples", &c.Examples)
	ReadNodeMap(r, "requestBodies", &c.RequestBodies)
	ReadNodeMap(r, "headers", &c.Headers)
	ReadNodeMap(r, "links", &c.Links)
	r.Extensions(&c.Extensions)
}

func put[V any](m **orderedmap.Map[V], section, name string, v V) error {
	if name == "" {
		return &oaserrors.ConfigError{
			Option:  section,
			Message: "component name must not be empty",
		}
	}
	if *m == nil {
		*m = orderedmap.New[V]()
	}
	(*m).Set(name, v)
	return nil
}

// PutSchema stores s under name, replacing any schema already there.
func (c *Components) PutSchema(name string, s Schema) error {
	return put(&c.Schemas, pathutil.SectionSchemas, name, s)
}

// Schema returns the schema stored under name.
func (c *Components) Schema(name string) (Schema, bool) {
	if c == nil {
		return nil, false
	}
	return c.Schemas.Get(name)
}

// PutResponse stores a reusable response.
func (c *Components) PutResponse(name string, r *Response) error {
	return put(&c.Responses, pathutil.SectionResponses, name, r)
}

// Response returns the response stored under name.
func (c *Components) Response(name string) (*Response, bool) {
	if c == nil {
		return nil, false
	}
	return c.Responses.Get(name)
}

// PutParameter stores a reusable parameter.
func (c *Components) PutParameter(name string, p *Parameter) error {
	return put(&c.Parameters, pathutil.SectionParameters, name, p)
}

// Parameter returns the parameter stored under name.
func (c *Components) Parameter(name string) (*Parameter, bool) {
	if c == nil {
		return nil, false
	}
	return c.Parameters.Get(name)
}

// PutExample stores a reusable example.
func (c *Components) PutExample(name string, e *Example) error {
	return put(&c.Examples, pathutil.SectionExamples, name, e)
}

// Example returns the example stored under name.
func (c *Components) Example(name string) (*Example, bool) {
	if c == nil {
		return nil, false
	}
	return c.Examples.Get(name)
}

// PutRequestBody stores a reusable request body.
func (c *Components) PutRequestBody(name string, b *RequestBody) error {
	return put(&c.RequestBodies, pathutil.SectionRequestBodies, name, b)
}

// RequestBody returns the request body stored under name.
func (c *Components) RequestBody(name string) (*RequestBody, bool) {
	if c == nil {
		return nil, false
	}
	return c.RequestBodies.Get(name)
}

// PutHeader stores a reusable header.
func (c *Components) PutHeader(name string, h *Header) error {
	return put(&c.Headers, pathutil.SectionHeaders, name, h)
}

// Header returns the header stored under name.
func (c *Components) Header(name string) (*Header, bool) {
	if c == nil {
		return nil, false
	}
	return c.Headers.Get(name)
}

// PutLink stores a reusable link.
func (c *Components) PutLink(name string, l *Link) error {
	return put(&c.Links, pathutil.SectionLinks, name, l)
}

// Link returns the link stored under name.
func (c *Components) Link(name string) (*Link, bool) {
	if c == nil {
		return nil, false
	}
	return c.Links.Get(name)
}

// ResolveSchema looks up the schema a reference points to, following
// references between component schemas until it reaches one with content.
// A missing target or a reference into another section returns a
// *oaserrors.ReferenceError; a loop sets its IsCircular flag.
func (c *Components) ResolveSchema(ref string) (Schema, error) {
	return resolve(c, ref, pathutil.SectionSchemas, func(c *Components) *orderedmap.Map[Schema] {
		return c.Schemas
	}, func(s Schema) string {
		if IsNil(s) {
			return ""
		}
		return s.Core().Ref
	})
}

// ResolveParameter looks up the parameter a reference points to.
func (c *Components) ResolveParameter(ref string) (*Parameter, error) {
	return resolve(c, ref, pathutil.SectionParameters, func(c *Components) *orderedmap.Map[*Parameter] {
		return c.Parameters
	}, func(p *Parameter) string {
		if p == nil {
			return ""
		}
		return p.Ref
	})
}

// ResolveResponse looks up the response a reference points to.
func (c *Components) ResolveResponse(ref string) (*Response, error) {
	return resolve(c, ref, pathutil.SectionResponses, func(c *Components) *orderedmap.Map[*Response] {
		return c.Responses
	}, func(r *Response) string {
		if r == nil {
			return ""
		}
		return r.Ref
	})
}

// Resolve looks up the component any local reference points to, following
// reference chains within its section. Unknown sections and malformed
// references return a *oaserrors.ReferenceError.
func (c *Components) Resolve(ref string) (Node, error) {
	section, _, ok := pathutil.ParseComponentRef(ref)
	if !ok {
		return nil, &oaserrors.ReferenceError{Ref: ref, Message: "not a local component reference"}
	}
	switch section {
	case pathutil.SectionSchemas:
		return c.ResolveSchema(ref)
	case pathutil.SectionParameters:
		return asNode(c.ResolveParameter(ref))
	case pathutil.SectionResponses:
		return asNode(c.ResolveResponse(ref))
	case pathutil.SectionExamples:
		return asNode(resolve(c, ref, section, func(c *Components) *orderedmap.Map[*Example] {
			return c.Examples
		}, func(e *Example) string {
			if e == nil {
				return ""
			}
			return e.Ref
		}))
	case pathutil.SectionRequestBodies:
		return asNode(resolve(c, ref, section, func(c *Components) *orderedmap.Map[*RequestBody] {
			return c.RequestBodies
		}, func(b *RequestBody) string {
			if b == nil {
				return ""
			}
			return b.Ref
		}))
	case pathutil.SectionHeaders:
		return asNode(resolve(c, ref, section, func(c *Components) *orderedmap.Map[*Header] {
			return c.Headers
		}, func(h *Header) string {
			if h == nil {
				return ""
			}
			return h.Ref
		}))
	case pathutil.SectionLinks:
		return asNode(resolve(c, ref, section, func(c *Components) *orderedmap.Map[*Link] {
			return c.Links
		}, func(l *Link) string {
			if l == nil {
				return ""
			}
			return l.Ref
		}))
	default:
		return nil, &oaserrors.ReferenceError{Ref: ref, Section: section, Message: "unknown components section"}
	}
}

// asNode keeps a typed nil from becoming a non-nil Node.
func asNode[T Node](v T, err error) (Node, error) {
	if err != nil || IsNil(v) {
		return nil, err
	}
	return v, nil
}

func resolve[V any](c *Components, ref, section string, sectionOf func(*Components) *orderedmap.Map[V], refOf func(V) string) (V, error) {
	var zero V
	visited := make(map[string]bool)
	for depth := 0; ; depth++ {
		if depth >= MaxRefDepth {
			return zero, &oaserrors.ReferenceError{
				Ref:     ref,
				Section: section,
				Message: fmt.Sprintf("exceeded maximum reference depth of %d", MaxRefDepth),
			}
		}
		if visited[ref] {
			return zero, &oaserrors.ReferenceError{Ref: ref, Section: section, IsCircular: true}
		}
		visited[ref] = true

		got, name, ok := pathutil.ParseComponentRef(ref)
		if !ok {
			return zero, &oaserrors.ReferenceError{
				Ref:     ref,
				Section: section,
				Message: "not a local component reference",
			}
		}
		if got != section {
			return zero, &oaserrors.ReferenceError{
				Ref:     ref,
				Section: section,
				Message: fmt.Sprintf("points into %q, expected %q", got, section),
			}
		}
		if c == nil {
			return zero, &oaserrors.ReferenceError{Ref: ref, Section: section, Message: "document has no components"}
		}
		v, found := sectionOf(c).Get(name)
		if !found {
			return zero, &oaserrors.ReferenceError{
				Ref:     ref,
				Section: section,
				Message: fmt.Sprintf("component %q not found", name),
			}
		}
		next := refOf(v)
		if next == "" {
			return v, nil
		}
		ref = next
	}
}
