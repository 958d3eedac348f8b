package model

import (
	"fmt"
	"sort"
	"sync"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

// Schema type discriminants.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Schema is a JSON-Schema-like constraint set. Concrete variants
// (*StringSchema, *IntegerSchema, ...) embed SchemaCore for the fields every
// schema shares and add their own constraints.
//
// New variants only need to implement this interface and register a factory
// with RegisterSchemaType; the encoder and decoder need no changes.
type Schema interface {
	Node
	Decodable

	// Core returns the shared fields. It never returns nil.
	Core() *SchemaCore

	// SchemaType returns the "type" discriminant, or "" for an untyped schema.
	SchemaType() string
}

// SchemaCore holds the fields shared by every schema variant.
//
// A schema with Ref set is a reference: it is rendered as {"$ref": Ref} and
// every other field is ignored.
//
// String fields such as Description are unset when empty; an explicitly
// empty string cannot be emitted.
//
// Default, Example and Enum hold opaque JSON values. Decoding produces
// decimal.Decimal for numbers, *orderedmap.Map[any] for objects and []any
// for arrays, so a Go int stored here comes back as an equal
// decimal.Decimal after a round trip.
type SchemaCore struct {
	Ref          string
	Title        string
	Description  string
	Format       string
	Default      any
	Example      any
	Nullable     *bool
	ReadOnly     *bool
	WriteOnly    *bool
	Deprecated   *bool
	ExternalDocs *ExternalDocs
	Required     []string
	// Properties keeps property declaration order.
	Properties *orderedmap.Map[Schema]
	// Enum is nil when unset; an empty non-nil slice is rendered as [].
	Enum       []any
	Extensions *orderedmap.Map[any]
}

// Core implements Schema for every variant that embeds SchemaCore.
func (c *SchemaCore) Core() *SchemaCore {
	return c
}

// IsRef reports whether the schema is a reference.
func (c *SchemaCore) IsRef() bool {
	return c.Ref != ""
}

// AddProperty sets the named property. Re-adding an existing name replaces
// the schema but keeps the property's original position.
func (c *SchemaCore) AddProperty(name string, s Schema) {
	if c.Properties == nil {
		c.Properties = orderedmap.New[Schema]()
	}
	c.Properties.Set(name, s)
}

// Property returns the named property schema.
func (c *SchemaCore) Property(name string) (Schema, bool) {
	return c.Properties.Get(name)
}

// AddRequired appends names to the required list, skipping duplicates.
func (c *SchemaCore) AddRequired(names ...string) {
	for _, n := range names {
		if !containsString(c.Required, n) {
			c.Required = append(c.Required, n)
		}
	}
}

// WriteHead writes "$ref" and the leading metadata fields followed by the
// type discriminant. Variants call it before writing their constraints.
func (c *SchemaCore) WriteHead(w *FieldWriter, schemaType string) {
	w.Ref(c.Ref)
	w.String("title", c.Title)
	w.String("description", c.Description)
	w.String("type", schemaType)
	w.String("format", c.Format)
}

// WriteTail writes the trailing shared fields. Variants call it after their
// constraints, so properties and enum always come last.
func (c *SchemaCore) WriteTail(w *FieldWriter) {
	w.Value("default", c.Default)
	w.Value("example", c.Example)
	w.Bool("nullable", c.Nullable)
	w.Bool("readOnly", c.ReadOnly)
	w.Bool("writeOnly", c.WriteOnly)
	w.Bool("deprecated", c.Deprecated)
	w.Node("externalDocs", c.ExternalDocs)
	w.Strings("required", c.Required)
	w.Map("properties", c.Properties)
	w.Values("enum", c.Enum)
	w.Extensions(c.Extensions)
}

// ReadCore reads the shared fields. A schema carrying "$ref" keeps only the
// reference.
func (c *SchemaCore) ReadCore(r *FieldReader) {
	r.String("$ref", &c.Ref)
	if c.Ref != "" {
		return
	}
	r.String("title", &c.Title)
	r.String("description", &c.Description)
	r.String("format", &c.Format)
	r.Value("default", &c.Default)
	r.Value("example", &c.Example)
	r.Bool("nullable", &c.Nullable)
	r.Bool("readOnly", &c.ReadOnly)
	r.Bool("writeOnly", &c.WriteOnly)
	r.Bool("deprecated", &c.Deprecated)
	ReadNode(r, "externalDocs", &c.ExternalDocs)
	r.Strings("required", &c.Required)
	r.SchemaMap("properties", &c.Properties)
	r.Values("enum", &c.Enum)
	r.Extensions(&c.Extensions)
}

// AnySchema is a schema without a "type" discriminant. It is used for
// references and for free-form schemas that only list properties.
type AnySchema struct {
	SchemaCore
}

// SchemaType implements Schema.
func (*AnySchema) SchemaType() string { return "" }

// WriteFields implements Node.
func (s *AnySchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, "")
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *AnySchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
}

var (
	schemaTypesMu sync.RWMutex
	schemaTypes   = map[string]func() Schema{}
)

// RegisterSchemaType registers a factory for schemas whose "type" is name.
// The decoder uses it to pick the variant for a decoded schema object.
// Registering an existing name replaces the previous factory.
func RegisterSchemaType(name string, factory func() Schema) {
	schemaTypesMu.Lock()
	defer schemaTypesMu.Unlock()
	schemaTypes[name] = factory
}

// NewSchemaOfType returns a new, empty schema of the registered variant.
func NewSchemaOfType(name string) (Schema, bool) {
	schemaTypesMu.RLock()
	factory, ok := schemaTypes[name]
	schemaTypesMu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// SchemaTypes returns the registered type names, sorted.
func SchemaTypes() []string {
	schemaTypesMu.RLock()
	defer schemaTypesMu.RUnlock()
	names := make([]string, 0, len(schemaTypes))
	for k := range schemaTypes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DecodeSchema builds a schema from a decoded JSON object. The variant is
// chosen by the "type" field; a schema without "type", or one carrying
// "$ref", decodes to *AnySchema.
func DecodeSchema(raw any, path string) (Schema, error) {
	return decodeSchema(raw, path, nil)
}

// DecodeSchemaFunc is DecodeSchema with unknown keys reported to unknown.
func DecodeSchemaFunc(raw any, path string, unknown UnknownFieldFunc) (Schema, error) {
	return decodeSchema(raw, path, unknown)
}

func decodeSchema(raw any, path string, unknown UnknownFieldFunc) (Schema, error) {
	obj, ok := raw.(*orderedmap.Map[any])
	if !ok {
		return nil, &oaserrors.ParseError{
			JSONPath: path,
			Message:  fmt.Sprintf("expected schema object, got %s", kindOf(raw)),
		}
	}

	var s Schema = &AnySchema{}
	if _, isRef := obj.Get("$ref"); !isRef {
		if t, ok := obj.Get("type"); ok && t != nil {
			name, isString := t.(string)
			if !isString {
				return nil, &oaserrors.ParseError{
					JSONPath: pathutil.Join(path, "type"),
					Message:  fmt.Sprintf("expected string, got %s", kindOf(t)),
				}
			}
			variant, known := NewSchemaOfType(name)
			if !known {
				return nil, &oaserrors.ParseError{
					JSONPath: pathutil.Join(path, "type"),
					Message:  fmt.Sprintf("unsupported schema type %q", name),
				}
			}
			s = variant
		}
	}

	r := NewFieldReader(obj, path)
	r.unknown = unknown
	r.seen["type"] = true
	s.ReadFields(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	r.finish()
	return s, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
