package model

import (
	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/internal/pathutil"
)

func init() {
	RegisterSchemaType(TypeString, func() Schema { return &StringSchema{} })
	RegisterSchemaType(TypeInteger, func() Schema { return &IntegerSchema{} })
	RegisterSchemaType(TypeNumber, func() Schema { return &NumberSchema{} })
	RegisterSchemaType(TypeBoolean, func() Schema { return &BooleanSchema{} })
	RegisterSchemaType(TypeArray, func() Schema { return &ArraySchema{} })
	RegisterSchemaType(TypeObject, func() Schema { return &ObjectSchema{} })
}

// StringSchema constrains string values.
type StringSchema struct {
	SchemaCore
	MinLength *int
	MaxLength *int
	Pattern   string
}

// SchemaType implements Schema.
func (*StringSchema) SchemaType() string { return TypeString }

// WriteFields implements Node.
func (s *StringSchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, TypeString)
	w.Int("minLength", s.MinLength)
	w.Int("maxLength", s.MaxLength)
	w.String("pattern", s.Pattern)
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *StringSchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
	if s.Ref != "" {
		return
	}
	r.Int("minLength", &s.MinLength)
	r.Int("maxLength", &s.MaxLength)
	r.String("pattern", &s.Pattern)
}

// NumericConstraints are the bounds shared by integer and number schemas.
// Bounds are arbitrary-precision decimals so values such as 0.1 survive a
// round trip unchanged.
type NumericConstraints struct {
	Minimum          *decimal.Decimal
	Maximum          *decimal.Decimal
	ExclusiveMinimum *bool
	ExclusiveMaximum *bool
	MultipleOf       *decimal.Decimal
}

func (n *NumericConstraints) write(w *FieldWriter) {
	w.Decimal("minimum", n.Minimum)
	w.Decimal("maximum", n.Maximum)
	w.Bool("exclusiveMinimum", n.ExclusiveMinimum)
	w.Bool("exclusiveMaximum", n.ExclusiveMaximum)
	w.Decimal("multipleOf", n.MultipleOf)
}

func (n *NumericConstraints) read(r *FieldReader) {
	r.Decimal("minimum", &n.Minimum)
	r.Decimal("maximum", &n.Maximum)
	r.Bool("exclusiveMinimum", &n.ExclusiveMinimum)
	r.Bool("exclusiveMaximum", &n.ExclusiveMaximum)
	r.Decimal("multipleOf", &n.MultipleOf)
}

// IntegerSchema constrains integral values.
type IntegerSchema struct {
	SchemaCore
	NumericConstraints
}

// SchemaType implements Schema.
func (*IntegerSchema) SchemaType() string { return TypeInteger }

// WriteFields implements Node.
func (s *IntegerSchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, TypeInteger)
	s.NumericConstraints.write(w)
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *IntegerSchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
	if s.Ref == "" {
		s.NumericConstraints.read(r)
	}
}

// NumberSchema constrains numeric values.
type NumberSchema struct {
	SchemaCore
	NumericConstraints
}

// SchemaType implements Schema.
func (*NumberSchema) SchemaType() string { return TypeNumber }

// WriteFields implements Node.
func (s *NumberSchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, TypeNumber)
	s.NumericConstraints.write(w)
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *NumberSchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
	if s.Ref == "" {
		s.NumericConstraints.read(r)
	}
}

// BooleanSchema constrains boolean values. It adds no fields of its own.
type BooleanSchema struct {
	SchemaCore
}

// SchemaType implements Schema.
func (*BooleanSchema) SchemaType() string { return TypeBoolean }

// WriteFields implements Node.
func (s *BooleanSchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, TypeBoolean)
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *BooleanSchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
}

// ArraySchema constrains array values.
type ArraySchema struct {
	SchemaCore
	Items       Schema
	MinItems    *int
	MaxItems    *int
	UniqueItems *bool
}

// SchemaType implements Schema.
func (*ArraySchema) SchemaType() string { return TypeArray }

// WriteFields implements Node.
func (s *ArraySchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, TypeArray)
	w.Node("items", s.Items)
	w.Int("minItems", s.MinItems)
	w.Int("maxItems", s.MaxItems)
	w.Bool("uniqueItems", s.UniqueItems)
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *ArraySchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
	if s.Ref != "" {
		return
	}
	r.Schema("items", &s.Items)
	r.Int("minItems", &s.MinItems)
	r.Int("maxItems", &s.MaxItems)
	r.Bool("uniqueItems", &s.UniqueItems)
}

// ObjectSchema constrains object values.
//
// additionalProperties is either a schema or a boolean. When both are set,
// AdditionalProperties wins.
type ObjectSchema struct {
	SchemaCore
	AdditionalProperties        Schema
	AdditionalPropertiesAllowed *bool
	MinProperties               *int
	MaxProperties               *int
}

// SchemaType implements Schema.
func (*ObjectSchema) SchemaType() string { return TypeObject }

// WriteFields implements Node.
func (s *ObjectSchema) WriteFields(w *FieldWriter) {
	s.WriteHead(w, TypeObject)
	if !IsNil(s.AdditionalProperties) {
		w.Node("additionalProperties", s.AdditionalProperties)
	} else {
		w.Bool("additionalProperties", s.AdditionalPropertiesAllowed)
	}
	w.Int("minProperties", s.MinProperties)
	w.Int("maxProperties", s.MaxProperties)
	s.WriteTail(w)
}

// ReadFields implements Decodable.
func (s *ObjectSchema) ReadFields(r *FieldReader) {
	s.ReadCore(r)
	if s.Ref != "" {
		return
	}
	if raw, ok := r.Raw("additionalProperties"); ok {
		switch v := raw.(type) {
		case bool:
			s.AdditionalPropertiesAllowed = &v
		default:
			ap, err := decodeSchema(v, pathutil.Join(r.Path(), "additionalProperties"), r.unknown)
			if err != nil {
				r.setErr(err)
			} else {
				s.AdditionalProperties = ap
			}
		}
	}
	r.Int("minProperties", &s.MinProperties)
	r.Int("maxProperties", &s.MaxProperties)
}

// NewRef returns a schema that only carries the reference ref.
func NewRef(ref string) *AnySchema {
	return &AnySchema{SchemaCore: SchemaCore{Ref: ref}}
}

// SchemaRef returns a reference to the named component schema,
// "#/components/schemas/<name>".
func SchemaRef(name string) *AnySchema {
	return NewRef(pathutil.SchemaRef(name))
}
