package builder

import (
	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/orderedmap"
)

// base holds the setters every schema builder shares. B is the concrete
// builder type, so chained calls keep returning it.
type base[B any] struct {
	self B
	core *model.SchemaCore
}

// Title sets the schema title.
func (b *base[B]) Title(title string) B {
	b.core.Title = title
	return b.self
}

// Description sets the schema description.
func (b *base[B]) Description(desc string) B {
	b.core.Description = desc
	return b.self
}

// Format sets the format hint (e.g. "uuid", "int64").
func (b *base[B]) Format(format string) B {
	b.core.Format = format
	return b.self
}

// Default sets the default value.
func (b *base[B]) Default(v any) B {
	b.core.Default = v
	return b.self
}

// Example sets the example value.
func (b *base[B]) Example(v any) B {
	b.core.Example = v
	return b.self
}

// Nullable sets the nullable flag.
func (b *base[B]) Nullable(v bool) B {
	b.core.Nullable = &v
	return b.self
}

// ReadOnly sets the readOnly flag.
func (b *base[B]) ReadOnly(v bool) B {
	b.core.ReadOnly = &v
	return b.self
}

// WriteOnly sets the writeOnly flag.
func (b *base[B]) WriteOnly(v bool) B {
	b.core.WriteOnly = &v
	return b.self
}

// Deprecated sets the deprecated flag.
func (b *base[B]) Deprecated(v bool) B {
	b.core.Deprecated = &v
	return b.self
}

// ExternalDocs points at further documentation.
func (b *base[B]) ExternalDocs(url, description string) B {
	b.core.ExternalDocs = &model.ExternalDocs{URL: url, Description: description}
	return b.self
}

// Enum sets the allowed values. Enum() with no arguments sets an empty,
// present list.
func (b *base[B]) Enum(values ...any) B {
	b.core.Enum = append([]any{}, values...)
	return b.self
}

// Property adds or replaces a property. A replaced property keeps its
// position.
func (b *base[B]) Property(name string, s model.Schema) B {
	b.core.AddProperty(name, s)
	return b.self
}

// Required marks property names as required.
func (b *base[B]) Required(names ...string) B {
	b.core.AddRequired(names...)
	return b.self
}

// Extension sets a specification extension. key must start with "x-";
// other keys are never written.
func (b *base[B]) Extension(key string, v any) B {
	if b.core.Extensions == nil {
		b.core.Extensions = orderedmap.New[any]()
	}
	b.core.Extensions.Set(key, v)
	return b.self
}

// Ref turns the schema into a reference. Every other field is then ignored
// on output.
func (b *base[B]) Ref(ref string) B {
	b.core.Ref = ref
	return b.self
}

// numeric holds the bound setters shared by integer and number builders.
type numeric[B any] struct {
	self B
	n    *model.NumericConstraints
}

// Minimum sets the inclusive lower bound.
func (b *numeric[B]) Minimum(v decimal.Decimal) B {
	b.n.Minimum = &v
	return b.self
}

// Maximum sets the inclusive upper bound.
func (b *numeric[B]) Maximum(v decimal.Decimal) B {
	b.n.Maximum = &v
	return b.self
}

// MultipleOf requires values to be a multiple of v.
func (b *numeric[B]) MultipleOf(v decimal.Decimal) B {
	b.n.MultipleOf = &v
	return b.self
}

// MinimumInt is Minimum for an integer bound.
func (b *numeric[B]) MinimumInt(v int64) B {
	return b.Minimum(decimal.NewFromInt(v))
}

// MaximumInt is Maximum for an integer bound.
func (b *numeric[B]) MaximumInt(v int64) B {
	return b.Maximum(decimal.NewFromInt(v))
}

// MultipleOfInt is MultipleOf for an integer step.
func (b *numeric[B]) MultipleOfInt(v int64) B {
	return b.MultipleOf(decimal.NewFromInt(v))
}

// ExclusiveMinimum makes the lower bound exclusive.
func (b *numeric[B]) ExclusiveMinimum(v bool) B {
	b.n.ExclusiveMinimum = &v
	return b.self
}

// ExclusiveMaximum makes the upper bound exclusive.
func (b *numeric[B]) ExclusiveMaximum(v bool) B {
	b.n.ExclusiveMaximum = &v
	return b.self
}

// StringBuilder builds a *model.StringSchema.
type StringBuilder struct {
	base[*StringBuilder]
	s *model.StringSchema
}

// String starts a string schema.
func String() *StringBuilder {
	b := &StringBuilder{s: &model.StringSchema{}}
	b.base = base[*StringBuilder]{self: b, core: b.s.Core()}
	return b
}

// MinLength sets the minimum length. It is not checked against MaxLength.
func (b *StringBuilder) MinLength(n int) *StringBuilder {
	b.s.MinLength = &n
	return b
}

// MaxLength sets the maximum length.
func (b *StringBuilder) MaxLength(n int) *StringBuilder {
	b.s.MaxLength = &n
	return b
}

// Pattern sets the regular expression values must match.
func (b *StringBuilder) Pattern(p string) *StringBuilder {
	b.s.Pattern = p
	return b
}

// Build returns the schema. Later setter calls keep modifying it.
func (b *StringBuilder) Build() *model.StringSchema {
	return b.s
}

// IntegerBuilder builds a *model.IntegerSchema.
type IntegerBuilder struct {
	base[*IntegerBuilder]
	numeric[*IntegerBuilder]
	s *model.IntegerSchema
}

// Integer starts an integer schema.
func Integer() *IntegerBuilder {
	b := &IntegerBuilder{s: &model.IntegerSchema{}}
	b.base = base[*IntegerBuilder]{self: b, core: b.s.Core()}
	b.numeric = numeric[*IntegerBuilder]{self: b, n: &b.s.NumericConstraints}
	return b
}

// Build returns the schema.
func (b *IntegerBuilder) Build() *model.IntegerSchema {
	return b.s
}

// NumberBuilder builds a *model.NumberSchema.
type NumberBuilder struct {
	base[*NumberBuilder]
	numeric[*NumberBuilder]
	s *model.NumberSchema
}

// Number starts a number schema.
func Number() *NumberBuilder {
	b := &NumberBuilder{s: &model.NumberSchema{}}
	b.base = base[*NumberBuilder]{self: b, core: b.s.Core()}
	b.numeric = numeric[*NumberBuilder]{self: b, n: &b.s.NumericConstraints}
	return b
}

// Build returns the schema.
func (b *NumberBuilder) Build() *model.NumberSchema {
	return b.s
}

// BooleanBuilder builds a *model.BooleanSchema.
type BooleanBuilder struct {
	base[*BooleanBuilder]
	s *model.BooleanSchema
}

// Boolean starts a boolean schema.
func Boolean() *BooleanBuilder {
	b := &BooleanBuilder{s: &model.BooleanSchema{}}
	b.base = base[*BooleanBuilder]{self: b, core: b.s.Core()}
	return b
}

// Build returns the schema.
func (b *BooleanBuilder) Build() *model.BooleanSchema {
	return b.s
}

// ArrayBuilder builds a *model.ArraySchema.
type ArrayBuilder struct {
	base[*ArrayBuilder]
	s *model.ArraySchema
}

// Array starts an array schema whose elements match items.
func Array(items model.Schema) *ArrayBuilder {
	b := &ArrayBuilder{s: &model.ArraySchema{Items: items}}
	b.base = base[*ArrayBuilder]{self: b, core: b.s.Core()}
	return b
}

// MinItems sets the minimum element count.
func (b *ArrayBuilder) MinItems(n int) *ArrayBuilder {
	b.s.MinItems = &n
	return b
}

// MaxItems sets the maximum element count.
func (b *ArrayBuilder) MaxItems(n int) *ArrayBuilder {
	b.s.MaxItems = &n
	return b
}

// UniqueItems requires distinct elements.
func (b *ArrayBuilder) UniqueItems(v bool) *ArrayBuilder {
	b.s.UniqueItems = &v
	return b
}

// Build returns the schema.
func (b *ArrayBuilder) Build() *model.ArraySchema {
	return b.s
}

// ObjectBuilder builds a *model.ObjectSchema.
type ObjectBuilder struct {
	base[*ObjectBuilder]
	s *model.ObjectSchema
}

// Object starts an object schema.
func Object() *ObjectBuilder {
	b := &ObjectBuilder{s: &model.ObjectSchema{}}
	b.base = base[*ObjectBuilder]{self: b, core: b.s.Core()}
	return b
}

// AdditionalProperties constrains properties not named in Properties.
func (b *ObjectBuilder) AdditionalProperties(s model.Schema) *ObjectBuilder {
	b.s.AdditionalProperties = s
	return b
}

// AllowAdditionalProperties writes additionalProperties as a boolean. A
// schema set with AdditionalProperties takes precedence.
func (b *ObjectBuilder) AllowAdditionalProperties(v bool) *ObjectBuilder {
	b.s.AdditionalPropertiesAllowed = &v
	return b
}

// MinProperties sets the minimum property count.
func (b *ObjectBuilder) MinProperties(n int) *ObjectBuilder {
	b.s.MinProperties = &n
	return b
}

// MaxProperties sets the maximum property count.
func (b *ObjectBuilder) MaxProperties(n int) *ObjectBuilder {
	b.s.MaxProperties = &n
	return b
}

// Build returns the schema.
func (b *ObjectBuilder) Build() *model.ObjectSchema {
	return b.s
}

// AnyBuilder builds a *model.AnySchema, a schema without a "type".
type AnyBuilder struct {
	base[*AnyBuilder]
	s *model.AnySchema
}

// Any starts an untyped schema.
func Any() *AnyBuilder {
	b := &AnyBuilder{s: &model.AnySchema{}}
	b.base = base[*AnyBuilder]{self: b, core: b.s.Core()}
	return b
}

// Build returns the schema.
func (b *AnyBuilder) Build() *model.AnySchema {
	return b.s
}
