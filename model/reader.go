package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

// FieldReader reads known fields out of one decoded JSON object.
//
// Decoded objects are *orderedmap.Map[any] trees whose leaves are string,
// bool, nil, decimal.Decimal (every JSON number), []any and nested maps.
// Fields the node never asks for are ignored, which makes decoding lenient
// toward unknown keys. A known key holding a value of the wrong type is a
// *oaserrors.ParseError; the first error sticks and later reads are no-ops.
// A JSON null on a known key is treated as unset.
type FieldReader struct {
	obj     *orderedmap.Map[any]
	path    string
	err     error
	seen    map[string]bool
	unknown UnknownFieldFunc
}

// UnknownFieldFunc is called with the JSON path of an object and the name of
// a key the decoder ignored. Extension ("x-") keys are never reported.
type UnknownFieldFunc func(path, field string)

// NewFieldReader returns a reader over obj. path is the JSON path of obj
// and is used in error messages.
func NewFieldReader(obj *orderedmap.Map[any], path string) *FieldReader {
	return &FieldReader{obj: obj, path: path, seen: make(map[string]bool)}
}

// finish reports every key that no read asked for.
func (r *FieldReader) finish() {
	if r.unknown == nil || r.err != nil {
		return
	}
	for _, k := range r.obj.Keys() {
		if !r.seen[k] && !IsExtension(k) {
			r.unknown(r.path, k)
		}
	}
}

// Err returns the first error encountered.
func (r *FieldReader) Err() error {
	return r.err
}

// Path returns the JSON path of the object being read.
func (r *FieldReader) Path() string {
	return r.path
}

// Keys returns the object's keys in document order.
func (r *FieldReader) Keys() []string {
	return r.obj.Keys()
}

// Has reports whether the object has a non-null value for name.
func (r *FieldReader) Has(name string) bool {
	v, ok := r.obj.Get(name)
	return ok && v != nil
}

// Fail records a type error for the named field.
func (r *FieldReader) Fail(name, message string) {
	if r.err != nil {
		return
	}
	r.err = &oaserrors.ParseError{
		JSONPath: pathutil.Join(r.path, name),
		Message:  message,
	}
}

func (r *FieldReader) setErr(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// lookup returns the raw value for name; ok is false when the read should be
// skipped (a prior error, a missing key, or a null value).
func (r *FieldReader) lookup(name string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	r.seen[name] = true
	v, ok := r.obj.Get(name)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Raw returns the undecoded value for name.
func (r *FieldReader) Raw(name string) (any, bool) {
	return r.lookup(name)
}

// String reads a string field.
func (r *FieldReader) String(name string, dst *string) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected string, got %s", kindOf(v)))
		return
	}
	*dst = s
}

// Bool reads a boolean field.
func (r *FieldReader) Bool(name string, dst **bool) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	b, ok := v.(bool)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected boolean, got %s", kindOf(v)))
		return
	}
	*dst = &b
}

// Int reads an integer field.
func (r *FieldReader) Int(name string, dst **int) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	d, ok := v.(decimal.Decimal)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected integer, got %s", kindOf(v)))
		return
	}
	if !d.IsInteger() || d.GreaterThan(decimal.NewFromInt(math.MaxInt)) || d.LessThan(decimal.NewFromInt(math.MinInt)) {
		r.Fail(name, fmt.Sprintf("expected integer, got %s", d.String()))
		return
	}
	n := int(d.IntPart())
	*dst = &n
}

// Decimal reads an arbitrary-precision number.
func (r *FieldReader) Decimal(name string, dst **decimal.Decimal) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	d, ok := v.(decimal.Decimal)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected number, got %s", kindOf(v)))
		return
	}
	*dst = &d
}

// Strings reads a list of strings. A present but empty list decodes to a
// non-nil empty slice.
func (r *FieldReader) Strings(name string, dst *[]string) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	list, ok := v.([]any)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected array, got %s", kindOf(v)))
		return
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			r.Fail(fmt.Sprintf("%s[%d]", name, i), fmt.Sprintf("expected string, got %s", kindOf(item)))
			return
		}
		out = append(out, s)
	}
	*dst = out
}

// Values reads a list of opaque values. A present but empty list decodes to
// a non-nil empty slice.
func (r *FieldReader) Values(name string, dst *[]any) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	list, ok := v.([]any)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected array, got %s", kindOf(v)))
		return
	}
	out := make([]any, len(list))
	copy(out, list)
	*dst = out
}

// Value reads an opaque value.
func (r *FieldReader) Value(name string, dst *any) {
	if v, ok := r.lookup(name); ok {
		*dst = v
	}
}

// Schema reads a nested schema, choosing the variant from its "type".
func (r *FieldReader) Schema(name string, dst *Schema) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	s, err := decodeSchema(v, pathutil.Join(r.path, name), r.unknown)
	if err != nil {
		r.setErr(err)
		return
	}
	*dst = s
}

// SchemaMap reads an ordered mapping of name to schema.
func (r *FieldReader) SchemaMap(name string, dst **orderedmap.Map[Schema]) {
	obj, ok := r.object(name)
	if !ok {
		return
	}
	base := pathutil.Join(r.path, name)
	out := orderedmap.NewWithCapacity[Schema](obj.Len())
	for k, raw := range obj.All() {
		s, err := decodeSchema(raw, pathutil.Join(base, k), r.unknown)
		if err != nil {
			r.setErr(err)
			return
		}
		out.Set(k, s)
	}
	*dst = out
}

// AnyMap reads an object of opaque values.
func (r *FieldReader) AnyMap(name string, dst **orderedmap.Map[any]) {
	if obj, ok := r.object(name); ok {
		*dst = obj.Clone()
	}
}

// Extensions collects every "x-" key of the object.
func (r *FieldReader) Extensions(dst **orderedmap.Map[any]) {
	if r.err != nil {
		return
	}
	var ext *orderedmap.Map[any]
	for k, v := range r.obj.All() {
		if !IsExtension(k) {
			continue
		}
		if ext == nil {
			ext = orderedmap.New[any]()
		}
		ext.Set(k, v)
	}
	if ext != nil {
		*dst = ext
	}
}

func (r *FieldReader) object(name string) (*orderedmap.Map[any], bool) {
	v, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*orderedmap.Map[any])
	if !ok {
		r.Fail(name, fmt.Sprintf("expected object, got %s", kindOf(v)))
		return nil, false
	}
	return obj, true
}

// ReadNode reads a nested node of type PT.
func ReadNode[T any, PT interface {
	*T
	Decodable
}](r *FieldReader, name string, dst *PT) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	n, err := decodeNode[T, PT](v, pathutil.Join(r.path, name), r.unknown)
	if err != nil {
		r.setErr(err)
		return
	}
	*dst = n
}

// ReadNodeList reads an array of nodes. A present but empty array decodes to
// a non-nil empty slice.
func ReadNodeList[T any, PT interface {
	*T
	Decodable
}](r *FieldReader, name string, dst *[]PT) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	list, ok := v.([]any)
	if !ok {
		r.Fail(name, fmt.Sprintf("expected array, got %s", kindOf(v)))
		return
	}
	base := pathutil.Join(r.path, name)
	out := make([]PT, 0, len(list))
	for i, item := range list {
		n, err := decodeNode[T, PT](item, fmt.Sprintf("%s[%d]", base, i), r.unknown)
		if err != nil {
			r.setErr(err)
			return
		}
		out = append(out, n)
	}
	*dst = out
}

// ReadNodeMap reads an ordered mapping of key to node.
func ReadNodeMap[T any, PT interface {
	*T
	Decodable
}](r *FieldReader, name string, dst **orderedmap.Map[PT]) {
	obj, ok := r.object(name)
	if !ok {
		return
	}
	base := pathutil.Join(r.path, name)
	out := orderedmap.NewWithCapacity[PT](obj.Len())
	for k, raw := range obj.All() {
		if IsExtension(k) {
			continue
		}
		n, err := decodeNode[T, PT](raw, pathutil.Join(base, k), r.unknown)
		if err != nil {
			r.setErr(err)
			return
		}
		out.Set(k, n)
	}
	*dst = out
}

func decodeNode[T any, PT interface {
	*T
	Decodable
}](raw any, path string, unknown UnknownFieldFunc) (PT, error) {
	obj, ok := raw.(*orderedmap.Map[any])
	if !ok {
		return nil, &oaserrors.ParseError{
			JSONPath: path,
			Message:  fmt.Sprintf("expected object, got %s", kindOf(raw)),
		}
	}
	n := PT(new(T))
	r := NewFieldReader(obj, path)
	r.unknown = unknown
	n.ReadFields(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	r.finish()
	return n, nil
}

// kindOf names the JSON kind of a decoded value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case decimal.Decimal:
		return "number"
	case []any:
		return "array"
	case *orderedmap.Map[any]:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
