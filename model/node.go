package model

import (
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/orderedmap"
)

// Node is implemented by every object in the document graph.
//
// WriteFields reports the node's set fields, in declaration order, to w.
// Unset fields must not be written; the FieldWriter methods already skip
// nil pointers, empty strings and nil collections, so implementations can
// write every field unconditionally.
type Node interface {
	WriteFields(w *FieldWriter)
}

// Decodable is implemented by every object that can be rebuilt from a
// decoded JSON/YAML object.
type Decodable interface {
	ReadFields(r *FieldReader)
}

// Field is a single named value reported by a Node.
type Field struct {
	Name  string
	Value any
}

// FieldWriter collects the fields of one Node in emission order.
//
// Once Ref has been called with a non-empty reference, the writer drops every
// other field: a node carrying "$ref" is rendered as {"$ref": "..."} and
// nothing else, whatever else was set on it.
type FieldWriter struct {
	ref    string
	fields []Field
}

// Ref records a "$ref". A non-empty ref suppresses all other fields.
func (w *FieldWriter) Ref(ref string) {
	if ref != "" && w.ref == "" {
		w.ref = ref
		w.fields = nil
	}
}

// HasRef reports whether a reference was written.
func (w *FieldWriter) HasRef() bool {
	return w.ref != ""
}

// Fields returns the collected fields.
func (w *FieldWriter) Fields() []Field {
	if w.ref != "" {
		return []Field{{Name: "$ref", Value: w.ref}}
	}
	return w.fields
}

// Reset clears the writer for reuse.
func (w *FieldWriter) Reset() {
	w.ref = ""
	w.fields = w.fields[:0]
}

func (w *FieldWriter) add(name string, value any) {
	if w.ref != "" {
		return
	}
	w.fields = append(w.fields, Field{Name: name, Value: value})
}

// String writes a string field. The empty string is treated as unset.
func (w *FieldWriter) String(name, v string) {
	if v != "" {
		w.add(name, v)
	}
}

// Int writes an integer field if v is non-nil.
func (w *FieldWriter) Int(name string, v *int) {
	if v != nil {
		w.add(name, *v)
	}
}

// Bool writes a boolean field if v is non-nil. An explicit false is written.
func (w *FieldWriter) Bool(name string, v *bool) {
	if v != nil {
		w.add(name, *v)
	}
}

// Decimal writes an arbitrary-precision number if v is non-nil.
func (w *FieldWriter) Decimal(name string, v *decimal.Decimal) {
	if v != nil {
		w.add(name, *v)
	}
}

// Strings writes a string list. A nil slice is unset; an empty non-nil slice
// is written as [].
func (w *FieldWriter) Strings(name string, v []string) {
	if v != nil {
		w.add(name, v)
	}
}

// Values writes a list of opaque values. A nil slice is unset; an empty
// non-nil slice is written as [].
func (w *FieldWriter) Values(name string, v []any) {
	if v != nil {
		w.add(name, v)
	}
}

// Value writes an opaque value (an example or a default) if it is non-nil.
func (w *FieldWriter) Value(name string, v any) {
	if v != nil {
		w.add(name, v)
	}
}

// Node writes a nested node unless it is nil.
func (w *FieldWriter) Node(name string, n Node) {
	if !isNilNode(n) {
		w.add(name, n)
	}
}

// Nodes writes a list of nodes. A nil slice is unset; an empty non-nil slice
// is written as []. Use NodeList to convert a typed slice.
func (w *FieldWriter) Nodes(name string, n []Node) {
	if n != nil {
		w.add(name, n)
	}
}

// Map writes an ordered mapping. A nil map is unset; an empty non-nil map is
// written as {}.
func (w *FieldWriter) Map(name string, m orderedmap.Keyed) {
	if m != nil && !m.IsNil() {
		w.add(name, m)
	}
}

// Extensions writes every "x-" entry of ext as a top-level field.
func (w *FieldWriter) Extensions(ext *orderedmap.Map[any]) {
	for k, v := range ext.All() {
		if IsExtension(k) {
			w.add(k, v)
		}
	}
}

// NodeList converts a typed slice of nodes into a []Node, preserving the
// distinction between a nil slice (unset) and an empty one.
func NodeList[T Node](items []T) []Node {
	if items == nil {
		return nil
	}
	out := make([]Node, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// IsExtension reports whether key names a specification extension ("x-...").
func IsExtension(key string) bool {
	return len(key) >= 2 && key[0] == 'x' && key[1] == '-'
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	return isNilNode(n)
}

// Ptr returns a pointer to v. It is a convenience for optional fields:
//
//	s := &model.StringSchema{MinLength: model.Ptr(3)}
func Ptr[T any](v T) *T {
	return &v
}
