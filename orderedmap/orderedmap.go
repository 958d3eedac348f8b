// Package orderedmap provides an insertion-ordered string-keyed map.
//
// JSON objects in an OpenAPI document (properties, paths, responses,
// components) must round-trip their key order, which Go's built-in map
// does not preserve. Map keeps keys in first-insertion order: setting a key
// that already exists replaces its value but leaves its position unchanged.
//
// A nil *Map is treated as "absent" by the encoder, while a non-nil empty
// Map is "present but empty" and renders as {}. Every read method is safe to
// call on a nil receiver.
//
// Map is not safe for concurrent use.
package orderedmap

import "iter"

// Map is an insertion-ordered map from string keys to values of type V.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New returns an empty, non-nil Map.
func New[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// NewWithCapacity returns an empty Map sized for n entries.
func NewWithCapacity[V any](n int) *Map[V] {
	return &Map[V]{
		keys:   make([]string, 0, n),
		values: make(map[string]V, n),
	}
}

// Set inserts or replaces the value for key.
// A new key is appended to the iteration order; an existing key keeps its
// original position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and its position. It reports whether the key existed.
func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// IsNil reports whether the receiver is a nil map (an absent collection).
func (m *Map[V]) IsNil() bool {
	return m == nil
}

// Keys returns a copy of the keys in iteration order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All returns an iterator over the entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// RangeAny calls fn for every entry in order with the value boxed as any.
// It stops early when fn returns false. RangeAny lets callers that do not
// know V (such as the encoder) walk any Map.
func (m *Map[V]) RangeAny(fn func(key string, value any) bool) {
	for k, v := range m.All() {
		if !fn(k, v) {
			return
		}
	}
}

// Clone returns a shallow copy. Cloning a nil Map returns nil.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return nil
	}
	out := NewWithCapacity[V](len(m.keys))
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// Keyed is the type-erased view of a Map used by code that handles maps of
// any value type.
type Keyed interface {
	Len() int
	IsNil() bool
	RangeAny(fn func(key string, value any) bool)
}

var _ Keyed = (*Map[any])(nil)
