package transform

import (
	"fmt"
	"iter"
	"strings"
)

// OrderedMap is a map that remembers the order in which keys were first
// set. Setting an existing key replaces its value in place.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: map[K]V{}}
}

// Set stores v under k.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys in first-set order.
func (m *OrderedMap[K, V]) Keys() []K { return append([]K(nil), m.keys...) }

// All iterates over keys and values in first-set order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns the entries as a plain map.
func (m *OrderedMap[K, V]) Map() map[K]V {
	out := make(map[K]V, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// String renders the entries as a JSON-like object in first-set order,
// e.g. {"host":"localhost","port":"8080"}.
func (m *OrderedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%q", fmt.Sprint(k), fmt.Sprint(m.values[k]))
	}
	b.WriteByte('}')
	return b.String()
}
