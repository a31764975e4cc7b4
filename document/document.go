package document

import (
	"iter"
	"slices"
)

// Map is a string-keyed mapping that preserves key insertion order.
//
// The zero value is not usable; construct with [New]. Map is not safe for
// concurrent mutation, matching the pipeline's synchronous model: a Map is
// built once by the producing layer and treated as read-only downstream.
type Map struct {
	keys   []string
	values map[string]any
}

// New returns an empty ordered mapping.
func New() *Map {
	return &Map{
		values: make(map[string]any),
	}
}

// Set stores value under key. A new key is appended after all existing
// keys; an existing key keeps its original position and only its value is
// replaced.
func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and reports whether it was present. The relative
// order of the remaining keys is unchanged.
func (m *Map) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Pairs iterates over entries in insertion order.
func (m *Map) Pairs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
