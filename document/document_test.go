package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInsertionOrder(t *testing.T) {
	m := New()
	m.Set("swagger", "2.0")
	m.Set("info", "x")
	m.Set("paths", "y")
	m.Set("definitions", "z")

	assert.Equal(t, []string{"swagger", "info", "paths", "definitions"}, m.Keys())
	assert.Equal(t, 4, m.Len())
}

func TestMapOverwriteKeepsPosition(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Set("b", 20)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)
}

func TestMapGetMissing(t *testing.T) {
	m := New()
	m.Set("a", 1)

	v, ok := m.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, m.Has("missing"))
	assert.True(t, m.Has("a"))
}

func TestMapDelete(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	require.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"), "second delete should report absence")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestMapPairs(t *testing.T) {
	m := New()
	m.Set("one", 1)
	m.Set("two", 2)
	m.Set("three", 3)

	var keys []string
	var values []any
	for k, v := range m.Pairs() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []string{"one", "two", "three"}, keys)
	assert.Equal(t, []any{1, 2, 3}, values)
}

func TestMapPairsEarlyStop(t *testing.T) {
	m := New()
	m.Set("one", 1)
	m.Set("two", 2)

	var seen int
	for range m.Pairs() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestMapKeysIsCopy(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Set("b", 2)

	keys := m.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, m.Keys())
}
