package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualSameContent(t *testing.T) {
	a := buildNested()
	b := buildNested()
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestEqualOrderIsSignificant(t *testing.T) {
	a := New()
	a.Set("first", 1)
	a.Set("second", 2)

	b := New()
	b.Set("second", 2)
	b.Set("first", 1)

	assert.False(t, a.Equal(b), "same entries in a different order must not be equal")
}

func TestEqualNestedOrderIsSignificant(t *testing.T) {
	makeDoc := func(k1, k2 string) *Map {
		inner := New()
		inner.Set(k1, 1)
		inner.Set(k2, 2)
		outer := New()
		outer.Set("inner", inner)
		return outer
	}

	assert.True(t, makeDoc("a", "b").Equal(makeDoc("a", "b")))
	assert.False(t, makeDoc("a", "b").Equal(makeDoc("b", "a")))
}

func TestEqualValueMismatch(t *testing.T) {
	a := New()
	a.Set("k", "x")
	b := New()
	b.Set("k", "y")
	assert.False(t, a.Equal(b))
}

func TestEqualNumericWidening(t *testing.T) {
	a := New()
	a.Set("n", 42)
	b := New()
	b.Set("n", int64(42))
	c := New()
	c.Set("n", float64(42))

	assert.True(t, a.Equal(b), "int and int64 of equal magnitude compare equal")
	assert.True(t, a.Equal(c), "int and float64 of equal magnitude compare equal")
}

func TestEqualNil(t *testing.T) {
	var a *Map
	var b *Map
	assert.True(t, a.Equal(b))
	assert.False(t, New().Equal(nil))
	assert.False(t, a.Equal(New()))
}

func TestEqualSequences(t *testing.T) {
	a := New()
	a.Set("seq", []any{"x", "y"})
	b := New()
	b.Set("seq", []any{"x", "y"})
	c := New()
	c.Set("seq", []any{"y", "x"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
