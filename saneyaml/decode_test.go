package saneyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oascodec/document"
)

func TestUnmarshalPreservesSourceOrder(t *testing.T) {
	src := "zebra: 1\nalpha: 2\nmid: 3\n"

	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "alpha", "mid"}, m.Keys())
}

func TestUnmarshalNestedOrder(t *testing.T) {
	src := `paths:
  /pets:
    get:
      summary: list pets
  /stores:
    get:
      summary: list stores
info:
  title: Petstore
  version: "1.0.0"
`
	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"paths", "info"}, m.Keys())

	pathsAny, ok := m.Get("paths")
	require.True(t, ok)
	paths := pathsAny.(*document.Map)
	assert.Equal(t, []string{"/pets", "/stores"}, paths.Keys())
}

func TestUnmarshalScalarTypes(t *testing.T) {
	src := "s: text\ni: 42\nf: 2.5\nb: true\nn: null\nquoted: \"2.0\"\n"

	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)

	s, _ := m.Get("s")
	assert.Equal(t, "text", s)
	i, _ := m.Get("i")
	assert.Equal(t, 42, i)
	f, _ := m.Get("f")
	assert.Equal(t, 2.5, f)
	b, _ := m.Get("b")
	assert.Equal(t, true, b)
	n, _ := m.Get("n")
	assert.Nil(t, n)
	quoted, _ := m.Get("quoted")
	assert.Equal(t, "2.0", quoted, "a quoted numeric-looking scalar stays a string")
}

func TestUnmarshalSequences(t *testing.T) {
	src := "tags:\n  - pets\n  - read\n"

	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)
	tags, _ := m.Get("tags")
	assert.Equal(t, []any{"pets", "read"}, tags)
}

func TestUnmarshalResolvesAliases(t *testing.T) {
	src := `base: &shared
  type: string
other: *shared
`
	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)

	baseAny, _ := m.Get("base")
	otherAny, _ := m.Get("other")
	base := baseAny.(*document.Map)
	other := otherAny.(*document.Map)
	assert.True(t, base.Equal(other), "alias must resolve to the full value")
}

func TestUnmarshalFlattensMergeKeys(t *testing.T) {
	src := `base: &base
  a: 1
  b: 2
child:
  <<: *base
  b: 20
  c: 3
`
	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)

	childAny, ok := m.Get("child")
	require.True(t, ok)
	child := childAny.(*document.Map)

	assert.Equal(t, []string{"a", "b", "c"}, child.Keys(),
		"merged keys keep their position, explicit keys follow")

	b, _ := child.Get("b")
	assert.Equal(t, 20, b, "an explicitly written key overrides the merged value")
	a, _ := child.Get("a")
	assert.Equal(t, 1, a)
}

func TestUnmarshalMergeSequenceEarlierSourceWins(t *testing.T) {
	src := `one: &one
  x: 1
  shared: one
two: &two
  y: 2
  shared: two
merged:
  <<: [*one, *two]
  z: 3
`
	m, err := Unmarshal([]byte(src))
	require.NoError(t, err)

	mergedAny, ok := m.Get("merged")
	require.True(t, ok)
	merged := mergedAny.(*document.Map)

	shared, _ := merged.Get("shared")
	assert.Equal(t, "one", shared, "the earlier merge source takes precedence")
	x, _ := merged.Get("x")
	assert.Equal(t, 1, x)
	y, _ := merged.Get("y")
	assert.Equal(t, 2, y)
	z, _ := merged.Get("z")
	assert.Equal(t, 3, z)
}

func TestUnmarshalMergeValueMustBeMapping(t *testing.T) {
	src := "bad:\n  <<: 42\n"
	_, err := Unmarshal([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merge value")
}

func TestUnmarshalRejectsNonMappingRoot(t *testing.T) {
	_, err := Unmarshal([]byte("- just\n- a\n- list\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
}

func TestUnmarshalEmptyInput(t *testing.T) {
	m, err := Unmarshal(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestRoundTrip(t *testing.T) {
	get := document.New()
	get.Set("summary", "list pets")
	get.Set("tags", []any{"pets", "read"})
	get.Set("deprecated", false)

	pets := document.New()
	pets.Set("get", get)

	paths := document.New()
	paths.Set("/pets", pets)

	info := document.New()
	info.Set("title", "Petstore")
	info.Set("description", "first line\nsecond line")
	info.Set("version", "1.0.0")

	original := document.New()
	original.Set("openapi", "3.0.3")
	original.Set("info", info)
	original.Set("paths", paths)
	original.Set("x-count", 3)

	out, err := Marshal(original)
	require.NoError(t, err)

	parsed, err := Unmarshal(out)
	require.NoError(t, err)

	assert.True(t, original.Equal(parsed),
		"parsing the serializer's own output must reproduce structure and key order")
}
