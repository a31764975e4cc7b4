package engines_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oascodec/codec"
	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
	"github.com/erraggy/oascodec/engines"
	"github.com/erraggy/oascodec/validation"
)

// minimalSpec builds the smallest document both engines accept.
func minimalSpec() *document.Map {
	info := document.New()
	info.Set("title", "Petstore")
	info.Set("version", "1.0.0")

	doc := document.New()
	doc.Set("openapi", "3.0.3")
	doc.Set("info", info)
	doc.Set("paths", document.New())
	return doc
}

func TestEnginesRegisteredInDefaultRegistry(t *testing.T) {
	entries, err := validation.Resolve(engines.NameKin, engines.NameLibOpenAPI)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "kin", entries[0].Name)
	assert.Equal(t, "libopenapi", entries[1].Name)
	assert.NotNil(t, entries[0].Fn)
	assert.NotNil(t, entries[1].Fn)
}

func TestKinAcceptsMinimalSpec(t *testing.T) {
	err := engines.Kin()(minimalSpec())
	assert.NoError(t, err)
}

func TestKinRejectsSpecWithoutInfo(t *testing.T) {
	doc := document.New()
	doc.Set("openapi", "3.0.3")
	doc.Set("paths", document.New())

	err := engines.Kin()(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codecerrors.ErrValidationFailure),
		"engine rejection must surface as a ValidationFailure, got %T", err)
}

func TestLibOpenAPIAcceptsMinimalSpec(t *testing.T) {
	err := engines.LibOpenAPI()(minimalSpec())
	assert.NoError(t, err)
}

func TestLibOpenAPIRejectsVersionlessDocument(t *testing.T) {
	doc := document.New()
	doc.Set("not-a-spec", true)

	err := engines.LibOpenAPI()(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codecerrors.ErrValidationFailure),
		"engine rejection must surface as a ValidationFailure, got %T", err)
}

// engineSpec adapts a document to the codec.Spec interface.
type engineSpec struct {
	doc *document.Map
}

func (s engineSpec) AsDocument() *document.Map { return s.doc }

func TestFullPipelineWithBothEngines(t *testing.T) {
	c, err := codec.NewJSON(codec.WithValidators(engines.NameKin, engines.NameLibOpenAPI))
	require.NoError(t, err)

	out, err := c.Encode(engineSpec{doc: minimalSpec()})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"openapi":"3.0.3"`)
}

func TestFullPipelineAggregatesBothEngineFailures(t *testing.T) {
	// No version, no info: both engines reject it.
	doc := document.New()
	doc.Set("not-a-spec", true)

	c, err := codec.NewYAML(codec.WithValidators(engines.NameKin, engines.NameLibOpenAPI))
	require.NoError(t, err)

	_, err = c.Encode(engineSpec{doc: doc})
	require.Error(t, err)

	var invalid *codecerrors.SpecInvalidError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []string{"kin", "libopenapi"}, invalid.Order,
		"both engines must appear in the aggregated report")
}
