// Package codec encodes API specification objects into validated,
// deterministically ordered JSON or YAML bytes.
//
// Import path: github.com/erraggy/oascodec/codec
//
// A codec owns the full pipeline for one output format: convert the domain
// specification object to an ordered document, run the configured
// validators over isolated copies of it, and serialize the original,
// untouched document on success. Validation failures from every configured
// validator are aggregated into a single [codecerrors.SpecInvalidError]
// rather than failing on the first.
//
// # Quick start
//
//	c, err := codec.NewJSON(codec.WithPretty(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := c.Encode(spec) // spec implements codec.Spec
//
// With validation engines (see the engines package):
//
//	import _ "github.com/erraggy/oascodec/engines"
//
//	c, err := codec.NewYAML(codec.WithValidators("kin", "libopenapi"))
//
// Codecs are immutable after construction and safe for concurrent use once
// the validator registry population phase has completed.
package codec
