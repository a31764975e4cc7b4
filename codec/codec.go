package codec

import (
	"fmt"

	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
	"github.com/erraggy/oascodec/validation"
)

// Media types reported by the built-in codecs.
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
)

// Spec is the accessor contract a domain specification object must satisfy
// to be encodable. The schema-generation layer that builds the object graph
// implements it; the codec only ever consumes it.
type Spec interface {
	// AsDocument returns the specification as an ordered document. The
	// mapping key order of the result is caller-controlled and passes
	// through the pipeline untouched.
	AsDocument() *document.Map
}

// Codec transforms specification objects into validated bytes in one
// output format.
type Codec interface {
	// Encode converts spec to bytes, running the configured validators
	// first. spec must implement Spec; anything else returns a
	// TypeMismatchError.
	Encode(spec any) ([]byte, error)

	// EncodeError serializes an error payload with the codec's dump rule,
	// skipping validation entirely. Errors must stay encodable even when
	// the validation subsystem is what failed.
	EncodeError(payload map[string]any) ([]byte, error)

	// MediaType returns the media type string for the codec's format.
	MediaType() string

	// Validators returns the validator names the codec runs, in order.
	Validators() []string
}

// pipeline runs the shared encode path: convert, validate against isolated
// copies, and hand the untouched document to dump on success.
func (cfg *config) pipeline(kind string, spec any, dump func(*document.Map) ([]byte, error)) ([]byte, error) {
	s, ok := spec.(Spec)
	if !ok {
		return nil, &codecerrors.TypeMismatchError{
			Expected: "codec.Spec",
			Actual:   fmt.Sprintf("%T", spec),
		}
	}

	doc := s.AsDocument()
	entries, err := cfg.registry.Resolve(cfg.validators...)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("validating document", "codec", kind, "validators", len(entries))
	report, err := validation.Run(doc, entries)
	if err != nil {
		return nil, err
	}
	if !report.OK() {
		invalid := &codecerrors.SpecInvalidError{
			Failures: report.Failures(),
			Order:    report.Names(),
			Document: doc,
			Codec:    kind,
		}
		cfg.logger.Warn("spec validation failed", "codec", kind, "error", invalid.Error())
		return nil, invalid
	}

	return dump(doc)
}
