package engines

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
	"github.com/erraggy/oascodec/validation"
)

// NameKin is the registry name of the kin-openapi engine.
const NameKin = "kin"

// Kin returns a validator backed by getkin/kin-openapi. The document is
// serialized to JSON and handed to the engine's loader; both load and
// semantic validation failures are reported as validation failures.
func Kin() validation.Func {
	return func(doc *document.Map) error {
		data, err := doc.MarshalJSON()
		if err != nil {
			return fmt.Errorf("engines: serializing document for kin-openapi: %w", err)
		}

		loader := openapi3.NewLoader()
		loader.IsExternalRefsAllowed = false

		parsed, err := loader.LoadFromData(data)
		if err != nil {
			return &codecerrors.ValidationFailure{Message: err.Error(), Cause: err}
		}
		if err := parsed.Validate(context.Background()); err != nil {
			return &codecerrors.ValidationFailure{Message: err.Error(), Cause: err}
		}
		return nil
	}
}
