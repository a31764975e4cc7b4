package engines

import (
	"errors"
	"fmt"

	"github.com/pb33f/libopenapi"

	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
	"github.com/erraggy/oascodec/validation"
)

// NameLibOpenAPI is the registry name of the libopenapi engine.
const NameLibOpenAPI = "libopenapi"

// LibOpenAPI returns a validator backed by pb33f/libopenapi. The document
// is serialized to JSON, parsed by the engine, and built into its v3 model;
// any build error is a validation failure.
func LibOpenAPI() validation.Func {
	return func(doc *document.Map) error {
		data, err := doc.MarshalJSON()
		if err != nil {
			return fmt.Errorf("engines: serializing document for libopenapi: %w", err)
		}

		parsed, err := libopenapi.NewDocument(data)
		if err != nil {
			return &codecerrors.ValidationFailure{Message: err.Error(), Cause: err}
		}
		if _, errs := parsed.BuildV3Model(); len(errs) > 0 {
			joined := errors.Join(errs...)
			return &codecerrors.ValidationFailure{Message: joined.Error(), Cause: joined}
		}
		return nil
	}
}
