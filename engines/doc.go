// Package engines provides the built-in validation engines and registers
// them into the default validator registry.
//
// Import path: github.com/erraggy/oascodec/engines
//
// Each engine is an independent third-party OpenAPI implementation treated
// as a black-box predicate: it receives the serialized document, parses it
// with its own machinery, and either accepts it or produces a
// [codecerrors.ValidationFailure] carrying the engine's message. Engines
// never see the canonical document, only bytes, so nothing an engine does
// to its own parse tree can leak back into the pipeline.
//
// Importing this package (typically with a blank import) registers both
// engines under their stable names:
//
//	import _ "github.com/erraggy/oascodec/engines"
//
//	c, err := codec.NewJSON(codec.WithValidators(engines.NameKin, engines.NameLibOpenAPI))
package engines
