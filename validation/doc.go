// Package validation provides the pluggable validator registry and the
// aggregation logic that runs registered validators over a document.
//
// Import path: github.com/erraggy/oascodec/validation
//
// A validator is a black-box predicate over an ordered document: it either
// returns nil, returns a [codecerrors.ValidationFailure], or (for bugs in
// the validator integration itself) returns any other error, which the
// aggregator propagates instead of recording.
//
// # Registry lifecycle
//
// Registries are populated once during process initialization and are
// read-only afterwards. Registration is not safe for concurrent use;
// lookups after the population phase are. A validator backed by an engine
// that is unavailable registers as a permanent no-op (nil Func) rather than
// failing at call time: availability is decided once, at registration.
//
// # Aggregation
//
// [Run] executes every requested validator against an independent deep copy
// of the document, in request order, without short-circuiting. Failures are
// collected into a [Report] keyed by validator name, so a caller always
// sees every rejection from a single run.
package validation
