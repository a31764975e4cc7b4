// Package codecerrors provides structured error types for oascodec.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between configuration bugs
// and expected validation outcomes.
//
// # Error Categories
//
//   - TypeMismatchError: the value handed to Encode is not a specification object
//   - UnknownValidatorError: a requested validator name was never registered
//   - ValidationFailure: a single validator rejected a document
//   - SpecInvalidError: the aggregated result of one or more validator rejections
//   - ConfigError: invalid codec configuration or options
//
// # Usage with errors.As
//
//	data, err := c.Encode(spec)
//	if err != nil {
//	    var invalid *codecerrors.SpecInvalidError
//	    if errors.As(err, &invalid) {
//	        for _, name := range invalid.Order {
//	            log.Printf("%s: %s", name, invalid.Failures[name])
//	        }
//	    }
//	}
package codecerrors

import (
	"errors"
	"strconv"
	"strings"

	"github.com/erraggy/oascodec/document"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTypeMismatch indicates Encode received a value that is not a
	// specification object.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownValidator indicates a requested validator name was never
	// registered.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrValidationFailure indicates a single validator rejected a document.
	ErrValidationFailure = errors.New("validation failure")

	// ErrSpecInvalid indicates one or more validators rejected a document.
	ErrSpecInvalid = errors.New("spec validation failed")

	// ErrConfig indicates an invalid codec configuration.
	ErrConfig = errors.New("configuration error")
)

// TypeMismatchError reports that the input to Encode was not produced
// through the expected specification object interface. This is a
// programming error in the caller, not a recoverable condition.
type TypeMismatchError struct {
	// Expected is the interface or type the codec requires
	Expected string
	// Actual is the dynamic type of the value that was passed
	Actual string
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "type mismatch"
	if e.Expected != "" {
		msg += ": expected " + e.Expected
	}
	if e.Actual != "" {
		msg += ", got " + e.Actual
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// UnknownValidatorError reports that a validator name requested by a codec
// configuration was never registered. This is a configuration bug: the set
// of registered validators is fixed during initialization.
type UnknownValidatorError struct {
	// Name is the validator name that could not be resolved
	Name string
	// Known lists the names that are registered, for the error message
	Known []string
}

// Error returns a human-readable error message.
func (e *UnknownValidatorError) Error() string {
	msg := "unknown validator"
	if e.Name != "" {
		msg += " " + strconv.Quote(e.Name)
	}
	if len(e.Known) > 0 {
		msg += " (registered: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnknownValidatorError) Is(target error) bool {
	return target == ErrUnknownValidator
}

// ValidationFailure is the single failure kind a validator predicate may
// return when it rejects a document. Any other error returned by a
// predicate is treated as a defect in the validator itself and propagates
// unmodified instead of being recorded as a validation outcome.
type ValidationFailure struct {
	// Message is the engine's failure text
	Message string
	// Cause is the engine-specific error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationFailure) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "validation failure"
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationFailure) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationFailure) Is(target error) bool {
	return target == ErrValidationFailure
}

// SpecInvalidError is the aggregated outcome of a validation run in which
// one or more validators rejected the document. It always carries every
// failing validator's message, never just the first, along with the
// snapshot of the document that was validated and the identity of the
// codec that ran the pipeline (diagnostic context only).
//
// This is the expected, caller-recoverable failure mode of Encode; callers
// commonly serialize it back to the client via EncodeError.
type SpecInvalidError struct {
	// Failures maps each failing validator's name to its message
	Failures map[string]string
	// Order lists the failing validator names in execution order
	Order []string
	// Document is the document snapshot that failed validation
	Document *document.Map
	// Codec identifies the encoder that ran the validation pipeline
	Codec string
}

// Error returns a message enumerating every failing validator.
func (e *SpecInvalidError) Error() string {
	var b strings.Builder
	b.WriteString("spec validation failed")
	sep := ": "
	for _, name := range e.Order {
		b.WriteString(sep)
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(e.Failures[name])
		sep = "; "
	}
	return b.String()
}

// Is reports whether target matches this error type.
func (e *SpecInvalidError) Is(target error) bool {
	return target == ErrSpecInvalid
}

// ConfigError represents an invalid codec configuration, such as an option
// applied to a codec that does not support it.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
