package validation

import (
	"slices"

	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
)

// Func is a validator predicate. It receives a private deep copy of the
// document under validation and may freely mutate it. A nil return means
// the document is acceptable; a *codecerrors.ValidationFailure records a
// rejection; any other error is a defect in the validator and aborts the
// run.
type Func func(doc *document.Map) error

// Entry is a named validator as resolved from a Registry.
type Entry struct {
	// Name is the stable identifier used as the aggregation key
	Name string
	// Fn is the predicate. A nil Fn is a permanent no-op entry.
	Fn Func
}

// Registry is a named set of validators. Populate it during initialization
// with Register, then treat it as read-only; Resolve and Names are safe for
// concurrent use once population is complete.
type Registry struct {
	names   []string
	entries map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Func),
	}
}

// Register adds a validator under name, replacing any previous registration
// with the same name. Passing a nil fn registers a permanent no-op: the
// name resolves successfully but running it does nothing. This is how a
// validator whose backing engine is unavailable stays addressable without
// turning every request for it into an error.
func (r *Registry) Register(name string, fn Func) {
	if _, exists := r.entries[name]; !exists {
		r.names = append(r.names, name)
	}
	r.entries[name] = fn
}

// Resolve returns the entries for the requested names, in request order.
// It returns a *codecerrors.UnknownValidatorError if any requested name was
// never registered.
func (r *Registry) Resolve(names ...string) ([]Entry, error) {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		fn, ok := r.entries[name]
		if !ok {
			return nil, &codecerrors.UnknownValidatorError{
				Name:  name,
				Known: r.Names(),
			}
		}
		entries = append(entries, Entry{Name: name, Fn: fn})
	}
	return entries, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Default is the process-wide registry. Built-in engines register
// themselves here during init; see the engines package.
var Default = NewRegistry()

// Register adds a validator to the Default registry.
func Register(name string, fn Func) {
	Default.Register(name, fn)
}

// Resolve resolves names against the Default registry.
func Resolve(names ...string) ([]Entry, error) {
	return Default.Resolve(names...)
}
