package validation

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oascodec/codecerrors"
	"github.com/erraggy/oascodec/document"
)

// Report collects validation failures from a single run, keyed by validator
// name. An empty report means the document passed every validator. Reports
// are constructed by Run and immutable once returned.
type Report struct {
	order    []string
	failures map[string]string
}

// OK reports whether the run recorded no failures.
func (r *Report) OK() bool {
	return len(r.failures) == 0
}

// Len returns the number of failing validators.
func (r *Report) Len() int {
	return len(r.failures)
}

// Names returns the failing validator names in execution order.
func (r *Report) Names() []string {
	return slices.Clone(r.order)
}

// Message returns the failure message recorded for name, if any.
func (r *Report) Message(name string) (string, bool) {
	msg, ok := r.failures[name]
	return msg, ok
}

// Failures returns a copy of the name-to-message failure mapping.
func (r *Report) Failures() map[string]string {
	return maps.Clone(r.failures)
}

// String enumerates every failure in execution order.
func (r *Report) String() string {
	var b strings.Builder
	for i, name := range r.order {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.failures[name])
	}
	return b.String()
}

func (r *Report) add(name, message string) {
	if _, exists := r.failures[name]; !exists {
		r.order = append(r.order, name)
	}
	r.failures[name] = message
}

// Run executes the given validators against doc and aggregates their
// rejections into a Report.
//
// Every validator runs against its own deep copy of doc, so a validator
// that mutates its input can never alter the canonical document or leak
// state into the next validator. Execution follows the order of entries
// and never short-circuits: a rejection by one validator does not stop the
// rest from running.
//
// A non-nil error return means a validator returned something other than a
// ValidationFailure. That is a defect in the validator integration and is
// propagated unmodified rather than recorded in the report.
func Run(doc *document.Map, entries []Entry) (*Report, error) {
	report := &Report{
		failures: make(map[string]string),
	}
	for _, entry := range entries {
		if entry.Fn == nil {
			continue
		}
		err := entry.Fn(doc.DeepCopy())
		if err == nil {
			continue
		}
		var failure *codecerrors.ValidationFailure
		if errors.As(err, &failure) {
			report.add(entry.Name, failure.Error())
			continue
		}
		return nil, err
	}
	return report, nil
}
