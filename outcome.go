package pathassert

import (
	"errors"
	"fmt"
)

// FailureKind categorizes a failed outcome. Kinds are string-based for
// debuggability and natural rendering in failure messages.
type FailureKind string

const (
	// KindUsageError indicates caller misuse: a required path argument was
	// the zero Path. Usage errors are reported before any filesystem access
	// is attempted.
	KindUsageError FailureKind = "USAGE_ERROR"

	// KindViolation indicates the predicate evaluated successfully and
	// returned false. This is the normal, expected failure of an assertion.
	KindViolation FailureKind = "ASSERTION_VIOLATED"

	// KindIOFailure indicates the underlying filesystem could not answer the
	// query. The original error is attached as the failure's cause, so "the
	// assertion is false" is never conflated with "the truth is unknown".
	KindIOFailure FailureKind = "FILESYSTEM_IO_FAILURE"

	// KindProviderMismatch indicates two path handles from different
	// filesystem providers were given to a predicate that requires
	// comparability. Raised before any inspection is attempted.
	KindProviderMismatch FailureKind = "PROVIDER_MISMATCH"

	// KindUnknown is returned by KindOf for nil errors and errors that do
	// not carry a *Failure.
	KindUnknown FailureKind = "UNKNOWN"
)

// Outcome is the result of evaluating a predicate: either satisfied, or
// carrying a structured Failure. Outcomes are created fresh per evaluation
// and hold no filesystem state.
type Outcome struct {
	failure *Failure
}

// Satisfied reports whether the predicate held.
func (o Outcome) Satisfied() bool {
	return o.failure == nil
}

// Failure returns the structured failure, or nil when the outcome is
// satisfied.
func (o Outcome) Failure() *Failure {
	return o.failure
}

// Failure is the structured payload describing why a predicate did not hold:
// the predicate's identity, a rendering of the actual path, a rendering of
// the expected condition, and, for I/O-backed failures, the wrapped cause.
//
// Failure implements error so it can cross ordinary error-returning
// boundaries; the fluent layer instead renders it through a TestingT.
type Failure struct {
	kind      FailureKind
	predicate string
	actual    string
	expected  string
	cause     error
}

// Kind returns the failure's taxonomy kind.
func (f *Failure) Kind() FailureKind {
	return f.kind
}

// Predicate returns the name of the predicate that failed.
func (f *Failure) Predicate() string {
	return f.predicate
}

// Actual returns the rendering of the tested path.
func (f *Failure) Actual() string {
	return f.actual
}

// Expected returns the rendering of the expected condition.
func (f *Failure) Expected() string {
	return f.expected
}

// Error returns the string representation of the failure.
// Format: "[KIND] predicate: expected ..., actual ..." with the cause
// appended when present.
func (f *Failure) Error() string {
	msg := fmt.Sprintf("%s: expected %s, actual %s", f.predicate, f.expected, f.actual)
	if f.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", f.kind, msg, f.cause)
	}
	return fmt.Sprintf("[%s] %s", f.kind, msg)
}

// Unwrap returns the wrapped cause for errors.Is and errors.As
// compatibility. It is nil unless the failure stems from a wrapped I/O
// error.
func (f *Failure) Unwrap() error {
	return f.cause
}

// KindOf extracts the FailureKind from an error chain. It returns
// KindUnknown if err is nil or no *Failure is found.
func KindOf(err error) FailureKind {
	if err == nil {
		return KindUnknown
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind()
	}
	return KindUnknown
}

// IsViolation reports whether the error is a plain assertion violation, as
// opposed to a usage error, provider mismatch, or I/O failure.
func IsViolation(err error) bool {
	return KindOf(err) == KindViolation
}

// Outcome constructors used by the engine.

func satisfied() Outcome {
	return Outcome{}
}

func violated(predicate string, p Path, expected string) Outcome {
	return Outcome{failure: &Failure{
		kind:      KindViolation,
		predicate: predicate,
		actual:    p.String(),
		expected:  expected,
	}}
}

func ioFailure(predicate string, p Path, expected string, cause error) Outcome {
	return Outcome{failure: &Failure{
		kind:      KindIOFailure,
		predicate: predicate,
		actual:    p.String(),
		expected:  expected,
		cause:     cause,
	}}
}

func usageError(predicate string, p Path, expected string) Outcome {
	return Outcome{failure: &Failure{
		kind:      KindUsageError,
		predicate: predicate,
		actual:    p.String(),
		expected:  expected,
	}}
}

func providerMismatch(predicate string, p, other Path) Outcome {
	return Outcome{failure: &Failure{
		kind:      KindProviderMismatch,
		predicate: predicate,
		actual:    fmt.Sprintf("%s (provider %q)", p, p.Provider()),
		expected:  fmt.Sprintf("a path from provider %q, got %s (provider %q)", p.Provider(), other, other.Provider()),
	}}
}
