package wary

import "fmt"

// Expected is the catch-all error: any of the three concrete kinds
// behind one handle, together with the ambient input and a context
// backtrace. The backtrace strategy is the type parameter, so the
// choice between a verbose diagnostic error and a cheap root-only one
// is made at compile time by naming a different error type, not by a
// runtime branch.
//
// Use the Verbose and Compact aliases rather than spelling the
// parameter out.
type Expected[S backtraceStrategy[S]] struct {
	kind  kindError
	input Input
	stack S
}

// Verbose is the full-backtrace catch-all error. It retains every
// context frame pushed while the error propagates, for human-readable
// diagnostics.
type Verbose = Expected[FullBacktrace]

// Compact is the root-only catch-all error. It retains the raising
// frame and the ambient input but ignores context pushes, for callers
// who want structured errors without the trail.
type Compact = Expected[RootBacktrace]

func newExpected[S backtraceStrategy[S]](k kindError) *Expected[S] {
	var s S
	return &Expected[S]{
		kind:  k,
		input: k.Input(),
		stack: s.fromRoot(k.Context()),
	}
}

// FromMismatch implements the Error constraint.
func (e *Expected[S]) FromMismatch(k *ValueMismatch) *Expected[S] { return newExpected[S](k) }

// FromShortfall implements the Error constraint.
func (e *Expected[S]) FromShortfall(k *LengthShortfall) *Expected[S] { return newExpected[S](k) }

// FromInvalid implements the Error constraint.
func (e *Expected[S]) FromInvalid(k *InvalidValue) *Expected[S] { return newExpected[S](k) }

// WithContext pushes a frame onto the backtrace. The ambient input is
// widened to the scope's input only when that input still contains the
// error's span; an unrelated input never replaces what the error saw.
func (e *Expected[S]) WithContext(input Input, c Context) *Expected[S] {
	if e.kind.Span().IsWithin(input.Span()) {
		e.input = input
	}
	e.stack = e.stack.push(c)
	return e
}

// Input returns the ambient input: the widest scope input containing
// the failure.
func (e *Expected[S]) Input() Input { return e.input }

// Span returns the exact location of the failure.
func (e *Expected[S]) Span() Span { return e.kind.Span() }

// ExpectedValue returns the exact expected value for a mismatch.
func (e *Expected[S]) ExpectedValue() (Input, bool) { return e.kind.ExpectedValue() }

// Description returns the kind's one-line description.
func (e *Expected[S]) Description() string { return e.kind.Description() }

// Backtrace returns the collected context trail.
func (e *Expected[S]) Backtrace() Backtrace { return e.stack }

// Mismatch returns the underlying kind if it is a value mismatch.
func (e *Expected[S]) Mismatch() (*ValueMismatch, bool) {
	k, ok := e.kind.(*ValueMismatch)
	return k, ok
}

// Shortfall returns the underlying kind if it is a length shortfall.
func (e *Expected[S]) Shortfall() (*LengthShortfall, bool) {
	k, ok := e.kind.(*LengthShortfall)
	return k, ok
}

// Invalid returns the underlying kind if it is an invalid value.
func (e *Expected[S]) Invalid() (*InvalidValue, bool) {
	k, ok := e.kind.(*InvalidValue)
	return k, ok
}

// RetryRequirement delegates to the underlying kind.
func (e *Expected[S]) RetryRequirement() RetryRequirement { return e.kind.RetryRequirement() }

// IsFatal delegates to the underlying kind.
func (e *Expected[S]) IsFatal() bool { return e.kind.IsFatal() }

// Error implements the error interface with the one-line summary; the
// display package renders the full diagnostic.
func (e *Expected[S]) Error() string {
	return fmt.Sprintf("error attempting to %s: %s", e.stack.Root().Operation, e.kind.Description())
}
