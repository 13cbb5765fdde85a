package wary

import (
	"bytes"
	"fmt"
)

// ValueMismatch is raised when input failed an exact value requirement,
// for example Consume against bytes that are not there.
//
// A mismatch is retryable only when what was found is a strict prefix
// of what was expected and the input's end may still grow; the
// requirement is then the remaining expected length.
type ValueMismatch struct {
	input    Input
	found    Input
	expected Input
	ctx      Context
}

// Input returns the ambient input at the point the error was raised.
func (e *ValueMismatch) Input() Input { return e.input }

// Found returns the actual bytes present where the expected value
// should have been.
func (e *ValueMismatch) Found() Input { return e.found }

// Expected returns the exact value that was expected.
func (e *ValueMismatch) Expected() Input { return e.expected }

// ExpectedValue returns the expected value; ok is always true for a
// mismatch. Part of the Details capability.
func (e *ValueMismatch) ExpectedValue() (Input, bool) { return e.expected, true }

// Span returns the exact location of the failure.
func (e *ValueMismatch) Span() Span { return e.found.Span() }

// Context returns the frame of the raising operation.
func (e *ValueMismatch) Context() Context { return e.ctx }

// Backtrace returns the single raising frame.
func (e *ValueMismatch) Backtrace() Backtrace { return RootBacktrace{root: e.ctx} }

// Description returns a short description of what went wrong.
func (e *ValueMismatch) Description() string {
	return "found a different value to the exact expected"
}

// IsFatal returns true if the value found could never match, or the
// input can no longer grow.
func (e *ValueMismatch) IsFatal() bool {
	if e.input.Bound() == BoundStartEnd {
		return true
	}
	return !bytes.HasPrefix(e.expected.Raw(), e.found.Raw())
}

// RetryRequirement returns the remaining expected length if the
// matching was merely incomplete.
func (e *ValueMismatch) RetryRequirement() RetryRequirement {
	if e.IsFatal() {
		return NoRequirement
	}
	return RetryFromHadNeeded(e.found.Len(), e.expected.Len())
}

// Error implements the error interface.
func (e *ValueMismatch) Error() string {
	return fmt.Sprintf("error attempting to %s: %s", e.ctx.Operation, e.Description())
}
