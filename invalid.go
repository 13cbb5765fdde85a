package wary

import "fmt"

// InvalidValue is raised when input failed a validity requirement that
// is described rather than spelled out byte for byte, for example
// UTF-8 decoding or an Expect that returned nothing.
//
// The producer of the error decides whether it is retryable by
// supplying a retry requirement; UTF-8 decoding never does, because an
// invalid code point stays invalid however much input arrives.
type InvalidValue struct {
	desc  string
	span  Span
	input Input
	ctx   Context
	retry RetryRequirement
}

// Input returns the ambient input at the point the error was raised.
func (e *InvalidValue) Input() Input { return e.input }

// Span returns the part of the input that was invalid.
func (e *InvalidValue) Span() Span { return e.span }

// ExpectedDescription returns the description of what was expected.
func (e *InvalidValue) ExpectedDescription() string { return e.desc }

// ExpectedValue implements the Details capability; a validity failure
// has no exact expected value.
func (e *InvalidValue) ExpectedValue() (Input, bool) { return Input{}, false }

// Context returns the frame of the raising operation.
func (e *InvalidValue) Context() Context { return e.ctx }

// Backtrace returns the single raising frame.
func (e *InvalidValue) Backtrace() Backtrace { return RootBacktrace{root: e.ctx} }

// Description returns a short description of what went wrong.
func (e *InvalidValue) Description() string {
	return "expected " + e.desc
}

// IsFatal returns true unless the producer supplied a retry
// requirement and the input may still grow.
func (e *InvalidValue) IsFatal() bool {
	return e.input.Bound() == BoundStartEnd || e.retry.IsNone()
}

// RetryRequirement returns the producer-supplied requirement, if any.
func (e *InvalidValue) RetryRequirement() RetryRequirement {
	if e.input.Bound() == BoundStartEnd {
		return NoRequirement
	}
	return e.retry
}

// Error implements the error interface.
func (e *InvalidValue) Error() string {
	return fmt.Sprintf("error attempting to %s: %s", e.ctx.Operation, e.Description())
}
