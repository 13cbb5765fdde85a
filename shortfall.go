package wary

import (
	"fmt"
	"strings"
)

// LengthShortfall is raised when input failed a length requirement,
// for example Take(4) over two remaining bytes.
//
// A shortfall is retryable while no maximum was specified and the
// input's end may still grow; the requirement is the minimum less what
// was available. A shortfall with a maximum reports excess input (such
// as trailing bytes after ReadAll) and is always fatal.
type LengthShortfall struct {
	min    int
	max    int
	hasMax bool
	span   Span
	input  Input
	ctx    Context
}

// Input returns the ambient input at the point the error was raised.
func (e *LengthShortfall) Input() Input { return e.input }

// Span returns the part of the input that did not meet the
// requirement.
func (e *LengthShortfall) Span() Span { return e.span }

// Min returns the minimum length that was expected.
func (e *LengthShortfall) Min() int { return e.min }

// Max returns the maximum length that was expected, if one applied.
func (e *LengthShortfall) Max() (int, bool) { return e.max, e.hasMax }

// Exact returns the exact length that was expected, if the requirement
// was exact.
func (e *LengthShortfall) Exact() (int, bool) {
	if e.hasMax && e.max == e.min {
		return e.min, true
	}
	return 0, false
}

// ExpectedValue implements the Details capability; a length failure
// has no exact expected value.
func (e *LengthShortfall) ExpectedValue() (Input, bool) { return Input{}, false }

// Context returns the frame of the raising operation.
func (e *LengthShortfall) Context() Context { return e.ctx }

// Backtrace returns the single raising frame.
func (e *LengthShortfall) Backtrace() Backtrace { return RootBacktrace{root: e.ctx} }

// Description returns a short description of what went wrong.
func (e *LengthShortfall) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "found %s when ", byteCount(e.span.Len()))
	switch {
	case e.hasMax && e.max == e.min:
		fmt.Fprintf(&b, "exactly %s", byteCount(e.min))
	case e.hasMax && e.min == 0:
		fmt.Fprintf(&b, "at most %s", byteCount(e.max))
	case e.hasMax:
		fmt.Fprintf(&b, "at least %s and at most %s", byteCount(e.min), byteCount(e.max))
	default:
		fmt.Fprintf(&b, "at least %s", byteCount(e.min))
	}
	b.WriteString(" was expected")
	return b.String()
}

// IsFatal returns true if a maximum applied or the input can no longer
// grow.
func (e *LengthShortfall) IsFatal() bool {
	return e.input.Bound() == BoundStartEnd || e.hasMax
}

// RetryRequirement returns how many more bytes would meet the minimum.
func (e *LengthShortfall) RetryRequirement() RetryRequirement {
	if e.IsFatal() {
		return NoRequirement
	}
	return RetryFromHadNeeded(e.span.Len(), e.min)
}

// Error implements the error interface.
func (e *LengthShortfall) Error() string {
	return fmt.Sprintf("error attempting to %s: %s", e.ctx.Operation, e.Description())
}
