package wary

import "fmt"

// RetryRequirement is the minimum number of additional input bytes
// required before a failed parse could be retried. The zero value means
// no requirement: the failure is fatal and no amount of further input
// changes it.
type RetryRequirement int

// NoRequirement is the fatal RetryRequirement.
const NoRequirement RetryRequirement = 0

// NewRetryRequirement returns a requirement of n bytes, or
// NoRequirement when n is not strictly positive.
func NewRetryRequirement(n int) RetryRequirement {
	if n <= 0 {
		return NoRequirement
	}
	return RetryRequirement(n)
}

// RetryFromHadNeeded computes the requirement from how many bytes were
// available and how many were needed.
func RetryFromHadNeeded(had, needed int) RetryRequirement {
	return NewRetryRequirement(needed - had)
}

// IsNone returns true if there is no requirement, meaning processing
// cannot be retried.
func (r RetryRequirement) IsNone() bool { return r <= 0 }

// ContinueAfter returns the number of additional bytes required. It is
// zero exactly when IsNone reports true.
func (r RetryRequirement) ContinueAfter() int {
	if r < 0 {
		return 0
	}
	return int(r)
}

// MetBy returns true if count additional bytes satisfy the requirement.
func (r RetryRequirement) MetBy(count int) bool {
	return !r.IsNone() && count >= r.ContinueAfter()
}

// String implements fmt.Stringer.
func (r RetryRequirement) String() string {
	if r.IsNone() {
		return "no retry requirement"
	}
	return fmt.Sprintf("%s more", byteCount(r.ContinueAfter()))
}

// byteCount formats a count of bytes for error messages.
func byteCount(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

// Retryable is implemented by every error form in this package, and by
// external errors that want to take part in the retry calculus.
type Retryable interface {
	// RetryRequirement returns the additional byte count required to
	// retry, or NoRequirement if the error is fatal.
	RetryRequirement() RetryRequirement
	// IsFatal returns true if no amount of additional input could
	// change the outcome.
	IsFatal() bool
}
