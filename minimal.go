package wary

// Minimal is the fast error mode: it retains only the retry
// requirement and drops every span, description and context frame.
// Use it for streaming parsers on the hot path where the only question
// is "fatal, or how many more bytes".
type Minimal struct {
	retry RetryRequirement
}

// MinimalFatal returns the fatal Minimal error.
func MinimalFatal() Minimal { return Minimal{retry: NoRequirement} }

// MinimalRetry returns a Minimal error requiring n more bytes.
func MinimalRetry(n int) Minimal { return Minimal{retry: NewRetryRequirement(n)} }

// MinimalFrom derives the minimal form of any retryable error. The
// derivation is lossy and one-way.
func MinimalFrom(r Retryable) Minimal { return Minimal{retry: r.RetryRequirement()} }

// FromMismatch implements the Error constraint.
func (m Minimal) FromMismatch(k *ValueMismatch) Minimal { return MinimalFrom(k) }

// FromShortfall implements the Error constraint.
func (m Minimal) FromShortfall(k *LengthShortfall) Minimal { return MinimalFrom(k) }

// FromInvalid implements the Error constraint.
func (m Minimal) FromInvalid(k *InvalidValue) Minimal { return MinimalFrom(k) }

// WithContext discards the context; Minimal keeps nothing to attach
// it to.
func (m Minimal) WithContext(Input, Context) Minimal { return m }

// RetryRequirement returns the retained requirement.
func (m Minimal) RetryRequirement() RetryRequirement { return m.retry }

// IsFatal returns true if no requirement was retained.
func (m Minimal) IsFatal() bool { return m.retry.IsNone() }

// Error implements the error interface.
func (m Minimal) Error() string {
	if m.retry.IsNone() {
		return "invalid input"
	}
	return "invalid input: needs " + m.retry.String() + " to continue processing"
}

// Fatal is the zero-information error: it retains nothing, not even
// retryability, for non-streaming whole-buffer parses that only care
// whether the input parsed.
type Fatal struct{}

// FromMismatch implements the Error constraint.
func (Fatal) FromMismatch(*ValueMismatch) Fatal { return Fatal{} }

// FromShortfall implements the Error constraint.
func (Fatal) FromShortfall(*LengthShortfall) Fatal { return Fatal{} }

// FromInvalid implements the Error constraint.
func (Fatal) FromInvalid(*InvalidValue) Fatal { return Fatal{} }

// WithContext discards the context.
func (f Fatal) WithContext(Input, Context) Fatal { return f }

// RetryRequirement always returns NoRequirement.
func (Fatal) RetryRequirement() RetryRequirement { return NoRequirement }

// IsFatal always returns true.
func (Fatal) IsFatal() bool { return true }

// Error implements the error interface.
func (Fatal) Error() string { return "invalid input" }
