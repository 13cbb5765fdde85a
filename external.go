package wary

// ExternalError adapts a foreign error type into this package's retry
// and backtrace model. Implement it on errors produced outside the
// Reader, for example by strconv or a third-party decoder, and surface
// them through TryExternal; the failure is folded into an InvalidValue
// carrying the external span, requirement and frames.
type ExternalError interface {
	error
	// ExternalSpan returns the location of the failure within the
	// input the external operation was given, if it knows one.
	ExternalSpan() (Span, bool)
	// RetryRequirement returns the requirement to retry the external
	// operation, or NoRequirement if it is fatal.
	RetryRequirement() RetryRequirement
	// PushBacktrace folds the external error's own context frames into
	// the ambient backtrace, innermost first. Implementations without
	// frames simply return.
	PushBacktrace(push func(c Context))
}

// externalSpan extracts the adapter capabilities from an arbitrary
// error: foreign errors that do not implement ExternalError are
// treated as spanless and fatal.
func externalParts(err error) (span Span, hasSpan bool, retry RetryRequirement, frames func(func(Context))) {
	ext, ok := err.(ExternalError)
	if !ok {
		return Span{}, false, NoRequirement, nil
	}
	span, hasSpan = ext.ExternalSpan()
	return span, hasSpan, ext.RetryRequirement(), ext.PushBacktrace
}
