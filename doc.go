// Package wary is a foundation for writing panic-free, zero-copy
// parsers over untrusted bytes.
//
// Untrusted data enters through New or NewString and from then on is
// only reachable as an Input, an immutable bounded view over the
// backing buffer. A Reader walks an Input with operations that either
// succeed or return a structured error; there is no panicking path and
// no copying of the data being parsed.
//
// Errors carry one of three kinds: a ValueMismatch against an exact
// expected value, a LengthShortfall against a length requirement, or
// an InvalidValue for everything else. Each kind knows whether
// receiving more input could change the outcome; a retryable error
// states exactly how many more bytes it needs, which lets a streaming
// caller grow its buffer and call again. The error type is chosen by
// the caller through a type parameter: Verbose collects a full
// backtrace of attempted operations for diagnostics, Compact keeps
// only the root frame, Minimal keeps only the retry requirement and
// Fatal keeps nothing.
package wary
