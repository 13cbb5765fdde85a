package wary

import "fmt"

// Span is a lightweight reference to a byte range within some backing
// buffer, decoupled from the bytes themselves. It is used to refer back
// to a region after a Reader has moved past it, and to relate an error
// to the wider input it occurred in.
//
// Containment is computed from the buffer identity and offsets, never
// through a shared index space, so spans taken from unrelated Input
// values can be compared safely: unrelated spans are simply never
// within one another.
type Span struct {
	buf        *byte // identity of the backing buffer, nil when it is empty
	start, end int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.end - s.start }

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool { return s.start == s.end }

// NonEmpty returns the span and true if it covers at least one byte.
func (s Span) NonEmpty() (Span, bool) {
	if s.IsEmpty() {
		return Span{}, false
	}
	return s, true
}

// StartSpan returns the empty span at the start of s.
func (s Span) StartSpan() Span {
	return Span{buf: s.buf, start: s.start, end: s.start}
}

// IsWithin returns true if s lies entirely inside parent. Spans over
// different backing buffers are never within one another.
func (s Span) IsWithin(parent Span) bool {
	return s.buf == parent.buf && parent.start <= s.start && s.end <= parent.end
}

// RangeOf returns the start and end offsets of s within parent, or
// ok=false if s is not within parent.
func (s Span) RangeOf(parent Span) (start, end int, ok bool) {
	if !s.IsWithin(parent) {
		return 0, 0, false
	}
	return s.start - parent.start, s.end - parent.start, true
}

// OffsetWithin returns the offset of the start of s within parent, or
// ok=false if s is not within parent.
func (s Span) OffsetWithin(parent Span) (int, bool) {
	if !s.IsWithin(parent) {
		return 0, false
	}
	return s.start - parent.start, true
}

// IsStartOf returns true if s is the empty span at the start of other.
func (s Span) IsStartOf(other Span) bool {
	return s.IsEmpty() && s.buf == other.buf && s.start == other.start
}

// IsEndOf returns true if s is the empty span at the end of other.
func (s Span) IsEndOf(other Span) bool {
	return s.IsEmpty() && s.buf == other.buf && s.start == other.end
}

// Of returns the bytes the span covers within parent, or ok=false if
// the span is not within the parent input.
func (s Span) Of(parent Input) ([]byte, bool) {
	start, end, ok := s.RangeOf(parent.Span())
	if !ok {
		return nil, false
	}
	return parent.Raw()[start:end], true
}

// String implements fmt.Stringer with the offsets relative to the
// backing buffer.
func (s Span) String() string {
	return fmt.Sprintf("(start: %d, len: %d)", s.start, s.Len())
}
