package wary

import (
	"fmt"
	"strings"
)

// Input is an immutable zero-copy view over a region of untrusted
// bytes, carrying a Bound that records whether either side of the view
// could still move when more of a stream arrives.
//
// An Input is cheap to copy and safe to share: it never mutates the
// backing buffer. The buffer handed to New must not be mutated by the
// caller while any Input, Span or error derived from it is alive.
//
// All views derived from one buffer remember the whole backing buffer,
// so spans and containment queries can relate them to each other by
// offset without any shared index bookkeeping.
type Input struct {
	buf        []byte // the whole backing buffer
	start, end int
	bound      Bound
	str        bool // contents are validated UTF-8
}

// Len returns the number of bytes in the view.
func (i Input) Len() int { return i.end - i.start }

// IsEmpty returns true if the view has no bytes.
func (i Input) IsEmpty() bool { return i.start == i.end }

// IsString returns true if the view's contents have been validated as
// UTF-8, either because it came from NewString or from Text.
func (i Input) IsString() bool { return i.str }

// Bound returns the bound state of the view.
func (i Input) Bound() Bound { return i.bound }

// Bounded returns the view with both sides marked as fixed. Use this
// for whole-buffer parses where no further input can ever arrive; any
// error raised over the result is fatal rather than retryable.
func (i Input) Bounded() Input {
	i.bound = BoundStartEnd
	return i
}

// Raw returns the raw bytes of the view. This is the designated exit
// from the trust boundary: the returned slice aliases the untrusted
// backing buffer and carries none of the bound bookkeeping.
func (i Input) Raw() []byte { return i.buf[i.start:i.end] }

// Span returns the span of the view within its backing buffer.
func (i Input) Span() Span {
	return Span{buf: bufID(i.buf), start: i.start, end: i.end}
}

// IsWithin returns true if the view lies entirely inside other. Views
// of different backing buffers are never within one another.
func (i Input) IsWithin(other Input) bool {
	return i.Span().IsWithin(other.Span())
}

// HasPrefix returns true if the view starts with prefix.
func (i Input) HasPrefix(prefix []byte) bool {
	return i.Len() >= len(prefix) && string(i.Raw()[:len(prefix)]) == string(prefix)
}

// Text validates the view as UTF-8 and returns it flagged as a string.
//
// On failure it distinguishes a sequence that can never be valid, which
// yields an InvalidValue naming the offending span, from a truncated
// but so-far-valid trailing sequence, which yields a LengthShortfall
// stating exactly how many bytes the lead byte's encoded length
// requires. Streaming callers use the distinction to tell "broken"
// from "needs more bytes".
func (i Input) Text() (Input, error) {
	s, k := i.text("text")
	if k != nil {
		return Input{}, k
	}
	return s, nil
}

// text is the kind-typed form of Text used by the Reader.
func (i Input) text(operation string) (Input, error) {
	if i.str {
		return i, nil
	}
	raw := i.Raw()
	p := 0
	for p < len(raw) {
		_, size, status := decodeRune(raw[p:])
		switch status {
		case runeOK:
			p += size
		case runeInvalid:
			return Input{}, &InvalidValue{
				desc:  "utf-8 code point",
				span:  i.spanAt(p, p+size),
				input: i,
				ctx:   Context{Operation: operation, Expected: "utf-8 code point", Span: i.spanAt(p, p+size)},
			}
		default: // truncated lead sequence: size is the encoded length required
			return Input{}, &LengthShortfall{
				min:   size,
				span:  i.spanAt(p, len(raw)),
				input: i,
				ctx:   Context{Operation: operation, Expected: "complete utf-8 code point", Span: i.spanAt(p, len(raw))},
			}
		}
	}
	i.str = true
	return i, nil
}

// spanAt returns the span of the byte range [from, to) relative to the
// start of the view.
func (i Input) spanAt(from, to int) Span {
	return Span{buf: bufID(i.buf), start: i.start + from, end: i.start + to}
}

// String implements fmt.Stringer with a compact debug rendering: hex
// pairs for raw bytes, a quoted form for validated text. The display
// package produces the full diagnostic rendering.
func (i Input) String() string {
	const max = 32
	raw := i.Raw()
	truncated := false
	if len(raw) > max {
		raw = raw[:max]
		truncated = true
	}
	var b strings.Builder
	if i.str {
		fmt.Fprintf(&b, "%q", raw)
	} else {
		b.WriteByte('[')
		for n, c := range raw {
			if n > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%02x", c)
		}
		b.WriteByte(']')
	}
	if truncated {
		b.WriteString("..")
	}
	return b.String()
}

// bufID derives the identity of a backing buffer for span comparisons.
func bufID(buf []byte) *byte {
	if len(buf) == 0 {
		return nil
	}
	return &buf[0]
}

// slice returns the sub-view [from, to) with the given bound,
// preserving the string flag only when both cut points sit on rune
// boundaries.
func (i Input) slice(from, to int, bound Bound) Input {
	out := Input{
		buf:   i.buf,
		start: i.start + from,
		end:   i.start + to,
		bound: bound,
		str:   i.str,
	}
	if i.str && !(i.isRuneBoundary(from) && i.isRuneBoundary(to)) {
		out.str = false
	}
	return out
}

func (i Input) isRuneBoundary(at int) bool {
	if at == 0 || at == i.Len() {
		return true
	}
	return !isContByte(i.buf[i.start+at])
}
