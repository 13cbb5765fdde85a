package wary

// UTF-8 decoding that reports precisely why a sequence failed. The
// standard library's utf8.DecodeRune collapses truncation and garbage
// into one RuneError, but streaming input needs to know whether a
// failure is fatal or only needs more bytes, so the validation here is
// done against the RFC 3629 ranges directly.

// utf8CharLen maps a lead byte to the encoded length of its sequence,
// with 0 marking bytes that can never start a sequence.
// https://tools.ietf.org/html/rfc3629
var utf8CharLen = [256]uint8{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x7F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xBF
	0, 0, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xDF
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, // 0xEF
	4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xFF
}

// charLen returns the encoded length the lead byte b announces, or 0
// if b can never start a sequence.
func charLen(b byte) int { return int(utf8CharLen[b]) }

// isContByte reports whether b is a continuation byte (10xxxxxx).
func isContByte(b byte) bool { return b&0xC0 == 0x80 }

type runeStatus uint8

const (
	runeOK runeStatus = iota
	// runeInvalid marks a sequence that no amount of further input can
	// repair; size covers the offending bytes.
	runeInvalid
	// runeTruncated marks a valid lead sequence cut short by the end of
	// input; size is the full encoded length the lead byte requires.
	runeTruncated
)

// contRange is the accepted range for the second byte of a sequence,
// which is narrower than 0x80..0xBF for some lead bytes to reject
// overlong and out-of-range encodings.
func contRange(lead byte) (lo, hi byte) {
	switch lead {
	case 0xE0:
		return 0xA0, 0xBF
	case 0xED:
		return 0x80, 0x9F
	case 0xF0:
		return 0x90, 0xBF
	case 0xF4:
		return 0x80, 0x8F
	default:
		return 0x80, 0xBF
	}
}

// decodeRune decodes the first code point in b.
//
// For runeOK, size is the number of bytes consumed. For runeInvalid,
// size covers the bytes that can never begin a valid sequence. For
// runeTruncated, size is the total length the lead byte requires, of
// which only len(b) bytes were available.
func decodeRune(b []byte) (r rune, size int, status runeStatus) {
	if len(b) == 0 {
		return 0, 0, runeTruncated
	}
	lead := b[0]
	want := charLen(lead)
	if want == 0 {
		return 0, 1, runeInvalid
	}
	if want == 1 {
		return rune(lead), 1, runeOK
	}
	r = rune(lead & (0x7F >> uint(want)))
	for n := 1; n < want; n++ {
		if n >= len(b) {
			return 0, want, runeTruncated
		}
		c := b[n]
		if n == 1 {
			if lo, hi := contRange(lead); c < lo || c > hi {
				return 0, 1, runeInvalid
			}
		} else if !isContByte(c) {
			return 0, n, runeInvalid
		}
		r = r<<6 | rune(c&0x3F)
	}
	return r, want, runeOK
}
