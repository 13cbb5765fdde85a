package wary

import (
	"bytes"
	"regexp"
	"unicode/utf8"
)

// Pattern locates matches within an input. The two directions serve
// the two scanning operations: FindMatch drives take-until (skip ahead
// to the first occurrence), FindReject drives take-while-match (skip
// ahead to the first non-occurrence).
//
// Byte, Rune, Literal, Str, ByteFunc, RuneFunc and Regex cover the
// usual cases.
type Pattern interface {
	// FindMatch returns the index and byte length of the first match
	// within the input, or ok=false if there is none.
	FindMatch(i Input) (index, length int, ok bool)
	// FindReject returns the index of the first position at which the
	// pattern does not match, or ok=false if the pattern matches all
	// the way to the end.
	FindReject(i Input) (index int, ok bool)
}

// Byte matches a single byte.
type Byte byte

func (p Byte) FindMatch(i Input) (int, int, bool) {
	n := bytes.IndexByte(i.Raw(), byte(p))
	if n < 0 {
		return 0, 0, false
	}
	return n, 1, true
}

func (p Byte) FindReject(i Input) (int, bool) {
	for n, b := range i.Raw() {
		if b != byte(p) {
			return n, true
		}
	}
	return 0, false
}

// Rune matches a single rune, encoded as UTF-8.
type Rune rune

func (p Rune) FindMatch(i Input) (int, int, bool) {
	var enc [utf8.UTFMax]byte
	size := utf8.EncodeRune(enc[:], rune(p))
	n := bytes.Index(i.Raw(), enc[:size])
	if n < 0 {
		return 0, 0, false
	}
	return n, size, true
}

func (p Rune) FindReject(i Input) (int, bool) {
	raw := i.Raw()
	for n := 0; n < len(raw); {
		r, size, status := decodeRune(raw[n:])
		if status != runeOK || r != rune(p) {
			return n, true
		}
		n += size
	}
	return 0, false
}

// Literal matches an exact byte sequence. The empty literal matches
// nothing and rejects nothing.
type Literal []byte

func (p Literal) FindMatch(i Input) (int, int, bool) {
	if len(p) == 0 {
		return 0, 0, false
	}
	n := bytes.Index(i.Raw(), p)
	if n < 0 {
		return 0, 0, false
	}
	return n, len(p), true
}

func (p Literal) FindReject(i Input) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	raw := i.Raw()
	for n := 0; n < len(raw); {
		if !bytes.HasPrefix(raw[n:], p) {
			return n, true
		}
		n += len(p)
	}
	return 0, false
}

// Str matches an exact string.
type Str string

func (p Str) FindMatch(i Input) (int, int, bool) { return Literal(p).FindMatch(i) }
func (p Str) FindReject(i Input) (int, bool)     { return Literal(p).FindReject(i) }

// ByteFunc matches any byte the function accepts.
type ByteFunc func(byte) bool

func (p ByteFunc) FindMatch(i Input) (int, int, bool) {
	for n, b := range i.Raw() {
		if p(b) {
			return n, 1, true
		}
	}
	return 0, 0, false
}

func (p ByteFunc) FindReject(i Input) (int, bool) {
	for n, b := range i.Raw() {
		if !p(b) {
			return n, true
		}
	}
	return 0, false
}

// RuneFunc matches any rune the function accepts. Bytes that do not
// decode as UTF-8 never match and always reject.
type RuneFunc func(rune) bool

func (p RuneFunc) FindMatch(i Input) (int, int, bool) {
	raw := i.Raw()
	for n := 0; n < len(raw); {
		r, size, status := decodeRune(raw[n:])
		if status == runeOK && p(r) {
			return n, size, true
		}
		n += size
	}
	return 0, 0, false
}

func (p RuneFunc) FindReject(i Input) (int, bool) {
	raw := i.Raw()
	for n := 0; n < len(raw); {
		r, size, status := decodeRune(raw[n:])
		if status != runeOK || !p(r) {
			return n, true
		}
		n += size
	}
	return 0, false
}

// Regex adapts a compiled regular expression into a Pattern.
func Regex(re *regexp.Regexp) Pattern { return regexPattern{re} }

type regexPattern struct {
	re *regexp.Regexp
}

func (p regexPattern) FindMatch(i Input) (int, int, bool) {
	loc := p.re.FindIndex(i.Raw())
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1] - loc[0], true
}

func (p regexPattern) FindReject(i Input) (int, bool) {
	raw := i.Raw()
	for n := 0; n < len(raw); {
		loc := p.re.FindIndex(raw[n:])
		if loc == nil || loc[0] != 0 || loc[1] == 0 {
			return n, true
		}
		n += loc[1]
	}
	return 0, false
}
