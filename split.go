package wary

// Splitting primitives. Everything the Reader does is a thin wrapper
// around these; they are panic-free, allocation-free, and every
// out-of-range request produces a structured length error carrying the
// shortfall.
//
// Bound propagation rules: the head of a definite-length split has its
// end closed (its extent is now known exactly) while the tail keeps
// the parent's bound; a scan that ran to the end of input leaves the
// head as-is (its end stays open if the parent's was) and hands back a
// tail with no bounds at all, since nobody knows where that tail truly
// begins or ends.

// endView returns the empty view at the end of the input.
func (i Input) endView() Input {
	return i.slice(i.Len(), i.Len(), i.bound.forEnd())
}

// literal wraps a caller-supplied expected value for error reporting.
func literal(b []byte) Input {
	return Input{buf: b, start: 0, end: len(b), bound: BoundStartEnd}
}

// SplitAtOpt splits the input in two at mid, or returns ok=false if
// mid is out of range.
func (i Input) SplitAtOpt(mid int) (head, tail Input, ok bool) {
	if mid < 0 || mid > i.Len() {
		return Input{}, Input{}, false
	}
	return i.slice(0, mid, i.bound.closeEnd()), i.slice(mid, i.Len(), i.bound), true
}

// splitAt is SplitAtOpt with a LengthShortfall for the failure case.
func (i Input) splitAt(mid int, operation string) (Input, Input, *LengthShortfall) {
	head, tail, ok := i.SplitAtOpt(mid)
	if !ok {
		return Input{}, Input{}, &LengthShortfall{
			min:   mid,
			span:  i.Span(),
			input: i,
			ctx:   Context{Operation: operation, Expected: "enough input", Span: i.Span()},
		}
	}
	return head, tail, nil
}

// SplitAt splits the input in two at mid. It fails with a
// LengthShortfall stating min=mid if the input is shorter than mid.
func (i Input) SplitAt(mid int) (head, tail Input, err error) {
	head, tail, k := i.splitAt(mid, "split at")
	if k != nil {
		return Input{}, Input{}, k
	}
	return head, tail, nil
}

// SplitMax splits the input in two at max, or at the end of the input
// if it is shorter than max.
func (i Input) SplitMax(max int) (head, tail Input) {
	if max > i.Len() {
		return i, i.endView()
	}
	head, tail, _ = i.SplitAtOpt(max)
	return head, tail
}

// SplitWhile splits the input at the first byte the predicate rejects.
// If the scan exhausts the input the head covers everything and keeps
// an open end where the parent's bound allows: more bytes might have
// matched had input continued.
func (i Input) SplitWhile(pred func(byte) bool) (head, tail Input) {
	raw := i.Raw()
	for n, b := range raw {
		if !pred(b) {
			return i.slice(0, n, i.bound.closeEnd()), i.slice(n, i.Len(), i.bound)
		}
	}
	return i, i.endView()
}

// splitPrefixOpt splits prefix from the input if it is present.
func (i Input) splitPrefixOpt(prefix []byte) (head, tail Input, ok bool) {
	if !i.HasPrefix(prefix) {
		return Input{}, i, false
	}
	head, tail, _ = i.SplitAtOpt(len(prefix))
	return head, tail, true
}

// SplitPrefixOpt splits prefix from the input if it is present; the
// input comes back untouched when it is not.
func (i Input) SplitPrefixOpt(prefix []byte) (head, tail Input, ok bool) {
	return i.splitPrefixOpt(prefix)
}

// splitPrefix splits an expected prefix from the input with the three
// way outcome the retry calculus needs: an exact match advances, a
// definite mismatch within the shared length is fatal, and input that
// is merely shorter than the prefix but matches so far is retryable
// with the missing length as the requirement (unless the bound forbids
// more bytes).
func (i Input) splitPrefix(prefix []byte, operation string) (Input, Input, *ValueMismatch) {
	if head, tail, ok := i.splitPrefixOpt(prefix); ok {
		return head, tail, nil
	}
	found, _ := i.SplitMax(len(prefix))
	return Input{}, Input{}, &ValueMismatch{
		input:    i,
		found:    found,
		expected: literal(prefix),
		ctx:      Context{Operation: operation, Expected: "exact value", Span: found.Span()},
	}
}

// SplitPrefix splits an expected prefix from the input, failing with a
// ValueMismatch when it is not there.
func (i Input) SplitPrefix(prefix []byte) (head, tail Input, err error) {
	head, tail, k := i.splitPrefix(prefix, "split prefix")
	if k != nil {
		return Input{}, Input{}, k
	}
	return head, tail, nil
}

// SplitUntilOpt splits the input at the first match of the pattern,
// leaving the match at the start of the tail, or returns ok=false if
// there is no match.
func (i Input) SplitUntilOpt(p Pattern) (head, tail Input, ok bool) {
	index, _, found := p.FindMatch(i)
	if !found {
		return Input{}, Input{}, false
	}
	head, tail, _ = i.SplitAtOpt(index)
	return head, tail, true
}

// SplitUntilConsumeOpt splits the input at the first match of the
// pattern and consumes the match, or returns ok=false if there is no
// match.
func (i Input) SplitUntilConsumeOpt(p Pattern) (head, tail Input, ok bool) {
	index, length, found := p.FindMatch(i)
	if !found {
		return Input{}, Input{}, false
	}
	head = i.slice(0, index, i.bound.closeEnd())
	tail = i.slice(index+length, i.Len(), i.bound)
	return head, tail, true
}

// splitUntil requires a pattern match. A missing match might appear
// with more input, so the failure carries a one-byte requirement when
// the bound allows growth.
func (i Input) splitUntil(p Pattern, consume bool, operation string) (Input, Input, *InvalidValue) {
	var head, tail Input
	var ok bool
	if consume {
		head, tail, ok = i.SplitUntilConsumeOpt(p)
	} else {
		head, tail, ok = i.SplitUntilOpt(p)
	}
	if !ok {
		return Input{}, Input{}, &InvalidValue{
			desc:  "pattern match",
			span:  i.Span(),
			input: i,
			ctx:   Context{Operation: operation, Expected: "pattern match", Span: i.Span()},
			retry: NewRetryRequirement(1),
		}
	}
	return head, tail, nil
}

// first returns the first byte without consuming it.
func (i Input) first(operation string) (byte, *LengthShortfall) {
	if i.IsEmpty() {
		return 0, &LengthShortfall{
			min:   1,
			span:  i.Span(),
			input: i,
			ctx:   Context{Operation: operation, Expected: "a byte", Span: i.Span()},
		}
	}
	return i.buf[i.start], nil
}

// splitFirst splits the first byte from the input.
func (i Input) splitFirst(operation string) (byte, Input, *LengthShortfall) {
	head, tail, k := i.splitAt(1, operation)
	if k != nil {
		return 0, Input{}, k
	}
	return head.buf[head.start], tail, nil
}
