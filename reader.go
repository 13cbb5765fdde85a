package wary

// Reader is a cursor over an Input. Every operation either consumes
// from the front of the unread input and returns the consumed view, or
// fails with the caller's error type E and leaves the reader exactly
// where it was. There is no partial consumption on failure.
//
// The error type parameter decides, at compile time, how much detail a
// failure retains: *Verbose for full diagnostics, *Compact for the
// root frame only, Minimal for just the retry requirement, Fatal for
// nothing at all.
type Reader[E Error[E]] struct {
	input Input
}

func newReader[E Error[E]](i Input) *Reader[E] {
	return &Reader[E]{input: i}
}

// AtEnd returns true if all input has been consumed.
func (r *Reader[E]) AtEnd() bool { return r.input.IsEmpty() }

// Remaining returns the number of unread bytes.
func (r *Reader[E]) Remaining() int { return r.input.Len() }

// Take consumes and returns exactly n bytes.
func (r *Reader[E]) Take(n int) (Input, error) {
	head, tail, k := r.input.splitAt(n, "take")
	if k != nil {
		return Input{}, raiseShortfall[E](k)
	}
	r.input = tail
	return head, nil
}

// TakeRemaining consumes and returns all unread input.
func (r *Reader[E]) TakeRemaining() Input {
	head := r.input
	r.input = r.input.endView()
	return head
}

// TakeWhile consumes the longest prefix of bytes the predicate
// accepts. It never fails; the prefix may be empty.
func (r *Reader[E]) TakeWhile(pred func(byte) bool) Input {
	head, tail := r.input.SplitWhile(pred)
	r.input = tail
	return head
}

// TryTakeWhile is TakeWhile with a fallible predicate. A predicate
// failure aborts the scan without consuming anything and gains a
// grouped frame naming the operation.
func (r *Reader[E]) TryTakeWhile(pred func(byte) (bool, error)) (Input, error) {
	raw := r.input.Raw()
	for n, b := range raw {
		keep, err := pred(b)
		if err != nil {
			err = convertKind[E](err)
			return Input{}, attachContext[E](err, r.input, operationContext("take while", r.input.spanAt(n, n+1)))
		}
		if !keep {
			head, tail, _ := r.input.SplitAtOpt(n)
			r.input = tail
			return head, nil
		}
	}
	return r.TakeRemaining(), nil
}

// TakeUntil consumes up to, but not including, the first match of the
// pattern. It fails if there is no match.
func (r *Reader[E]) TakeUntil(p Pattern) (Input, error) {
	head, tail, k := r.input.splitUntil(p, false, "take until")
	if k != nil {
		return Input{}, raiseInvalid[E](k)
	}
	r.input = tail
	return head, nil
}

// TakeUntilOpt consumes up to, but not including, the first match of
// the pattern, or all remaining input if there is no match.
func (r *Reader[E]) TakeUntilOpt(p Pattern) Input {
	head, tail, ok := r.input.SplitUntilOpt(p)
	if !ok {
		return r.TakeRemaining()
	}
	r.input = tail
	return head
}

// TakeUntilConsume consumes up to the first match of the pattern,
// consumes the match itself, and returns only the part before it. It
// fails if there is no match.
func (r *Reader[E]) TakeUntilConsume(p Pattern) (Input, error) {
	head, tail, k := r.input.splitUntil(p, true, "take until consume")
	if k != nil {
		return Input{}, raiseInvalid[E](k)
	}
	r.input = tail
	return head, nil
}

// SkipUntil consumes and discards input up to, but not including, the
// first match of the pattern, and returns how many bytes were skipped.
// It fails if there is no match.
func (r *Reader[E]) SkipUntil(p Pattern) (int, error) {
	head, tail, k := r.input.splitUntil(p, false, "skip until")
	if k != nil {
		return 0, raiseInvalid[E](k)
	}
	r.input = tail
	return head.Len(), nil
}

// TakeWhileMatch consumes the longest prefix the pattern repeatedly
// matches. It never fails; the prefix may be empty.
func (r *Reader[E]) TakeWhileMatch(p Pattern) Input {
	index, ok := p.FindReject(r.input)
	if !ok {
		return r.TakeRemaining()
	}
	head, tail, _ := r.input.SplitAtOpt(index)
	r.input = tail
	return head
}

// Skip consumes and discards exactly n bytes.
func (r *Reader[E]) Skip(n int) error {
	_, tail, k := r.input.splitAt(n, "skip")
	if k != nil {
		return raiseShortfall[E](k)
	}
	r.input = tail
	return nil
}

// SkipWhile consumes bytes while the predicate accepts them and
// returns how many were skipped.
func (r *Reader[E]) SkipWhile(pred func(byte) bool) int {
	return r.TakeWhile(pred).Len()
}

// TrySkipWhile is SkipWhile with a fallible predicate.
func (r *Reader[E]) TrySkipWhile(pred func(byte) (bool, error)) (int, error) {
	head, err := r.TryTakeWhile(pred)
	if err != nil {
		return 0, err
	}
	return head.Len(), nil
}

// TakeConsumed runs f against the reader and returns the input f
// consumed as one view.
func (r *Reader[E]) TakeConsumed(f func(r *Reader[E])) Input {
	before := r.input
	f(r)
	return consumedBy(before, r.input)
}

// TryTakeConsumed is TakeConsumed with a fallible body; a failing body
// leaves the reader where the body left it and consumes nothing.
func (r *Reader[E]) TryTakeConsumed(f func(r *Reader[E]) error) (Input, error) {
	before := r.input
	if err := f(r); err != nil {
		return Input{}, err
	}
	return consumedBy(before, r.input), nil
}

// consumedBy returns the view covering what a reader consumed between
// two snapshots of its unread input. If the consumption left an
// unbounded tail the consumed view's end stays open: with more input
// the same body could have consumed further.
func consumedBy(before, after Input) Input {
	used := before.Len() - after.Len()
	if after.Bound() == BoundNone {
		return before.slice(0, used, before.bound.openEnd())
	}
	return before.slice(0, used, before.bound.closeEnd())
}

// Peek returns the next n bytes without consuming them.
func (r *Reader[E]) Peek(n int) (Input, error) {
	head, _, k := r.input.splitAt(n, "peek")
	if k != nil {
		return Input{}, raiseShortfall[E](k)
	}
	return head, nil
}

// PeekOpt returns the next n bytes without consuming them, or ok=false
// if fewer remain.
func (r *Reader[E]) PeekOpt(n int) (Input, bool) {
	head, _, ok := r.input.SplitAtOpt(n)
	return head, ok
}

// PeekByte returns the next byte without consuming it.
func (r *Reader[E]) PeekByte() (byte, error) {
	b, k := r.input.first("peek byte")
	if k != nil {
		return 0, raiseShortfall[E](k)
	}
	return b, nil
}

// PeekByteOpt returns the next byte without consuming it, or ok=false
// at the end of input.
func (r *Reader[E]) PeekByteOpt() (byte, bool) {
	b, k := r.input.first("peek byte")
	return b, k == nil
}

// PeekEq returns true if the unread input starts with prefix.
func (r *Reader[E]) PeekEq(prefix []byte) bool {
	return r.input.HasPrefix(prefix)
}

// PeekMatch returns true if the pattern matches at the very front of
// the unread input.
func (r *Reader[E]) PeekMatch(p Pattern) bool {
	index, _, ok := p.FindMatch(r.input)
	return ok && index == 0
}

// Consume requires and consumes an exact byte sequence.
func (r *Reader[E]) Consume(prefix []byte) error {
	_, tail, k := r.input.splitPrefix(prefix, "consume")
	if k != nil {
		return raiseMismatch[E](k)
	}
	r.input = tail
	return nil
}

// ConsumeOpt consumes an exact byte sequence if it is next, returning
// whether it was.
func (r *Reader[E]) ConsumeOpt(prefix []byte) bool {
	_, tail, ok := r.input.splitPrefixOpt(prefix)
	if ok {
		r.input = tail
	}
	return ok
}

// ConsumeByte requires and consumes a single exact byte.
func (r *Reader[E]) ConsumeByte(b byte) error {
	_, tail, k := r.input.splitPrefix([]byte{b}, "consume byte")
	if k != nil {
		return raiseMismatch[E](k)
	}
	r.input = tail
	return nil
}

// ConsumeByteOpt consumes a single exact byte if it is next, returning
// whether it was.
func (r *Reader[E]) ConsumeByteOpt(b byte) bool {
	return r.ConsumeOpt([]byte{b})
}

// Byte consumes and returns the next byte.
func (r *Reader[E]) Byte() (byte, error) {
	b, tail, k := r.input.splitFirst("read byte")
	if k != nil {
		return 0, raiseShortfall[E](k)
	}
	r.input = tail
	return b, nil
}

// Text validates all remaining input as UTF-8, consumes it and returns
// it flagged as a string.
func (r *Reader[E]) Text() (Input, error) {
	s, err := r.input.text("text")
	if err != nil {
		return Input{}, convertKind[E](err)
	}
	r.input = r.input.endView()
	return s, nil
}

// Context runs f and, if it fails, attaches a frame naming the
// operation together with the input the scope started from. Frames
// accumulate outward: the outermost scope's frame is walked first.
func (r *Reader[E]) Context(operation string, f func(r *Reader[E]) error) error {
	before := r.input
	if err := f(r); err != nil {
		return attachContext[E](err, before, Context{Operation: operation, Span: before.Span()})
	}
	return nil
}

// Verify runs f and fails with an invalid-value error naming expected
// if f returns false. The failure is fatal: a verification that
// rejected a value will reject it again however much input arrives.
func (r *Reader[E]) Verify(expected string, f func(r *Reader[E]) bool) error {
	before := r.input
	if f(r) {
		return nil
	}
	return raiseInvalid[E](&InvalidValue{
		desc:  expected,
		span:  before.Span(),
		input: before,
		ctx:   Context{Operation: "verify", Expected: expected, Span: before.Span()},
	})
}

// TryVerify is Verify with a fallible check; a check failure gains a
// grouped frame naming the operation.
func (r *Reader[E]) TryVerify(expected string, f func(r *Reader[E]) (bool, error)) error {
	before := r.input
	ok, err := f(r)
	if err != nil {
		return attachContext[E](convertKind[E](err), before, operationContext("verify", before.Span()))
	}
	if ok {
		return nil
	}
	return raiseInvalid[E](&InvalidValue{
		desc:  expected,
		span:  before.Span(),
		input: before,
		ctx:   Context{Operation: "verify", Expected: expected, Span: before.Span()},
	})
}

// Expect runs f and fails with an invalid-value error naming expected
// if f returns ok=false. Like Verify, the failure is fatal.
//
// Value-returning combinators are package functions because their
// result type is the caller's, not the reader's.
func Expect[T any, E Error[E]](r *Reader[E], expected string, f func(r *Reader[E]) (T, bool)) (T, error) {
	before := r.input
	v, ok := f(r)
	if ok {
		return v, nil
	}
	var zero T
	return zero, raiseInvalid[E](&InvalidValue{
		desc:  expected,
		span:  before.Span(),
		input: before,
		ctx:   Context{Operation: "expect", Expected: expected, Span: before.Span()},
	})
}

// TryExpect is Expect with a fallible body; a body failure gains a
// grouped frame naming the operation.
func TryExpect[T any, E Error[E]](r *Reader[E], expected string, f func(r *Reader[E]) (T, bool, error)) (T, error) {
	before := r.input
	v, ok, err := f(r)
	if err != nil {
		var zero T
		return zero, attachContext[E](convertKind[E](err), before, operationContext("expect", before.Span()))
	}
	if ok {
		return v, nil
	}
	var zero T
	return zero, raiseInvalid[E](&InvalidValue{
		desc:  expected,
		span:  before.Span(),
		input: before,
		ctx:   Context{Operation: "expect", Expected: expected, Span: before.Span()},
	})
}

// Erased runs a body whose failures carry a different, richer or
// foreign error shape and erases them into an invalid-value failure
// that keeps only the retry requirement, when the body's error exposes
// one through Retryable. Use it to nest a sub-parse without threading
// its error detail into the enclosing error type.
func Erased[T any, E Error[E]](r *Reader[E], expected string, f func(r *Reader[E]) (T, error)) (T, error) {
	before := r.input
	v, err := f(r)
	if err == nil {
		return v, nil
	}
	retry := NoRequirement
	if rt, ok := err.(Retryable); ok {
		retry = rt.RetryRequirement()
	}
	var zero T
	return zero, raiseInvalid[E](&InvalidValue{
		desc:  expected,
		span:  before.Span(),
		input: before,
		retry: retry,
		ctx:   Context{Operation: "expect", Expected: expected, Span: before.Span()},
	})
}

// TryExternal hands the unread input to an external operation, such as
// a third-party decoder, then consumes the number of bytes the
// operation reports. A failing operation is folded into an
// invalid-value failure; if its error implements ExternalError the
// failure keeps the external span, requirement and context frames.
func TryExternal[T any, E Error[E]](r *Reader[E], expected string, f func(i Input) (T, int, error)) (T, error) {
	before := r.input
	v, consumed, err := f(before)
	if err != nil {
		span, hasSpan, retry, frames := externalParts(err)
		if !hasSpan || !span.IsWithin(before.Span()) {
			span = before.Span()
		}
		e := raiseInvalid[E](&InvalidValue{
			desc:  expected,
			span:  span,
			input: before,
			retry: retry,
			ctx:   Context{Operation: "external", Expected: expected, Span: span},
		})
		if frames != nil {
			frames(func(c Context) { e = attachContext[E](e, before, c) })
		}
		var zero T
		return zero, e
	}
	_, tail, k := before.splitAt(consumed, "external")
	if k != nil {
		var zero T
		return zero, raiseShortfall[E](k)
	}
	r.input = tail
	return v, nil
}

// Recover runs f and, if it fails, rewinds the reader and reports
// ok=false instead of an error. All failure detail is discarded.
func Recover[T any, E Error[E]](r *Reader[E], f func(r *Reader[E]) (T, error)) (T, bool) {
	before := r.input
	v, err := f(r)
	if err != nil {
		r.input = before
		var zero T
		return zero, false
	}
	return v, true
}

// RecoverIf runs f and, if it fails with an error the predicate
// accepts, rewinds the reader and reports ok=false. Errors the
// predicate declines are re-raised with a grouped frame marking the
// attempted recovery.
func RecoverIf[T any, E Error[E]](r *Reader[E], f func(r *Reader[E]) (T, error), pred func(e E) bool) (T, bool, error) {
	before := r.input
	v, err := f(r)
	if err == nil {
		return v, true, nil
	}
	var zero T
	if e, ok := err.(E); ok && pred(e) {
		r.input = before
		return zero, false, nil
	}
	return zero, false, attachContext[E](err, before, operationContext("recover if", before.Span()))
}
