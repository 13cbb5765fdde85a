package wary

// New wraps untrusted bytes as an Input. The view's start is fixed and
// its end is open: a later, longer buffer beginning with the same
// bytes is treated as "the same input, grown", which is what lets a
// retryable error mean "call again with more". Use Bounded on the
// result for whole-buffer parses that can never grow.
//
// The buffer must not be mutated while any view, span or error derived
// from it is alive.
func New(b []byte) Input {
	return Input{buf: b, start: 0, end: len(b), bound: BoundStart}
}

// NewString wraps a string as an Input already validated as UTF-8.
// The bytes are copied once here at the trust boundary; every view
// derived afterwards is zero-copy.
func NewString(s string) Input {
	return Input{buf: []byte(s), start: 0, end: len(s), bound: BoundStart, str: true}
}

// ReadAll parses a value from the whole input, requiring that f
// consumes every byte. Trailing input fails with a length error whose
// span covers exactly the unconsumed bytes; the failure is fatal, as
// more input could only make the excess worse.
func ReadAll[T any, E Error[E]](i Input, f func(r *Reader[E]) (T, error)) (T, error) {
	r := newReader[E](i)
	var v T
	err := r.Context("read all", func(r *Reader[E]) error {
		var ferr error
		v, ferr = f(r)
		if ferr != nil {
			return ferr
		}
		if !r.AtEnd() {
			trailing := r.input
			return raiseShortfall[E](&LengthShortfall{
				min:    0,
				max:    0,
				hasMax: true,
				span:   trailing.Span(),
				input:  i,
				ctx:    Context{Operation: "read all", Expected: "no trailing input", Span: trailing.Span()},
			})
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadPartial parses a value from the front of the input and returns
// the unread trail alongside it.
func ReadPartial[T any, E Error[E]](i Input, f func(r *Reader[E]) (T, error)) (T, Input, error) {
	r := newReader[E](i)
	var v T
	err := r.Context("read partial", func(r *Reader[E]) error {
		var ferr error
		v, ferr = f(r)
		return ferr
	})
	if err != nil {
		var zero T
		return zero, Input{}, err
	}
	return v, r.input, nil
}

// ReadInfallible parses with a body that cannot fail, for scans built
// only from the never-failing operations.
func ReadInfallible[T any](i Input, f func(r *Reader[Fatal]) T) T {
	r := newReader[Fatal](i)
	return f(r)
}
