package wary

// Error is the constraint a parse error type satisfies so that Reader
// primitives can raise it and context scopes can enrich it. The
// constraint is self-referential: implementations construct and return
// their own type, which is what lets the same parse code run under a
// zero-cost error or a verbose diagnostic error without duplication.
//
// The From constructors must be total: every error form is losslessly
// constructible from each of the three concrete kinds, even if the
// form then discards detail (Minimal keeps only the retry requirement,
// Fatal keeps nothing). The reverse derivation does not exist.
type Error[E any] interface {
	error
	// FromMismatch constructs the error from a failed exact value
	// requirement.
	FromMismatch(*ValueMismatch) E
	// FromShortfall constructs the error from a failed length
	// requirement.
	FromShortfall(*LengthShortfall) E
	// FromInvalid constructs the error from a failed validity
	// requirement.
	FromInvalid(*InvalidValue) E
	// WithContext returns the error with an additional context frame,
	// given the wider input of the scope the error is bubbling out of.
	WithContext(input Input, c Context) E
}

// Details is the capability a rendered error exposes: everything the
// display subsystem needs, and nothing about how the error stores it.
// The three concrete kinds and the catch-all Expected all provide it.
type Details interface {
	error
	// Input returns the ambient input: the widest view the error has
	// seen while propagating, the "big picture".
	Input() Input
	// Span returns the exact location of the failure.
	Span() Span
	// ExpectedValue returns the exact value that was expected, if the
	// failure was a value mismatch.
	ExpectedValue() (Input, bool)
	// Description returns a one-line description of what went wrong.
	Description() string
	// Backtrace returns the walkable context trail.
	Backtrace() Backtrace
}

// kindError is what the three concrete kinds have in common; the
// catch-all delegates through it.
type kindError interface {
	Details
	Retryable
	Context() Context
}

// raise converts a concrete kind into the caller's error type.
func raiseMismatch[E Error[E]](k *ValueMismatch) error {
	var z E
	return z.FromMismatch(k)
}

func raiseShortfall[E Error[E]](k *LengthShortfall) error {
	var z E
	return z.FromShortfall(k)
}

func raiseInvalid[E Error[E]](k *InvalidValue) error {
	var z E
	return z.FromInvalid(k)
}

// convertKind lifts a concrete kind returned by an Input primitive
// into the caller's error type. Errors that are already converted, or
// foreign, pass through untouched.
func convertKind[E Error[E]](err error) error {
	if err == nil {
		return nil
	}
	switch k := err.(type) {
	case *ValueMismatch:
		return raiseMismatch[E](k)
	case *LengthShortfall:
		return raiseShortfall[E](k)
	case *InvalidValue:
		return raiseInvalid[E](k)
	default:
		return err
	}
}

// attachContext pushes a context frame onto an error of the caller's
// type as it bubbles out of a scope. Foreign errors pass through
// untouched; context is strictly additive and never replaces or drops
// what the error already carries.
func attachContext[E Error[E]](err error, input Input, c Context) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(E); ok {
		return e.WithContext(input, c)
	}
	return err
}
