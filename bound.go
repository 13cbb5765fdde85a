package wary

// Bound describes whether an Input's sides may still change when more of
// a stream arrives. It is what makes retry requirements trustworthy: an
// error raised over input whose end cannot move is never worth retrying.
type Bound uint8

const (
	// BoundNone means both sides of the input may change in further
	// passes. Input with no bounds only originates at the end of a scan
	// that could have continued, so it is always empty.
	BoundNone Bound = iota
	// BoundStart means the start of the input is fixed but the end may
	// grow in further passes. This is the state of freshly wrapped
	// streaming input.
	BoundStart
	// BoundStartEnd means neither side changes in further passes.
	// Errors over fully bounded input are never retryable.
	BoundStartEnd
)

// String returns the name of the bound state.
func (b Bound) String() string {
	switch b {
	case BoundNone:
		return "none"
	case BoundStart:
		return "start"
	case BoundStartEnd:
		return "start-end"
	default:
		return "invalid"
	}
}

// openEnd is applied when a scan ran to the end of the available input
// and could have continued had more arrived.
func (b Bound) openEnd() Bound {
	switch b {
	case BoundStartEnd, BoundStart:
		return BoundStart
	default:
		return BoundNone
	}
}

// closeEnd is applied to the head of a definite-length split: the head's
// extent is now known exactly, whatever the parent's bound was.
func (b Bound) closeEnd() Bound {
	return BoundStartEnd
}

// forEnd is the bound of an empty view taken at the end of the input.
// If the parent was not fully bounded we skipped there without knowing
// where the true end is, so neither side of the view is fixed.
func (b Bound) forEnd() Bound {
	if b == BoundStartEnd {
		return BoundStartEnd
	}
	return BoundNone
}
