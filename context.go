package wary

// Context is a single "operation attempted" frame attached to a
// propagating error. Frames raised by the failing primitive itself
// carry the expected description and the span being worked on; frames
// pushed by enclosing scopes usually carry just an operation name.
type Context struct {
	// Operation describes what was being attempted. It should read
	// naturally in the sentence "error attempting to <operation>".
	Operation string
	// Expected optionally describes the value the operation was after.
	// Empty means no expectation is attached to this frame.
	Expected string
	// Span optionally records the region the operation was working on.
	Span Span

	child bool
}

// IsChild reports whether the frame is detail belonging to the frame
// above it. Walking a backtrace groups child frames under their parent
// at the same depth.
func (c Context) IsChild() bool { return c.child }

// operationContext builds the child frame primitives push while an
// error bubbles out of them.
func operationContext(operation string, span Span) Context {
	return Context{Operation: operation, Span: span, child: true}
}
