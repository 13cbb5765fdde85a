package wary

// WalkFunc visits one frame of a backtrace. depth starts at 1 and is
// shared by a parent frame and the child frames grouped under it.
// Returning false stops the walk immediately.
type WalkFunc func(depth int, c Context) bool

// Backtrace is a walkable stack of Context frames collected from an
// error, from the outermost operation down to the raising frame.
type Backtrace interface {
	// Root returns the frame of the primitive that raised the error.
	// It is always present, whatever the strategy.
	Root() Context
	// Count returns the total number of frames.
	Count() int
	// Walk visits frames outermost first, ending with the root frame.
	// It returns true if every frame was visited, false if the walker
	// stopped it early.
	Walk(f WalkFunc) bool
}

// backtraceStrategy is the compile-time hook the catch-all error uses
// to build its backtrace. The two implementations are the whole closed
// set; callers pick one through the error type parameter, so the
// choice costs nothing at runtime.
type backtraceStrategy[S any] interface {
	Backtrace
	fromRoot(c Context) S
	push(c Context) S
}

// RootBacktrace retains only the raising frame and ignores every push.
// It is the strategy for callers who want cheap errors that still name
// the failing operation.
type RootBacktrace struct {
	root Context
}

func (b RootBacktrace) fromRoot(c Context) RootBacktrace { return RootBacktrace{root: c} }

func (b RootBacktrace) push(Context) RootBacktrace { return b }

// Root returns the raising frame.
func (b RootBacktrace) Root() Context { return b.root }

// Count returns 1: only the root is retained.
func (b RootBacktrace) Count() int { return 1 }

// Walk visits the root frame.
func (b RootBacktrace) Walk(f WalkFunc) bool { return f(1, b.root) }

// FullBacktrace retains every pushed frame in order. Frames are pushed
// innermost first as the error bubbles out of nested scopes.
type FullBacktrace struct {
	root   Context
	frames []Context
}

func (b FullBacktrace) fromRoot(c Context) FullBacktrace { return FullBacktrace{root: c} }

func (b FullBacktrace) push(c Context) FullBacktrace {
	b.frames = append(b.frames, c)
	return b
}

// Root returns the raising frame.
func (b FullBacktrace) Root() Context { return b.root }

// Count returns the number of retained frames including the root.
func (b FullBacktrace) Count() int { return len(b.frames) + 1 }

// Walk visits the outermost pushed frame first and the root last.
// Child frames are held back and emitted under the next parent frame
// at the parent's depth, so the raising frame's operation detail ends
// up grouped with it.
func (b FullBacktrace) Walk(f WalkFunc) bool {
	total := len(b.frames) + 1
	// Frames in walk order: reverse push order, then the root.
	at := func(n int) Context {
		if n < len(b.frames) {
			return b.frames[len(b.frames)-1-n]
		}
		return b.root
	}
	childCursor := 0
	skipped := 0
	depth := 0
	for n := 0; n < total; n++ {
		c := at(n)
		if c.child {
			skipped++
			continue
		}
		depth++
		if !f(depth, c) {
			return false
		}
		for skipped > 0 {
			for !at(childCursor).child {
				childCursor++
			}
			if !f(depth, at(childCursor)) {
				return false
			}
			childCursor++
			skipped--
		}
	}
	return true
}
