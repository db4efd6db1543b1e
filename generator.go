package coutil

// Generator is a computation that lazily produces a sequence of T
// values before completing, optionally with a failure. Construction is
// always lazy: no part of the body runs until the first element is
// requested through the iterator.
//
// The body receives a yield capability; each call publishes one element
// and suspends until the next element is requested. The sequence is
// strictly single-pass: obtaining the iterator consumes the generator's
// ownership, and a fresh Generator is required for another pass.
type Generator[T any] struct {
	h *handle[T, Void]
}

// NewGenerator creates a generator from a sequence-producing body. The
// body fails by returning a non-nil error, delivered from the
// iterator's Err once the sequence terminates; a panic in the body is
// captured the same way, as a *PanicError.
func NewGenerator[T any](f func(yield func(T)) error) *Generator[T] {
	h := spawn("generator", func(yield func(T), _ func()) (Void, error) {
		return Void{}, f(yield)
	})
	return &Generator[T]{h: h}
}

// Empty reports whether the generator owns no computation.
func (g *Generator[T]) Empty() bool {
	return g == nil || g.h == nil
}

// Iter consumes the generator's ownership and returns the iterator over
// its sequence; the generator is empty afterwards. The iterator starts
// un-advanced: call Next to produce the first element. Panics with
// ErrInvalidState on an empty generator.
func (g *Generator[T]) Iter() *Iterator[T] {
	if g.Empty() {
		panic(ErrInvalidState)
	}
	h := g.h
	g.h = nil
	return &Iterator[T]{h: h}
}

// Range consumes the generator and drives the whole sequence through f,
// stopping early when f returns false. It returns the failure that
// terminated the sequence, if any.
func (g *Generator[T]) Range(f func(T) bool) error {
	it := g.Iter()
	defer it.Destroy()
	for it.Next() {
		if !f(it.Value()) {
			return nil
		}
	}
	return it.Err()
}

// Move transfers ownership of the computation to the returned
// generator, leaving the receiver empty.
func (g *Generator[T]) Move() *Generator[T] {
	if g.Empty() {
		panic(ErrInvalidState)
	}
	h := g.h
	g.h = nil
	return &Generator[T]{h: h}
}

// Destroy tears down the computation, releasing its resources. The
// generator becomes empty; destroying an empty generator is a no-op.
func (g *Generator[T]) Destroy() {
	if g.Empty() {
		return
	}
	g.h.destroy()
	g.h = nil
}

// Iterator is the single-pass cursor over a generator's sequence. It
// owns the computation taken from its source generator and releases it
// when the sequence terminates.
//
// The protocol is scanner-shaped:
//
//	it := gen.Iter()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// the body failed after its last element
//	}
type Iterator[T any] struct {
	h       *handle[T, Void]
	current T
	err     error
	started bool
	end     bool
}

// End returns the shared terminal marker: a non-owning iterator usable
// only for equality comparison. Advancing it panics with
// ErrAdvancePastEnd like any other iterator in the end state.
func End[T any]() *Iterator[T] {
	return &Iterator[T]{end: true}
}

// Next resumes the computation until either a new element is yielded,
// in which case it returns true and Value holds the element, or the
// computation finishes, in which case it returns false and the iterator
// transitions to the end state, releasing its handle. Calling Next on
// an iterator already at the end panics with ErrAdvancePastEnd.
func (it *Iterator[T]) Next() bool {
	if it.end {
		panic(ErrAdvancePastEnd)
	}
	if it.h == nil {
		panic(ErrInvalidState)
	}
	it.started = true
	if it.h.Step() == Suspended {
		it.current = it.h.yielded
		return true
	}
	_, err := it.h.result.take()
	var zero T
	it.current, it.err = zero, err
	it.h = nil
	it.end = true
	return false
}

// Value returns the most recently produced element. Panics with
// ErrInvalidState before the first Next and in the end state.
func (it *Iterator[T]) Value() T {
	if it == nil || it.end || !it.started || it.h == nil {
		panic(ErrInvalidState)
	}
	return it.current
}

// Err returns the failure that terminated the sequence, delivered
// verbatim from the body. It is nil while the iterator is live and
// after a clean finish.
func (it *Iterator[T]) Err() error {
	if it == nil {
		return nil
	}
	return it.err
}

// AtEnd reports whether the iterator reached the terminal state.
func (it *Iterator[T]) AtEnd() bool {
	return it == nil || it.end
}

// Equal reports whether two iterators are equal: true iff both are in
// the end state. A live iterator never equals another iterator.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.AtEnd() && other.AtEnd()
}

// Destroy tears down an unfinished sequence. The iterator becomes
// terminal with no failure; destroying a terminal iterator is a no-op.
func (it *Iterator[T]) Destroy() {
	if it == nil || it.h == nil {
		return
	}
	it.h.destroy()
	it.h = nil
	it.end = true
}
