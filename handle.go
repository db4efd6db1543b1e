package coutil

import "sync/atomic"

// outcome is the tagged result of a computation: no result yet, a
// produced value, or a captured failure. It is fixed once the
// computation completes and is moved out at most once.
type outcome[R any] struct {
	value R
	err   error
	state outcomeState
}

type outcomeState int

const (
	outcomePending outcomeState = iota
	outcomeValue
	outcomeFailure
)

func (o *outcome[R]) complete(v R) {
	o.value = v
	o.state = outcomeValue
}

func (o *outcome[R]) fail(err error) {
	o.err = err
	o.state = outcomeFailure
}

// take moves the outcome out, leaving it pending again. The second
// return value is the captured failure, if the computation failed.
func (o *outcome[R]) take() (R, error) {
	v, err := o.value, o.err
	var zero R
	o.value, o.err, o.state = zero, nil, outcomePending
	return v, err
}

var handleID atomic.Uint64

// handle owns the goroutine backing one suspended computation. The
// driver and the computation strictly alternate through the unbuffered
// next channel: the driver sends a token to resume, the computation
// sends one back when it suspends, and closes the channel when it
// completes. At most one of the two sides runs at any moment, so the
// execution model stays single-threaded and cooperative.
//
// Y is the type of values the computation yields at suspension points
// (Void for tasks), R the type of its final result (Void for
// generators, which only report an error).
type handle[Y, R any] struct {
	id      uint64
	next    chan struct{}
	yielded Y
	result  outcome[R]
	done    bool
	killed  bool
}

var _ Resumable = (*handle[Void, Void])(nil)

// spawn starts the goroutine for a computation body. The body does not
// run until the handle is first stepped: the goroutine parks on the
// handshake channel before touching f.
func spawn[Y, R any](kind string, f func(yield func(Y), suspend func()) (R, error)) *handle[Y, R] {
	h := &handle[Y, R]{
		id:   handleID.Add(1),
		next: make(chan struct{}),
	}
	logger.Trace().Uint64("handle", h.id).Str("kind", kind).Msg("computation created")
	go h.run(f)
	return h
}

func (h *handle[Y, R]) run(f func(yield func(Y), suspend func()) (R, error)) {
	defer func() {
		if p := recover(); p != nil && p != any(errDestroyed) {
			h.result.fail(newPanicError(p))
		}
		h.done = true
		if h.killed {
			logger.Trace().Uint64("handle", h.id).Msg("computation destroyed")
		} else {
			logger.Trace().Uint64("handle", h.id).
				Bool("failed", h.result.state == outcomeFailure).
				Msg("computation finished")
		}
		close(h.next)
	}()

	<-h.next
	if h.killed {
		return
	}

	v, err := f(h.yield, h.suspend)
	if err != nil {
		h.result.fail(err)
	} else {
		h.result.complete(v)
	}
}

// yield publishes a value and suspends until the next step.
func (h *handle[Y, R]) yield(v Y) {
	h.yielded = v
	h.suspend()
}

// suspend parks the computation until the driver steps it again. During
// forced teardown, or if the capability escaped the body and is called
// after completion, it panics to unwind.
func (h *handle[Y, R]) suspend() {
	if h.done || h.killed {
		panic(errDestroyed)
	}
	h.next <- struct{}{}
	<-h.next
	if h.killed {
		panic(errDestroyed)
	}
}

// Step resumes the computation until its next suspension point or until
// completion. Stepping a completed computation is a no-op.
func (h *handle[Y, R]) Step() Status {
	if h.done {
		return Completed
	}
	h.next <- struct{}{}
	if _, ok := <-h.next; !ok {
		return Completed
	}
	return Suspended
}

// stepAll drives the computation until completion.
func (h *handle[Y, R]) stepAll() {
	for h.Step() == Suspended {
	}
}

// destroy tears down an unfinished computation: the body unwinds from
// its current suspension point (defers run) and the goroutine exits.
// Destroying a completed computation is a no-op.
func (h *handle[Y, R]) destroy() {
	if h.done {
		return
	}
	h.killed = true
	h.next <- struct{}{}
	<-h.next // closed once the body has unwound
}
