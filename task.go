package coutil

// Void is the result type of tasks that complete without producing a
// value.
type Void = struct{}

// Task is a single-shot computation that eventually produces one value
// of type T, or fails. It exclusively owns the computation; the zero
// value and a moved-from or consumed Task are empty, and every
// operation except Empty and Destroy panics with ErrInvalidState on an
// empty Task.
//
// The computation body receives a suspend capability; each call marks a
// suspension point where control returns to the driver. The body fails
// by returning a non-nil error, which is captured and delivered from
// Get. A panic in the body is captured the same way, as a *PanicError.
type Task[T any] struct {
	h *handle[Void, T]
}

// NewTask creates a task with eager start: the body runs immediately,
// up to its first suspension point or to completion.
func NewTask[T any](f func(suspend func()) (T, error)) *Task[T] {
	t := NewLazyTask(f)
	t.h.Step()
	return t
}

// NewLazyTask creates a task with lazy start: no part of the body runs
// until the task is first driven by Resume, Wait, or Get.
func NewLazyTask[T any](f func(suspend func()) (T, error)) *Task[T] {
	h := spawn("task", func(_ func(Void), suspend func()) (T, error) {
		return f(suspend)
	})
	return &Task[T]{h: h}
}

// NewVoidTask creates an eager task from a body with no result value.
func NewVoidTask(f func(suspend func()) error) *Task[Void] {
	return NewTask(voidBody(f))
}

// NewLazyVoidTask creates a lazy task from a body with no result value.
func NewLazyVoidTask(f func(suspend func()) error) *Task[Void] {
	return NewLazyTask(voidBody(f))
}

func voidBody(f func(suspend func()) error) func(suspend func()) (Void, error) {
	return func(suspend func()) (Void, error) {
		return Void{}, f(suspend)
	}
}

// Empty reports whether the task owns no computation.
func (t *Task[T]) Empty() bool {
	return t == nil || t.h == nil
}

func (t *Task[T]) handle() *handle[Void, T] {
	if t.Empty() {
		panic(ErrInvalidState)
	}
	return t.h
}

// Done reports whether the computation has completed, either with a
// value or with a captured failure.
func (t *Task[T]) Done() bool {
	return t.handle().done
}

// Resume drives the computation forward by exactly one
// suspension-to-suspension step. It is a no-op once the computation has
// completed.
func (t *Task[T]) Resume() {
	t.handle().Step()
}

// Wait drives the computation until completion. The outcome stays
// stored; failures surface only from Get.
func (t *Task[T]) Wait() {
	t.handle().stepAll()
}

// Get waits for completion and moves the result out: the produced value,
// or the failure captured from the body, delivered verbatim. Retrieval
// is single-use — afterwards the task is empty and a second Get panics
// with ErrInvalidState.
func (t *Task[T]) Get() (T, error) {
	h := t.handle()
	h.stepAll()
	t.h = nil
	return h.result.take()
}

// Move transfers ownership of the computation to the returned task,
// leaving the receiver empty.
func (t *Task[T]) Move() *Task[T] {
	h := t.handle()
	t.h = nil
	return &Task[T]{h: h}
}

// Destroy tears down the computation, releasing its resources. If the
// body is suspended it unwinds from the suspension point with its defers
// running. The task becomes empty; destroying an empty or completed
// task is a no-op.
func (t *Task[T]) Destroy() {
	if t.Empty() {
		return
	}
	t.h.destroy()
	t.h = nil
}
