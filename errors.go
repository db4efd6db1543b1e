package coutil

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidState indicates an operation on an empty handle: a
	// default, moved-from, or already-consumed Task, Generator, or
	// Iterator. Always a programming error; operations panic with it.
	ErrInvalidState = errors.New("coutil: operation on empty handle")

	// ErrInvalidOperation indicates an operation that the handle's
	// current state does not admit. Always a programming error.
	ErrInvalidOperation = errors.New("coutil: invalid operation")

	// ErrAdvancePastEnd indicates Next was called on an iterator that
	// already reached the end state, including the shared End marker.
	ErrAdvancePastEnd = errors.Wrap(ErrInvalidOperation, "advance past end")

	// errDestroyed unwinds a computation body during forced teardown.
	// It never escapes the handle goroutine through the outcome.
	errDestroyed = errors.New("coutil: computation destroyed")
)

// PanicError is the captured failure of a computation body that panicked
// instead of returning an error. The panic value and the stack at the
// panic site are preserved; if the body panicked with an error value,
// Unwrap exposes it to errors.Is and errors.As.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("coutil: computation panicked: %v", p.Value)
}

func (p *PanicError) Unwrap() error {
	err, ok := p.Value.(error)
	if !ok {
		return nil
	}
	return err
}
