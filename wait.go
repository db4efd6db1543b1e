package coutil

import (
	"github.com/eapache/queue"
	"github.com/pkg/errors"
)

// Awaitable is the surface the combinators drive. Every Task implements
// it regardless of its result type.
type Awaitable interface {
	Empty() bool
	Done() bool
	Resume()
}

// WaitAll drives every task in the set until all have completed,
// stepping each not-yet-done task exactly once per round, in
// declaration order. Results are neither retrieved nor discarded;
// failures stay stored for their owners. Panics with ErrInvalidState if
// any task is empty.
func WaitAll(tasks ...Awaitable) {
	pending := queue.New()
	for _, t := range tasks {
		if t.Empty() {
			panic(ErrInvalidState)
		}
		if !t.Done() {
			pending.Add(t)
		}
	}
	for pending.Length() > 0 {
		round := pending.Length()
		for i := 0; i < round; i++ {
			t := pending.Remove().(Awaitable)
			t.Resume()
			if !t.Done() {
				pending.Add(t)
			}
		}
	}
}

// WaitAny drives the tasks in declaration-order rounds until one
// completes, returning its index; the remaining tasks keep whatever
// partial progress they reached. A task that is already done is
// reported before anything is stepped. Panics with ErrInvalidState if
// any task is empty, and with ErrInvalidOperation on an empty task set.
func WaitAny(tasks ...Awaitable) int {
	if len(tasks) == 0 {
		panic(errors.Wrap(ErrInvalidOperation, "wait on no tasks"))
	}
	for _, t := range tasks {
		if t.Empty() {
			panic(ErrInvalidState)
		}
	}
	for i, t := range tasks {
		if t.Done() {
			return i
		}
	}
	for {
		for i, t := range tasks {
			t.Resume()
			if t.Done() {
				return i
			}
		}
	}
}
