// Package coutil provides single-threaded, cooperative computations:
// single-shot tasks that eventually produce one value, and generators
// that lazily produce a sequence of values.
//
// A computation makes progress only when its owning handle is driven by
// the caller, directly or through the WaitAll/WaitAny combinators. There
// is no scheduler and no parallelism; suspension happens only at the
// points the computation body marks by calling the suspend or yield
// capability it is given.
//
// Every Task and Generator exclusively owns exactly one computation.
// Ownership is transferred with Move (the source becomes empty), and an
// unfinished computation is torn down with Destroy. Driving an empty
// handle is a programming error and panics with ErrInvalidState.
package coutil

// Status reports the progress of a resumable computation after one step.
type Status int

const (
	// Suspended means the computation paused at a suspension point and
	// can be stepped again.
	Suspended Status = iota
	// Completed means the computation finished and its outcome is fixed.
	Completed
)

func (s Status) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Resumable is the primitive capability Task and Generator are built on:
// drive a paused computation forward by exactly one
// suspension-to-suspension step. Implementations report whether the
// computation paused again or completed.
type Resumable interface {
	Step() Status
}
