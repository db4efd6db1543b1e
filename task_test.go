package coutil

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskEagerRunsToCompletion(t *testing.T) {
	p := 4
	task := NewVoidTask(func(suspend func()) error {
		p = 44
		return nil
	})

	require.False(t, task.Empty())
	require.True(t, task.Done())
	assert.Equal(t, 44, p)

	task.Wait()
	require.True(t, task.Done())

	_, err := task.Get()
	require.NoError(t, err)
	assert.True(t, task.Empty())
}

func TestTaskEagerStopsAtFirstSuspension(t *testing.T) {
	p := 0
	task := NewVoidTask(func(suspend func()) error {
		p = 1
		suspend()
		p = 2
		return nil
	})

	require.False(t, task.Done())
	assert.Equal(t, 1, p)

	task.Resume()
	require.True(t, task.Done())
	assert.Equal(t, 2, p)

	_, err := task.Get()
	require.NoError(t, err)
}

func TestTaskLazyDefersBody(t *testing.T) {
	p := 6
	task := NewLazyVoidTask(func(suspend func()) error {
		p = 77
		return nil
	})

	require.False(t, task.Done())
	assert.Equal(t, 6, p)

	task.Wait()
	require.True(t, task.Done())
	assert.Equal(t, 77, p)

	_, err := task.Get()
	require.NoError(t, err)
}

func TestTaskResumeStepsOnce(t *testing.T) {
	steps := 0
	task := NewLazyVoidTask(func(suspend func()) error {
		for i := 0; i < 3; i++ {
			steps++
			suspend()
		}
		return nil
	})

	assert.Equal(t, 0, steps)
	task.Resume()
	assert.Equal(t, 1, steps)
	task.Resume()
	assert.Equal(t, 2, steps)
	task.Resume()
	assert.Equal(t, 3, steps)
	require.False(t, task.Done())

	task.Resume()
	require.True(t, task.Done())
	assert.Equal(t, 3, steps)

	// no-op once completed
	task.Resume()
	require.True(t, task.Done())

	_, err := task.Get()
	require.NoError(t, err)
}

func TestTaskGetMovesValueOut(t *testing.T) {
	task := NewTask(func(suspend func()) (int, error) {
		return 6 + 7, nil
	})

	v, err := task.Get()
	require.NoError(t, err)
	assert.Equal(t, 13, v)

	require.True(t, task.Empty())
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Get() })
}

func TestTaskReferenceResult(t *testing.T) {
	x := 42
	task := NewTask(func(suspend func()) (*int, error) {
		return &x, nil
	})

	p, err := task.Get()
	require.NoError(t, err)
	assert.Same(t, &x, p)
}

func TestTaskFailure(t *testing.T) {
	errBoom := errors.New("boom")

	task := NewTask(func(suspend func()) (int, error) {
		return 0, errBoom
	})
	require.True(t, task.Done())

	_, err := task.Get()
	require.Error(t, err)
	assert.Equal(t, errBoom, err) // delivered verbatim, not wrapped
	assert.True(t, task.Empty())
}

func TestTaskFailureAfterSuspension(t *testing.T) {
	errBoom := errors.New("boom")

	task := NewLazyTask(func(suspend func()) (int, error) {
		suspend()
		return 0, errBoom
	})

	task.Wait()
	require.True(t, task.Done())

	_, err := task.Get()
	assert.Equal(t, errBoom, err)
}

func TestTaskPanicCapturedAsFailure(t *testing.T) {
	task := NewTask(func(suspend func()) (int, error) {
		panic("kaboom")
	})
	require.True(t, task.Done())

	_, err := task.Get()
	require.Error(t, err)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

func TestTaskPanicWithErrorUnwraps(t *testing.T) {
	errBoom := errors.New("boom")

	task := NewLazyVoidTask(func(suspend func()) error {
		panic(errBoom)
	})

	_, err := task.Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestTaskEmptyOperationsPanic(t *testing.T) {
	task := &Task[int]{}

	assert.True(t, task.Empty())
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Done() })
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Resume() })
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Wait() })
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Get() })
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Move() })
	task.Destroy() // no-op
}

func TestTaskMove(t *testing.T) {
	task := NewLazyTask(func(suspend func()) (int, error) {
		return 9, nil
	})

	moved := task.Move()
	require.True(t, task.Empty())
	assert.PanicsWithValue(t, ErrInvalidState, func() { task.Done() })

	v, err := moved.Get()
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestTaskDestroyRunsDefers(t *testing.T) {
	cleaned := false
	task := NewVoidTask(func(suspend func()) error {
		defer func() { cleaned = true }()
		suspend()
		return nil
	})

	require.False(t, task.Done())
	task.Destroy()
	assert.True(t, cleaned)
	assert.True(t, task.Empty())

	task.Destroy() // no-op once empty
}

func TestTaskDestroyBeforeStart(t *testing.T) {
	started := false
	task := NewLazyVoidTask(func(suspend func()) error {
		started = true
		return nil
	})

	task.Destroy()
	assert.False(t, started)
	assert.True(t, task.Empty())
}
