package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrioritizedRoundRobinPrimitives(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 4)
	t3 := newTestTask(3, 9)

	s := NewPrioritizedRoundRobin(idle)

	_, ok := s.Next()
	require.False(t, ok, "ready queue starts empty")

	s.Ready(t1)
	s.Ready(t2)
	s.Ready(t3)

	for _, want := range []*testTask{t3, t2, t1} {
		task, ok := s.Next()
		require.True(t, ok)
		assert.Same(t, want, task, "tasks dequeue highest priority first")
	}

	_, ok = s.Next()
	require.False(t, ok)
}

func TestPrioritizedRoundRobinEventDelegates(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 4)
	t3 := newTestTask(3, 9)

	s := NewPrioritizedRoundRobin(idle)

	// Task 2 is running.
	assert.Same(t, t2, s.OnTaskCreated(t2, t1), "a lower-priority newcomer cannot preempt")
	assert.Same(t, t3, s.OnTaskCreated(t2, t3), "a higher-priority newcomer preempts")

	assert.Same(t, t2, s.OnTaskFinished(t3))
	assert.Same(t, t1, s.OnTaskFinished(t2))
	assert.Same(t, idle, s.OnTaskFinished(t1), "idle task runs when the queue drains")

	assert.Same(t, t3, s.OnTaskCreated(idle, t3), "any task preempts the idle task")
	assert.Same(t, t3, s.OnTaskCreated(t3, t2), "task 2 cannot preempt task 3")
	assert.Same(t, t2, s.OnTaskBlocked(t3), "task 2 resumes after task 3 blocked")
	assert.Same(t, t3, s.OnTaskUnblocked(t2, t3), "task 3 preempts task 2 once unblocked")
	assert.Same(t, t3, s.OnTaskYielded(t3), "task 3 still outranks everything after yielding")
}

func TestPrioritizedRoundRobinTimerInterrupt(t *testing.T) {
	idle := newTestTask(0, 0)
	t2 := newTestTask(2, 4)
	t3 := newTestTask(3, 9)

	s := NewPrioritizedRoundRobin(idle)

	assert.Same(t, idle, s.OnTimerInterrupt(idle), "idle task keeps running on an empty queue")

	assert.Same(t, t2, s.OnTaskCreated(idle, t2))
	assert.Same(t, t3, s.OnTaskCreated(t2, t3))

	assert.Same(t, t3, s.OnTimerInterrupt(t3), "task 3 resumes: nothing outranks it")
	assert.Same(t, t2, s.OnTaskFinished(t3))
	assert.Same(t, t2, s.OnTimerInterrupt(t2))
	assert.Same(t, idle, s.OnTaskFinished(t2))
	assert.Same(t, idle, s.OnTimerInterrupt(idle))
}

func TestPrioritizedRoundRobinGroupOperations(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 4)
	t3 := newTestTask(3, 9)

	s := NewPrioritizedRoundRobin(idle)

	// Task 1 is running; tasks 2 and 3 unblock, then the timer fires.
	assert.Nil(t, s.OnTaskUnblocked(nil, t2))
	assert.Nil(t, s.OnTaskUnblocked(nil, t3))

	assert.Same(t, t3, s.OnTimerInterrupt(t1), "highest unblocked priority wins at the tick")
	assert.Same(t, t3, s.OnTimerInterrupt(t3), "task 3 keeps outranking the rest")

	t4 := newTestTask(4, 7)
	t5 := newTestTask(5, 8)

	// Task 2 finishes while tasks 4 and 5 unblock.
	assert.Nil(t, s.OnTaskUnblocked(nil, t4))
	assert.Nil(t, s.OnTaskUnblocked(nil, t5))

	assert.Same(t, t5, s.OnTaskFinished(t2), "task 5 outranks every other ready task")
}

func TestPrioritizedTieBreakIsFCFS(t *testing.T) {
	idle := newTestTask(0, 0)
	a := newTestTask(1, 5)
	b := newTestTask(2, 5)
	c := newTestTask(3, 5)

	s := NewPrioritizedRoundRobin(idle)

	s.Ready(a)
	s.Ready(b)
	s.Ready(c)

	for _, want := range []*testTask{a, b, c} {
		task, ok := s.Next()
		require.True(t, ok)
		assert.Same(t, want, task, "equal priorities dequeue in arrival order")
	}
}
