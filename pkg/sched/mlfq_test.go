package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLFQQuantumAllocationOnReady(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 2)
	t3 := newTestTask(3, 3)

	s := NewMLFQ(mlfqQuantum, idle)

	_, ok := s.Next()
	require.False(t, ok, "ready queue starts empty")

	require.True(t, t1.HasUsedUpTimeAllotment(), "tasks arrive with no allotment")
	s.Ready(t1)
	assert.False(t, t1.HasUsedUpTimeAllotment(), "enqueueing allocates the level-1 quantum")

	require.True(t, t2.HasUsedUpTimeAllotment())
	s.Ready(t2)
	assert.False(t, t2.HasUsedUpTimeAllotment())
	assert.Equal(t, uint(2), t2.ticks, "level 2 gets two ticks")

	require.True(t, t3.HasUsedUpTimeAllotment())
	s.Ready(t3)
	assert.Equal(t, uint(1), t3.ticks, "level 3 gets one tick")

	for _, want := range []*testTask{t3, t2, t1} {
		task, ok := s.Next()
		require.True(t, ok)
		assert.Same(t, want, task, "levels are served highest first")
	}

	_, ok = s.Next()
	require.False(t, ok)
}

func TestMLFQEventDelegates(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 2)
	t3 := newTestTask(3, 3)

	s := NewMLFQ(mlfqQuantum, idle)

	assert.Same(t, t2, s.OnTaskCreated(idle, t2), "task 2 displaces the idle task")
	assert.Same(t, t2, s.OnTaskCreated(t2, t1), "task 1 cannot preempt task 2")
	assert.Same(t, t3, s.OnTaskCreated(t2, t3), "task 3 preempts task 2")

	assert.Same(t, t2, s.OnTaskBlocked(t3), "task 2 runs after task 3 blocked")
	assert.Equal(t, uint(3), t3.Priority(), "blocking does not demote")

	assert.Same(t, t1, s.OnTaskBlocked(t2))
	assert.Equal(t, uint(2), t2.Priority())

	assert.Same(t, idle, s.OnTaskBlocked(t1))
	assert.Equal(t, uint(1), t1.Priority())
}

func TestMLFQDemotionLadder(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 2)
	t3 := newTestTask(3, 3)

	s := NewMLFQ(mlfqQuantum, idle)

	s.Ready(t1)
	s.Ready(t2)
	s.Ready(t3)

	running, ok := s.Next()
	require.True(t, ok)
	require.Same(t, t3, running)

	// Tick 1: task 3 drains its single tick, drops to level 2, and the
	// recharge happens on requeue for the new level.
	running = s.OnTimerInterrupt(running)
	assert.Equal(t, uint(2), t3.Priority(), "task 3 demoted after draining its quantum")
	require.Same(t, t2, running, "task 2 runs next at level 2")

	// Tick 2: task 2 has one of its two ticks left.
	running = s.OnTimerInterrupt(running)
	require.Same(t, t2, running, "task 2 keeps the CPU with allotment remaining")
	assert.Equal(t, uint(2), t2.Priority())

	// Tick 3: task 2 drains and drops to level 1; task 3 resumes at
	// level 2 with a fresh two-tick allotment.
	running = s.OnTimerInterrupt(running)
	require.Same(t, t3, running)
	assert.Equal(t, uint(2), t3.Priority())
	assert.Equal(t, uint(1), t2.Priority(), "task 2 demoted to the bottom level")

	// Tick 4: task 3 consumes one tick of the recharged allotment.
	running = s.OnTimerInterrupt(running)
	require.Same(t, t3, running)

	// Tick 5: task 3 drains again and joins the bottom level; task 1
	// finally runs, and level-1 tasks run to completion.
	running = s.OnTimerInterrupt(running)
	require.Same(t, t1, running)
	assert.Equal(t, uint(1), t1.Priority())
	assert.Equal(t, uint(1), t3.Priority())
}

func TestMLFQGroupOperations(t *testing.T) {
	idle := newTestTask(0, 0)
	t1 := newTestTask(1, 1)
	t2 := newTestTask(2, 2)
	t3 := newTestTask(3, 3)

	s := NewMLFQ(mlfqQuantum, idle)

	s.Ready(t1)
	running, ok := s.Next()
	require.True(t, ok)
	require.Same(t, t1, running)

	// Task 1 is running; tasks 2 and 3 unblock inside the same interrupt
	// window as a timer tick.
	assert.Nil(t, s.OnTaskUnblocked(nil, t2))
	assert.Nil(t, s.OnTaskUnblocked(nil, t3))

	assert.Same(t, t1, s.OnTimerInterrupt(t1), "task 1 still has allotment at the tick")

	assert.Same(t, t3, s.OnTaskUnblocked(t1, nil), "task 3 preempts once the group completes")

	t4 := newTestTask(4, 3)
	t5 := newTestTask(5, 3)

	// Task 3 finishes while tasks 4 and 5 unblock.
	assert.Nil(t, s.OnTaskUnblocked(nil, t4))
	assert.Nil(t, s.OnTaskUnblocked(nil, t5))

	assert.Same(t, t4, s.OnTaskFinished(t3), "equal levels run in arrival order")
	assert.Same(t, t5, s.OnTaskFinished(t4))
}
