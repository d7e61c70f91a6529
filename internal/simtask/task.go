package simtask

import (
	"fmt"

	"github.com/google/uuid"
)

// Priority levels the simulator schedules across. Level bounds clamp
// Promote and Demote.
const (
	MinPriority uint = 1
	MaxPriority uint = 7
)

// Task is a simulated task control block. It satisfies every capability
// contract the priority-driven sample schedulers demand.
type Task struct {
	// UID tags the task instance across traces and reports.
	UID uuid.UUID
	// ID is the short human-facing identifier from the workload file.
	ID uint
	// Work is the remaining work in ticks; the world retires the task
	// when it reaches zero.
	Work uint

	priority uint
	ticks    uint
}

// New creates a task with the given workload. The priority is clamped
// into the legal range; the tick allotment starts at zero and is
// allocated when the task enters a quantum-aware ready queue.
func New(id, priority, work uint) *Task {
	if priority < MinPriority {
		priority = MinPriority
	} else if priority > MaxPriority {
		priority = MaxPriority
	}
	return &Task{
		UID:      uuid.New(),
		ID:       id,
		Work:     work,
		priority: priority,
	}
}

func (t *Task) Priority() uint { return t.priority }

// SetPriority clamps into the legal range, like New.
func (t *Task) SetPriority(priority uint) {
	if priority < MinPriority {
		priority = MinPriority
	} else if priority > MaxPriority {
		priority = MaxPriority
	}
	t.priority = priority
}

// Promote raises the task one level, clamped at MaxPriority.
func (t *Task) Promote() {
	if t.priority < MaxPriority {
		t.priority++
	}
}

// Demote lowers the task one level, clamped at MinPriority.
func (t *Task) Demote() {
	if t.priority > MinPriority {
		t.priority--
	}
}

func (t *Task) Tick() { t.ticks-- }

func (t *Task) HasUsedUpTimeAllotment() bool { return t.ticks == 0 }

func (t *Task) AllocateTicks(n uint) { t.ticks = n }

// RemainingTicks reports the current allotment, for traces.
func (t *Task) RemainingTicks() uint { return t.ticks }

func (t *Task) String() string {
	return fmt.Sprintf("task %d (priority %d, work %d)", t.ID, t.priority, t.Work)
}
