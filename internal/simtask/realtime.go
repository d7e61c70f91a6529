package simtask

import (
	"fmt"

	"github.com/google/uuid"
)

// RealtimeTask is a simulated periodic task instance with an absolute
// deadline. Instances order themselves by deadline: earlier runs first.
type RealtimeTask struct {
	UID uuid.UUID
	ID  uint
	// Deadline is the absolute tick by which the instance must finish.
	Deadline uint
	// Work is the remaining execution time in ticks.
	Work uint
}

// NewRealtime creates one instance of a periodic task.
func NewRealtime(id, deadline, work uint) *RealtimeTask {
	return &RealtimeTask{
		UID:      uuid.New(),
		ID:       id,
		Deadline: deadline,
		Work:     work,
	}
}

// RanksAbove reports whether t must run before other. Equal deadlines
// report false, so the ready queue keeps arrival order.
func (t *RealtimeTask) RanksAbove(other *RealtimeTask) bool {
	return t.Deadline < other.Deadline
}

func (t *RealtimeTask) String() string {
	return fmt.Sprintf("task %d (deadline %d, work %d)", t.ID, t.Deadline, t.Work)
}
