package sched

// Policy is a ready-queue: a container of borrowed task references with
// exactly two primitives. Implementations define the ranking; ties are
// always broken by insertion order.
type Policy[T Schedulable] interface {
	// Next removes and returns the highest-ranked ready task. The second
	// return value is false when the queue is empty.
	Next() (T, bool)

	// Ready inserts a task. The task must not already be present.
	Ready(task T)
}

// Remover is an optional policy capability required by the task-killed
// handler: remove a specific task from wherever it sits in the queue.
type Remover[T Schedulable] interface {
	// Remove removes task from the queue. The task must be present.
	Remove(task T)
}

// PositionAdjuster is an optional policy capability required by the
// priority-changed handler: re-home a task whose priority changed while
// it was enqueued.
type PositionAdjuster[T Schedulable] interface {
	// AdjustPosition moves task from the position implied by oldPriority
	// to the one implied by its current priority. The task must be
	// present under oldPriority.
	AdjustPosition(task T, oldPriority uint)
}

// PolicyMaker maps a priority level to a fresh sub-policy. A multi-queue
// policy calls it once per first-seen level; returning the same kind of
// policy for every level gives a homogeneous multi-queue, varying the kind
// by level a heterogeneous one.
type PolicyMaker[T Schedulable] func(level uint) Policy[T]

// FIFOMaker maps every priority level to a FIFO sub-queue. This is the
// maker behind prioritized round-robin and MLFQ.
func FIFOMaker[T Schedulable]() PolicyMaker[T] {
	return func(uint) Policy[T] { return NewFIFOPolicy[T]() }
}
