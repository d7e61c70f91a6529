package sched

// Batch is an explicit two-phase surface over the zero-sentinel group
// protocol: collect unblocks and kills, then End commits the dispatch
// decision. The sentinel form on the Scheduler remains available for
// tight kernel paths.
type Batch[T Schedulable] struct {
	scheduler *Scheduler[T]
	current   T
	done      bool
}

// BeginBatch opens a group operation on behalf of current.
func (s *Scheduler[T]) BeginBatch(current T) *Batch[T] {
	return &Batch[T]{scheduler: s, current: current}
}

// Unblock records that task became runnable.
func (b *Batch[T]) Unblock(task T) {
	if b.done {
		panic("sched: batch already ended")
	}
	var zero T
	b.scheduler.OnTaskUnblocked(zero, task)
}

// Kill records that task was killed and removes it from the ready queue.
func (b *Batch[T]) Kill(task T) {
	if b.done {
		panic("sched: batch already ended")
	}
	var zero T
	b.scheduler.OnTaskKilled(zero, task)
}

// End commits the batch and returns the task to dispatch. It issues the
// terminating call through the unblocked handler when one is assembled,
// falling back to the killed handler otherwise.
func (b *Batch[T]) End() T {
	if b.done {
		panic("sched: batch already ended")
	}
	b.done = true
	var zero T
	if b.scheduler.assembly.TaskUnblocked != nil {
		return b.scheduler.OnTaskUnblocked(b.current, zero)
	}
	return b.scheduler.OnTaskKilled(b.current, zero)
}
