package sched

// Creation, termination, yield, and block handlers.

// CreationKeepCurrent is the cooperative creation handler: the new task
// joins the ready queue and current keeps running. When current is the
// idle task the new task is dispatched directly instead.
type CreationKeepCurrent[T Schedulable] struct{}

func (CreationKeepCurrent[T]) OnTaskCreated(s *Scheduler[T], current, task T) T {
	if s.isIdle(current) {
		return task
	}
	s.Ready(task)
	return current
}

// CreationRunHigherPriority is the preemptive creation handler: current
// and the new task are ordered by rank, the loser joins the ready queue,
// the winner is dispatched. Ties favor current. When current is the idle
// task the new task is dispatched directly.
type CreationRunHigherPriority[T Schedulable] struct {
	Outranks RankFunc[T]
}

func (h CreationRunHigherPriority[T]) OnTaskCreated(s *Scheduler[T], current, task T) T {
	if s.isIdle(current) {
		return task
	}
	winner, loser := OrderByRank(h.Outranks, current, task)
	s.Ready(loser)
	return winner
}

// FinishRunNext handles self-termination: the next ready task runs.
// Current is destroyed by the kernel after the call and is never
// re-enqueued.
type FinishRunNext[T Schedulable] struct{}

func (FinishRunNext[T]) OnTaskFinished(s *Scheduler[T], _ T) T {
	return s.nextOrIdle()
}

// YieldRunNext handles a voluntary yield: current is still runnable, so
// it rejoins the ready queue before the next task is picked. When current
// is the only ready task it is dispatched again.
type YieldRunNext[T Schedulable] struct{}

func (YieldRunNext[T]) OnTaskYielded(s *Scheduler[T], current T) T {
	s.Ready(current)
	return s.nextOrIdle()
}

// BlockRunNext handles current blocking on a wait object: the kernel
// owns the parked task, so it is not enqueued and the next ready task
// runs.
type BlockRunNext[T Schedulable] struct{}

func (BlockRunNext[T]) OnTaskBlocked(s *Scheduler[T], _ T) T {
	return s.nextOrIdle()
}
