package sched

// Priority-change handlers.

// PriorityChangedBalance reacts to an external priority change of a ready
// task: the task is re-homed in the queue, and if it now outranks current,
// current is preempted. Ties keep current running.
//
// The task must be ready and must not be current; the running task
// changing its own priority goes through SelfPriorityChangedRequeue.
type PriorityChangedBalance[T Schedulable] struct {
	Outranks RankFunc[T]
}

func (h PriorityChangedBalance[T]) OnTaskPriorityChanged(s *Scheduler[T], current, task T, oldPriority uint) T {
	if current == task {
		panic("sched: the running task must use the self priority change path")
	}
	s.AdjustPosition(task, oldPriority)
	if h.Outranks(task, current) {
		s.Ready(current)
		return s.nextOrIdle()
	}
	return current
}

// SelfPriorityChangedRequeue reacts to the running task changing its own
// priority: current rejoins the ready queue at the position its new
// priority dictates and the highest-ranked task runs — possibly current
// again.
type SelfPriorityChangedRequeue[T Schedulable] struct{}

func (SelfPriorityChangedRequeue[T]) OnSelfPriorityChanged(s *Scheduler[T], current T) T {
	s.Ready(current)
	return s.nextOrIdle()
}
