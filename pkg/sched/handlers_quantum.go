package sched

// Quantum-used-up handlers, invoked by TimerQuantumBookkeeping when the
// running task drains its allotment.

// QuantumDemote drops the drained task one priority level and requeues
// it. Pair it with a policy wrapped in AllocateQuantumOnReady and the
// requeue also recharges the allotment for the new level — the MLFQ
// feedback path.
type QuantumDemote[T PrioritizableByAutoMutablePriority] struct{}

func (QuantumDemote[T]) OnTaskQuantumUsedUp(s *Scheduler[T], current T) T {
	current.Demote()
	s.Ready(current)
	return s.nextOrIdle()
}

// QuantumRecharge keeps the drained task at its level, recharges its
// allotment from the specifier, and requeues it.
type QuantumRecharge[T QuantizableByPriority] struct {
	Spec QuantumSpecifier
}

func (h QuantumRecharge[T]) OnTaskQuantumUsedUp(s *Scheduler[T], current T) T {
	current.AllocateTicks(h.Spec(current.Priority()))
	s.Ready(current)
	return s.nextOrIdle()
}

// QuantumDemoteRecharge demotes the drained task, recharges its allotment
// for the new, lower level, and requeues it. Use this when the policy is
// not wrapped in AllocateQuantumOnReady.
type QuantumDemoteRecharge[T FeedbackSchedulable] struct {
	Spec QuantumSpecifier
}

func (h QuantumDemoteRecharge[T]) OnTaskQuantumUsedUp(s *Scheduler[T], current T) T {
	current.Demote()
	current.AllocateTicks(h.Spec(current.Priority()))
	s.Ready(current)
	return s.nextOrIdle()
}
