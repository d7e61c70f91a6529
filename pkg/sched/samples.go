package sched

// Sample assemblies for the classical schedulers. Each is a thin wrapper
// over an Assembly literal; custom combinations are built the same way.

// NewFIFO builds a cooperative first-come, first-served scheduler: tasks
// run until they yield, block, or finish.
func NewFIFO[T Schedulable](idleTask T) *Scheduler[T] {
	return New(Assembly[T]{
		Policy:          NewFIFOPolicy[T](),
		TimerInterrupt:  TimerKeepCurrent[T]{},
		TaskCreation:    CreationKeepCurrent[T]{},
		TaskTermination: FinishRunNext[T]{},
		TaskYielding:    YieldRunNext[T]{},
		TaskBlocked:     BlockRunNext[T]{},
		TaskUnblocked:   UnblockKeepCurrent[T]{},
	}, idleTask)
}

// NewRoundRobin builds a preemptive round-robin scheduler: FIFO order,
// with the CPU rotating at every timer tick.
func NewRoundRobin[T Schedulable](idleTask T) *Scheduler[T] {
	return New(Assembly[T]{
		Policy:          NewFIFOPolicy[T](),
		TimerInterrupt:  TimerRunNext[T]{},
		TaskCreation:    CreationKeepCurrent[T]{},
		TaskTermination: FinishRunNext[T]{},
		TaskYielding:    YieldRunNext[T]{},
		TaskBlocked:     BlockRunNext[T]{},
		TaskUnblocked:   UnblockKeepCurrent[T]{},
	}, idleTask)
}

// NewPrioritizedRoundRobin builds a fixed-priority preemptive scheduler:
// one FIFO sub-queue per priority level, served highest-first, rotating
// within a level at every tick.
func NewPrioritizedRoundRobin[T PrioritizableByPriority](idleTask T) *Scheduler[T] {
	return New(Assembly[T]{
		Policy:          NewMultiQueue[T](FIFOMaker[T]()),
		TimerInterrupt:  TimerRunNext[T]{},
		TaskCreation:    CreationRunHigherPriority[T]{Outranks: PriorityOrder[T]()},
		TaskTermination: FinishRunNext[T]{},
		TaskYielding:    YieldRunNext[T]{},
		TaskBlocked:     BlockRunNext[T]{},
		TaskUnblocked:   UnblockRunNext[T]{},
	}, idleTask)
}

// NewMLFQ builds a multilevel feedback queue scheduler. Every enqueue
// recharges the task's allotment from spec for its current level; a task
// that drains its allotment on the CPU is demoted one level and requeued.
func NewMLFQ[T FeedbackSchedulable](spec QuantumSpecifier, idleTask T) *Scheduler[T] {
	return New(Assembly[T]{
		Policy: WithEnqueueHooks[T](
			NewMultiQueue[T](FIFOMaker[T]()),
			AllocateQuantumOnReady[T](spec),
		),
		TimerInterrupt:    TimerQuantumBookkeeping[T]{},
		TaskQuantumUsedUp: QuantumDemote[T]{},
		TaskCreation:      CreationRunHigherPriority[T]{Outranks: PriorityOrder[T]()},
		TaskTermination:   FinishRunNext[T]{},
		TaskYielding:      YieldRunNext[T]{},
		TaskBlocked:       BlockRunNext[T]{},
		TaskUnblocked:     UnblockRunNext[T]{},
	}, idleTask)
}

// NewEDF builds an earliest-deadline-first scheduler over tasks that
// order themselves by deadline. Dispatch decisions happen at creation and
// termination; the timer never preempts.
func NewEDF[T ImplicitlyPrioritizable[T]](idleTask T) *Scheduler[T] {
	return New(Assembly[T]{
		Policy:          NewPrioritizedQueue[T](IntrinsicOrder[T]()),
		TimerInterrupt:  TimerKeepCurrent[T]{},
		TaskCreation:    CreationRunHigherPriority[T]{Outranks: IntrinsicOrder[T]()},
		TaskTermination: FinishRunNext[T]{},
	}, idleTask)
}
