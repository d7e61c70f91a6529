package sched

// Handler interfaces, one per scheduling event. Handlers reach the policy
// primitives and the idle task through the enclosing scheduler; the
// scheduler passes itself on every call.
//
// Return convention: a terminating call returns the task to dispatch,
// never the zero value when the scheduler has an idle task. An
// intermediate call (zero-valued current on OnTaskUnblocked and
// OnTaskKilled) only updates the queue and returns the zero value.

// TimerInterruptHandler decides what runs after a timer tick.
type TimerInterruptHandler[T Schedulable] interface {
	OnTimerInterrupt(s *Scheduler[T], current T) T
}

// TaskCreationHandler decides what runs after a new task appeared.
type TaskCreationHandler[T Schedulable] interface {
	OnTaskCreated(s *Scheduler[T], current, task T) T
}

// TaskTerminationHandler decides what runs after current finished.
// The kernel destroys current after the call; it is never re-enqueued.
type TaskTerminationHandler[T Schedulable] interface {
	OnTaskFinished(s *Scheduler[T], current T) T
}

// TaskYieldingHandler decides what runs after current gave up the CPU
// voluntarily. Current is still runnable.
type TaskYieldingHandler[T Schedulable] interface {
	OnTaskYielded(s *Scheduler[T], current T) T
}

// TaskBlockedHandler decides what runs after the kernel parked current on
// a wait object. Current must not be enqueued.
type TaskBlockedHandler[T Schedulable] interface {
	OnTaskBlocked(s *Scheduler[T], current T) T
}

// TaskUnblockedHandler decides what runs after a task became runnable
// again. Supports the intermediate/terminating protocol.
type TaskUnblockedHandler[T Schedulable] interface {
	OnTaskUnblocked(s *Scheduler[T], current, task T) T
}

// TaskKilledHandler removes a task another task killed. The victim must
// be ready and must not be current. Supports the intermediate/terminating
// protocol.
type TaskKilledHandler[T Schedulable] interface {
	OnTaskKilled(s *Scheduler[T], current, task T) T
}

// TaskPriorityChangedHandler reacts to an external priority change of a
// ready task. The task must not be current.
type TaskPriorityChangedHandler[T Schedulable] interface {
	OnTaskPriorityChanged(s *Scheduler[T], current, task T, oldPriority uint) T
}

// TaskSelfPriorityChangedHandler reacts to the running task changing its
// own priority.
type TaskSelfPriorityChangedHandler[T Schedulable] interface {
	OnSelfPriorityChanged(s *Scheduler[T], current T) T
}

// TaskQuantumUsedUpHandler reacts to current draining its tick allotment.
// Invoked by the quantum-aware timer handler.
type TaskQuantumUsedUpHandler[T Schedulable] interface {
	OnTaskQuantumUsedUp(s *Scheduler[T], current T) T
}

// Assembly names one ready-queue policy and any subset of event handlers.
// Leaving a handler nil means the scheduler does not service that event;
// calling it anyway is a kernel bug and panics.
type Assembly[T Schedulable] struct {
	Policy Policy[T]

	TimerInterrupt          TimerInterruptHandler[T]
	TaskCreation            TaskCreationHandler[T]
	TaskTermination         TaskTerminationHandler[T]
	TaskYielding            TaskYieldingHandler[T]
	TaskBlocked             TaskBlockedHandler[T]
	TaskUnblocked           TaskUnblockedHandler[T]
	TaskKilled              TaskKilledHandler[T]
	TaskPriorityChanged     TaskPriorityChangedHandler[T]
	TaskSelfPriorityChanged TaskSelfPriorityChangedHandler[T]
	TaskQuantumUsedUp       TaskQuantumUsedUpHandler[T]
}

// Scheduler is an assembled scheduler: one policy plus the configured
// event handlers, and optionally an idle task.
//
// All methods are synchronous and non-blocking; none may be called
// concurrently.
type Scheduler[T Schedulable] struct {
	assembly Assembly[T]
	idle     T
	hasIdle  bool
}

// New assembles a scheduler. Passing the zero value as idleTask builds a
// scheduler without idle-task support: terminating calls may then return
// the zero value when the ready queue is empty, and the caller decides.
//
// The idle task is borrowed. It must stay alive for the scheduler's whole
// lifetime and is never placed in the ready queue by the handlers.
func New[T Schedulable](assembly Assembly[T], idleTask T) *Scheduler[T] {
	if assembly.Policy == nil {
		panic("sched: assembly without a ready-queue policy")
	}
	var zero T
	return &Scheduler[T]{
		assembly: assembly,
		idle:     idleTask,
		hasIdle:  idleTask != zero,
	}
}

// Ready inserts a task into the ready queue. The kernel uses this for
// initial admission; handlers use it to requeue tasks.
func (s *Scheduler[T]) Ready(task T) {
	s.assembly.Policy.Ready(task)
}

// Next removes and returns the highest-ranked ready task. The second
// return value is false when the queue is empty. The kernel uses this to
// bootstrap; handlers use it to pick the next task.
func (s *Scheduler[T]) Next() (T, bool) {
	return s.assembly.Policy.Next()
}

// Remove removes a specific task from the ready queue. Panics when the
// policy does not support removal or the task is absent.
func (s *Scheduler[T]) Remove(task T) {
	r, ok := s.assembly.Policy.(Remover[T])
	if !ok {
		panic("sched: policy does not support removal")
	}
	r.Remove(task)
}

// AdjustPosition re-homes a ready task whose priority changed. Panics
// when the policy does not support it.
func (s *Scheduler[T]) AdjustPosition(task T, oldPriority uint) {
	a, ok := s.assembly.Policy.(PositionAdjuster[T])
	if !ok {
		panic("sched: policy does not support position adjustment")
	}
	a.AdjustPosition(task, oldPriority)
}

// IdleTask returns the idle task and whether one was configured.
func (s *Scheduler[T]) IdleTask() (T, bool) {
	return s.idle, s.hasIdle
}

// isIdle reports whether task is the configured idle task.
func (s *Scheduler[T]) isIdle(task T) bool {
	return s.hasIdle && task == s.idle
}

// nextOrIdle dequeues the next ready task, falling back to the idle task
// when the queue is empty and one is configured. Without idle support the
// zero value propagates to the caller.
func (s *Scheduler[T]) nextOrIdle() T {
	if task, ok := s.Next(); ok {
		return task
	}
	if s.hasIdle {
		return s.idle
	}
	var zero T
	return zero
}

// OnTimerInterrupt notifies the scheduler that a timer interrupt fired
// while current was running and returns the task to dispatch.
func (s *Scheduler[T]) OnTimerInterrupt(current T) T {
	if s.assembly.TimerInterrupt == nil {
		panic("sched: no timer interrupt handler assembled")
	}
	return s.assembly.TimerInterrupt.OnTimerInterrupt(s, current)
}

// OnTaskCreated notifies the scheduler that task was created while
// current was running and returns the task to dispatch.
func (s *Scheduler[T]) OnTaskCreated(current, task T) T {
	if s.assembly.TaskCreation == nil {
		panic("sched: no task creation handler assembled")
	}
	return s.assembly.TaskCreation.OnTaskCreated(s, current, task)
}

// OnTaskFinished notifies the scheduler that current finished and returns
// the task to dispatch. Current is never re-enqueued.
func (s *Scheduler[T]) OnTaskFinished(current T) T {
	if s.assembly.TaskTermination == nil {
		panic("sched: no task termination handler assembled")
	}
	return s.assembly.TaskTermination.OnTaskFinished(s, current)
}

// OnTaskYielded notifies the scheduler that current yielded and returns
// the task to dispatch, possibly current itself.
func (s *Scheduler[T]) OnTaskYielded(current T) T {
	if s.assembly.TaskYielding == nil {
		panic("sched: no task yielding handler assembled")
	}
	return s.assembly.TaskYielding.OnTaskYielded(s, current)
}

// OnTaskBlocked notifies the scheduler that the kernel parked current on
// a wait object and returns the task to dispatch.
func (s *Scheduler[T]) OnTaskBlocked(current T) T {
	if s.assembly.TaskBlocked == nil {
		panic("sched: no task blocked handler assembled")
	}
	return s.assembly.TaskBlocked.OnTaskBlocked(s, current)
}

// OnTaskUnblocked notifies the scheduler that task became runnable again.
//
// Group operations: pass the zero value as current to enqueue task only
// (intermediate call, returns the zero value); finish the group with a
// terminating call carrying a non-zero current and, optionally, a final
// task. For example, when tasks A and B unblock while C runs:
//
//	s.OnTaskUnblocked(nil, A)
//	s.OnTaskUnblocked(C, B) // or s.OnTaskUnblocked(nil, B); s.OnTaskUnblocked(C, nil)
func (s *Scheduler[T]) OnTaskUnblocked(current, task T) T {
	if s.assembly.TaskUnblocked == nil {
		panic("sched: no task unblocked handler assembled")
	}
	return s.assembly.TaskUnblocked.OnTaskUnblocked(s, current, task)
}

// OnTaskKilled notifies the scheduler that another task killed task,
// which must be ready and must not be current (a task killing itself goes
// through OnTaskFinished). Supports the same group protocol as
// OnTaskUnblocked, with removal instead of enqueueing.
func (s *Scheduler[T]) OnTaskKilled(current, task T) T {
	if s.assembly.TaskKilled == nil {
		panic("sched: no task killed handler assembled")
	}
	return s.assembly.TaskKilled.OnTaskKilled(s, current, task)
}

// OnTaskPriorityChanged notifies the scheduler that the priority of a
// ready task was changed from oldPriority and returns the task to
// dispatch. The task must not be current; the running task changing its
// own priority goes through OnSelfPriorityChanged.
func (s *Scheduler[T]) OnTaskPriorityChanged(current, task T, oldPriority uint) T {
	if s.assembly.TaskPriorityChanged == nil {
		panic("sched: no task priority changed handler assembled")
	}
	return s.assembly.TaskPriorityChanged.OnTaskPriorityChanged(s, current, task, oldPriority)
}

// OnSelfPriorityChanged notifies the scheduler that current changed its
// own priority and returns the task to dispatch, possibly current again.
func (s *Scheduler[T]) OnSelfPriorityChanged(current T) T {
	if s.assembly.TaskSelfPriorityChanged == nil {
		panic("sched: no self priority changed handler assembled")
	}
	return s.assembly.TaskSelfPriorityChanged.OnSelfPriorityChanged(s, current)
}

// OnTaskQuantumUsedUp notifies the scheduler that current drained its
// tick allotment and returns the task to dispatch. Quantum-aware timer
// handlers call this themselves.
func (s *Scheduler[T]) OnTaskQuantumUsedUp(current T) T {
	if s.assembly.TaskQuantumUsedUp == nil {
		panic("sched: no quantum used up handler assembled")
	}
	return s.assembly.TaskQuantumUsedUp.OnTaskQuantumUsedUp(s, current)
}
