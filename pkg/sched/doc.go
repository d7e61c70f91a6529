// Package sched is a composable task-scheduler construction kit for
// kernels, real-time executives, and cooperative runtimes.
//
// The package answers one question on every scheduling event: given the
// currently running task and a notification of what happened, which task
// should run next. It owns only the ready-queue bookkeeping; context
// switching, timers, blocking primitives, and task lifecycle belong to the
// host kernel, which calls the event methods and switches to whatever task
// they return.
//
// A scheduler is assembled from two orthogonal pieces:
//
//   - a ready-queue Policy, which organizes ready tasks and exposes the
//     Next and Ready primitives, and
//   - a set of event handlers, one per scheduling event, each implementing
//     the policy for that event (preemptive or cooperative, with or
//     without quantum bookkeeping).
//
// Arbitrary combinations yield the classical schedulers without any
// combination-specific glue; NewFIFO, NewRoundRobin,
// NewPrioritizedRoundRobin, NewMLFQ, and NewEDF are thin wrappers over
// Assembly literals.
//
// Task handles are an opaque comparable type parameter, usually a pointer
// to the kernel's task control block. The zero value (nil for pointers) is
// the "no task" sentinel used by the intermediate-call protocol on
// OnTaskUnblocked and OnTaskKilled. The scheduler never owns tasks; a task
// must outlive its membership in the ready queue.
//
// Everything here is single-threaded and non-blocking. The caller is
// expected to invoke event methods with interrupts disabled or under an
// equivalent critical section.
package sched
