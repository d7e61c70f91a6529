package sched

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// PrioritizedQueue keeps ready tasks in a single list sorted by rank,
// highest first. Insertion is stable: a task is placed before the first
// element it strictly outranks, so equal-ranked tasks stay in arrival
// order.
type PrioritizedQueue[T Schedulable] struct {
	outranks RankFunc[T]
	queue    *doublylinkedlist.List
}

// NewPrioritizedQueue returns an empty queue ranked by outranks.
// Use IntrinsicOrder for deadline-style tasks and PriorityOrder for
// numeric priorities.
func NewPrioritizedQueue[T Schedulable](outranks RankFunc[T]) *PrioritizedQueue[T] {
	return &PrioritizedQueue[T]{outranks: outranks, queue: doublylinkedlist.New()}
}

// Next removes and returns the highest-ranked ready task.
func (p *PrioritizedQueue[T]) Next() (T, bool) {
	head, ok := p.queue.Get(0)
	if !ok {
		var zero T
		return zero, false
	}
	p.queue.Remove(0)
	return head.(T), true
}

// Ready inserts the task before the first element it strictly outranks.
func (p *PrioritizedQueue[T]) Ready(task T) {
	iterator := p.queue.Iterator()
	for iterator.Next() {
		if p.outranks(task, iterator.Value().(T)) {
			p.queue.Insert(iterator.Index(), task)
			return
		}
	}
	p.queue.Append(task)
}

// Remove removes the task from the queue. The task must be present.
func (p *PrioritizedQueue[T]) Remove(task T) {
	index := p.queue.IndexOf(task)
	if index < 0 {
		panic("sched: task is not in the ready queue")
	}
	p.queue.Remove(index)
}

// AdjustPosition re-sorts a task whose rank changed while enqueued.
// The old priority is irrelevant here; the queue is a single list.
func (p *PrioritizedQueue[T]) AdjustPosition(task T, _ uint) {
	p.Remove(task)
	p.Ready(task)
}

// Size returns the number of ready tasks.
func (p *PrioritizedQueue[T]) Size() int {
	return p.queue.Size()
}
