package sched

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// MultiQueue maps each priority level to its own sub-queue and serves
// levels strictly highest-first. Sub-queues are materialized lazily by
// the injected maker on the first insert for a level and stay allocated
// once empty.
type MultiQueue[T PrioritizableByPriority] struct {
	maker  PolicyMaker[T]
	queues *treemap.Map
}

// byPriorityDescending orders treemap iteration from the highest level
// down.
func byPriorityDescending(a, b interface{}) int {
	return -utils.UIntComparator(a, b)
}

// NewMultiQueue returns an empty multi-queue whose sub-queues are built
// by maker.
func NewMultiQueue[T PrioritizableByPriority](maker PolicyMaker[T]) *MultiQueue[T] {
	return &MultiQueue[T]{
		maker:  maker,
		queues: treemap.NewWith(byPriorityDescending),
	}
}

// Next scans from the highest priority level downward and returns the
// first sub-queue's head.
func (p *MultiQueue[T]) Next() (T, bool) {
	iterator := p.queues.Iterator()
	for iterator.Next() {
		if task, ok := iterator.Value().(Policy[T]).Next(); ok {
			return task, true
		}
	}
	var zero T
	return zero, false
}

// Ready inserts the task into the sub-queue for its priority level.
func (p *MultiQueue[T]) Ready(task T) {
	p.subqueue(task.Priority()).Ready(task)
}

// Remove removes the task from the sub-queue for its priority level.
// The task must be present there.
func (p *MultiQueue[T]) Remove(task T) {
	p.remover(task.Priority()).Remove(task)
}

// AdjustPosition re-homes a task from the sub-queue of its old priority
// level to the one for its current level. The task must be present under
// oldPriority.
func (p *MultiQueue[T]) AdjustPosition(task T, oldPriority uint) {
	p.remover(oldPriority).Remove(task)
	p.Ready(task)
}

func (p *MultiQueue[T]) subqueue(level uint) Policy[T] {
	if q, found := p.queues.Get(level); found {
		return q.(Policy[T])
	}
	q := p.maker(level)
	p.queues.Put(level, q)
	return q
}

func (p *MultiQueue[T]) remover(level uint) Remover[T] {
	q, found := p.queues.Get(level)
	if !found {
		panic("sched: no ready queue for the given priority level")
	}
	r, ok := q.(Remover[T])
	if !ok {
		panic("sched: sub-queue does not support removal")
	}
	return r
}
