package sched

import (
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// FIFOPolicy serves ready tasks on a first-come, first-served basis.
type FIFOPolicy[T Schedulable] struct {
	queue *doublylinkedlist.List
}

// NewFIFOPolicy returns an empty FIFO ready queue.
func NewFIFOPolicy[T Schedulable]() *FIFOPolicy[T] {
	return &FIFOPolicy[T]{queue: doublylinkedlist.New()}
}

// Next removes and returns the head of the queue.
func (p *FIFOPolicy[T]) Next() (T, bool) {
	head, ok := p.queue.Get(0)
	if !ok {
		var zero T
		return zero, false
	}
	p.queue.Remove(0)
	return head.(T), true
}

// Ready appends the task to the tail of the queue.
func (p *FIFOPolicy[T]) Ready(task T) {
	p.queue.Append(task)
}

// Remove removes the task from the queue. The task must be present.
func (p *FIFOPolicy[T]) Remove(task T) {
	index := p.queue.IndexOf(task)
	if index < 0 {
		panic("sched: task is not in the ready queue")
	}
	p.queue.Remove(index)
}

// Size returns the number of ready tasks.
func (p *FIFOPolicy[T]) Size() int {
	return p.queue.Size()
}
