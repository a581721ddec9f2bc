package queue

import (
	"errors"
	"sync"
)

// ErrCapacity is returned when a queue is constructed with a non-positive
// capacity. This is a programming error and is reported at construction,
// before any worker can touch the queue.
var ErrCapacity = errors.New("queue capacity must be positive")

// Task is an opaque unit of work: a closure plus an identifying integer tag.
// A task is owned by whichever slot holds it; ownership transfers from
// producer to consumer on a successful Pop and the task is never seen again
// after it has been processed.
type Task struct {
	Tag int
	Run func()
}

// BoundedQueue is a fixed-capacity FIFO hand-off between producers and
// consumers. Push blocks the caller while the ring is full, Pop blocks while
// it is empty. There are no timed, peeking or cancelling variants: a producer
// that never gets a free slot blocks forever, which is a caller bug rather
// than a queue failure.
type BoundedQueue struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	ring  []Task
	head  int
	tail  int
	count int
}

// New creates a queue with the given fixed capacity.
func New(capacity int) (*BoundedQueue, error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}
	q := &BoundedQueue{ring: make([]Task, capacity)}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Push inserts t at the tail, blocking while the queue is full.
func (q *BoundedQueue) Push(t Task) {
	q.mu.Lock()
	for q.count == len(q.ring) {
		q.notFull.Wait()
	}
	q.ring[q.tail] = t
	q.tail = (q.tail + 1) % len(q.ring)
	q.count++
	q.notEmpty.Signal()
	q.mu.Unlock()
}

// Pop removes and returns the task at the head, blocking while the queue is
// empty. The nth task pushed is the nth task popped, regardless of which
// producer pushed it or which consumer pops it.
func (q *BoundedQueue) Pop() Task {
	q.mu.Lock()
	for q.count == 0 {
		q.notEmpty.Wait()
	}
	t := q.ring[q.head]
	q.ring[q.head] = Task{} // the slot no longer owns the task
	q.head = (q.head + 1) % len(q.ring)
	q.count--
	q.notFull.Signal()
	q.mu.Unlock()
	return t
}

// Len returns the number of tasks currently queued.
func (q *BoundedQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the fixed capacity the queue was created with.
func (q *BoundedQueue) Cap() int {
	return len(q.ring)
}
