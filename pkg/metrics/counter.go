package metrics

import "sync/atomic"

// CompletionCounter counts fully processed tasks. One counter is shared by
// all workers of a single workload run; increments are atomic and unordered
// relative to each other. At the end of a run its value must equal the total
// number of tasks submitted.
type CompletionCounter struct {
	n int64
}

// Inc records one completed task.
func (c *CompletionCounter) Inc() {
	atomic.AddInt64(&c.n, 1)
}

// Add records delta completed tasks at once.
func (c *CompletionCounter) Add(delta int64) {
	atomic.AddInt64(&c.n, delta)
}

// Value returns the current count.
func (c *CompletionCounter) Value() int64 {
	return atomic.LoadInt64(&c.n)
}
