package pool

import (
	"github.com/fluxorio/flowbench/pkg/queue"
)

// Handler processes one task. Pools are handler-agnostic: handlers may do
// pure CPU work, file I/O or network calls depending on the workload that
// supplied them.
type Handler func(queue.Task)

// Pool is a fixed-size set of workers draining a shared task source. Two
// variants exist: bounded-queue-backed (sentinel termination) and
// semaphore-backed (in-flight bound). Workloads pick whichever fits.
type Pool interface {
	// Submit hands one task to the pool. A queue-backed pool blocks while
	// its queue is full; a semaphore-backed pool blocks while the maximum
	// number of tasks is in flight. That blocking is the backpressure.
	Submit(t queue.Task)

	// Close signals that no further tasks will be submitted. Tasks already
	// submitted are still processed.
	Close()

	// Join blocks until every worker has observed the termination condition
	// and exited.
	Join()
}
