package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/fluxorio/flowbench/pkg/failfast"
	"github.com/fluxorio/flowbench/pkg/metrics"
	"github.com/fluxorio/flowbench/pkg/queue"
)

// semaphorePool runs each submitted task in its own goroutine, with a
// weighted semaphore bounding the number in flight to the pool size. Submit
// blocks while the pool is saturated, which gives the same backpressure as a
// full bounded queue without a shared ring.
type semaphorePool struct {
	size    int
	sem     *semaphore.Weighted
	handler Handler
	counter *metrics.CompletionCounter
	tasks   sync.WaitGroup
	closed  int32
}

// NewSemaphorePool creates the semaphore-backed pool variant. size < 1 is
// clamped to 1.
func NewSemaphorePool(size int, handler Handler, counter *metrics.CompletionCounter) Pool {
	failfast.NotNil(handler, "handler")
	failfast.NotNil(counter, "counter")
	if size < 1 {
		size = 1
	}

	return &semaphorePool{
		size:    size,
		sem:     semaphore.NewWeighted(int64(size)),
		handler: handler,
		counter: counter,
	}
}

// Submit runs t once a slot is free, blocking the caller while size tasks
// are already in flight. Submitting after Close is a programming error.
func (p *semaphorePool) Submit(t queue.Task) {
	failfast.If(atomic.LoadInt32(&p.closed) == 0, "submit after close")

	// Acquire with a background context never returns an error; there is no
	// cancellation in a benchmark run.
	_ = p.sem.Acquire(context.Background(), 1)
	p.tasks.Add(1)

	go func() {
		defer p.sem.Release(1)
		defer p.tasks.Done()
		p.handler(t)
		p.counter.Inc()
	}()
}

// Close marks the pool as accepting no further submissions.
func (p *semaphorePool) Close() {
	atomic.StoreInt32(&p.closed, 1)
}

// Join blocks until every submitted task has finished.
func (p *semaphorePool) Join() {
	p.tasks.Wait()
}
