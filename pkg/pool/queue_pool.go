package pool

import (
	"sync"

	"github.com/fluxorio/flowbench/pkg/failfast"
	"github.com/fluxorio/flowbench/pkg/metrics"
	"github.com/fluxorio/flowbench/pkg/queue"
)

// sentinelTag marks the poison task that tells a worker to exit. Real tasks
// carry non-negative tags.
const sentinelTag = -1

// queuePool drains a BoundedQueue with a fixed set of workers. Each worker
// loops pop, handler, counter increment until it pops a sentinel.
type queuePool struct {
	size    int
	queue   *queue.BoundedQueue
	handler Handler
	counter *metrics.CompletionCounter
	wg      sync.WaitGroup
}

// NewQueuePool starts size workers draining q. Close pushes one sentinel per
// worker; because the queue is strictly FIFO, every task submitted before
// Close is processed before any worker sees a sentinel. size < 1 is clamped
// to 1.
func NewQueuePool(size int, q *queue.BoundedQueue, handler Handler, counter *metrics.CompletionCounter) Pool {
	failfast.NotNil(q, "queue")
	failfast.NotNil(handler, "handler")
	failfast.NotNil(counter, "counter")
	if size < 1 {
		size = 1
	}

	p := &queuePool{
		size:    size,
		queue:   q,
		handler: handler,
		counter: counter,
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

func (p *queuePool) worker() {
	defer p.wg.Done()

	for {
		t := p.queue.Pop()
		if t.Tag == sentinelTag && t.Run == nil {
			return
		}
		p.handler(t)
		p.counter.Inc()
	}
}

// Submit pushes t onto the shared queue, blocking while the queue is full.
func (p *queuePool) Submit(t queue.Task) {
	p.queue.Push(t)
}

// Close pushes one sentinel per worker. Must be called exactly once, after
// every producer has finished submitting.
func (p *queuePool) Close() {
	for i := 0; i < p.size; i++ {
		p.queue.Push(queue.Task{Tag: sentinelTag})
	}
}

// Join blocks until all workers have exited.
func (p *queuePool) Join() {
	p.wg.Wait()
}
