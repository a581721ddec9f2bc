package workload

import (
	"sync/atomic"
	"time"

	"github.com/fluxorio/flowbench/pkg/metrics"
	"github.com/fluxorio/flowbench/pkg/pool"
	"github.com/fluxorio/flowbench/pkg/queue"
)

// TaskPool submits Tasks short CPU-plus-sleep tasks to a semaphore-backed
// pool of fixed size. Submission blocks whenever PoolSize tasks are in
// flight, so the generator exercises pool saturation and backpressure.
type TaskPool struct {
	Tasks    int
	PoolSize int
	Spin     int
	Pause    time.Duration
}

// NewTaskPool sizes the workload at 500 tasks per scale unit over the
// benchmark's fixed pool size of 8. Each task spins 10000 iterations and
// sleeps 100 microseconds to simulate I/O-bound latency.
func NewTaskPool(scale int) *TaskPool {
	return &TaskPool{
		Tasks:    500 * scale,
		PoolSize: 8,
		Spin:     10000,
		Pause:    100 * time.Microsecond,
	}
}

func (w *TaskPool) Name() string { return "task-pool" }

func (w *TaskPool) Run() (Result, error) {
	start := time.Now()

	counter := &metrics.CompletionCounter{}
	var sink int64

	p := pool.NewSemaphorePool(w.PoolSize, func(queue.Task) {
		var work int64
		for j := 0; j < w.Spin; j++ {
			work += int64(j * j)
		}
		time.Sleep(w.Pause)
		atomic.AddInt64(&sink, work)
	}, counter)

	for i := 0; i < w.Tasks; i++ {
		p.Submit(queue.Task{Tag: i})
	}
	p.Close()
	p.Join()

	return Result{
		Elapsed:   time.Since(start),
		Completed: counter.Value(),
		Checksum:  atomic.LoadInt64(&sink),
	}, nil
}
