package workload

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fluxorio/flowbench/pkg/metrics"
	"github.com/fluxorio/flowbench/pkg/pool"
	"github.com/fluxorio/flowbench/pkg/queue"
)

// ProducerConsumer pushes Pairs×Items integers through one shared
// BoundedQueue and drains them with a queue-backed pool of Pairs workers.
// Consumers square each item into an atomic sink. The run ends only when
// total consumed equals total produced, exactly.
type ProducerConsumer struct {
	Pairs    int
	Items    int
	QueueCap int

	// Seed feeds this workload's own random source; no process-global RNG
	// is touched, so runs stay reproducible under parallel tests.
	Seed int64
}

// NewProducerConsumer sizes the workload at 4 producer/consumer pairs and
// 1000 items per producer, both multiplied by scale, over the benchmark's
// fixed queue capacity of 1000.
func NewProducerConsumer(scale int, seed int64) *ProducerConsumer {
	return &ProducerConsumer{
		Pairs:    4 * scale,
		Items:    1000 * scale,
		QueueCap: 1000,
		Seed:     seed,
	}
}

func (w *ProducerConsumer) Name() string { return "producer-consumer" }

func (w *ProducerConsumer) Run() (Result, error) {
	start := time.Now()

	q, err := queue.New(w.QueueCap)
	if err != nil {
		return Result{}, fmt.Errorf("producer-consumer: %w", err)
	}

	counter := &metrics.CompletionCounter{}
	var sink int64

	p := pool.NewQueuePool(w.Pairs, q, func(t queue.Task) {
		atomic.AddInt64(&sink, int64(t.Tag)*int64(t.Tag))
	}, counter)

	var producers sync.WaitGroup
	for i := 0; i < w.Pairs; i++ {
		producers.Add(1)
		go func(id int) {
			defer producers.Done()

			rng := rand.New(rand.NewSource(w.Seed + int64(id)))
			for j := 0; j < w.Items; j++ {
				p.Submit(queue.Task{Tag: rng.Intn(1 << 16)})
			}
		}(i)
	}

	// Sentinels may only go in after every producer has finished pushing;
	// FIFO then guarantees the workers drain every real item first.
	producers.Wait()
	p.Close()
	p.Join()

	return Result{
		Elapsed:   time.Since(start),
		Completed: counter.Value(),
		Checksum:  atomic.LoadInt64(&sink),
	}, nil
}
