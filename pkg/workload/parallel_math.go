package workload

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/fluxorio/flowbench/pkg/metrics"
)

// fibDepth and innerLoop are fixed by the benchmark definition: every port
// computes the same work so results stay comparable.
const (
	fibDepth  = 35
	innerLoop = 1000
)

// ParallelMath fans out Workers CPU-bound tasks, each computing Rounds
// iterations of an iterative Fibonacci plus a small inner loop, and joins
// them. All partial sums land in one atomic accumulator, which doubles as
// the result sink keeping the computation live.
type ParallelMath struct {
	Workers int
	Rounds  int
}

// NewParallelMath sizes the workload at 4 workers and 100 rounds per scale
// unit.
func NewParallelMath(scale int) *ParallelMath {
	return &ParallelMath{
		Workers: 4 * scale,
		Rounds:  100 * scale,
	}
}

func (w *ParallelMath) Name() string { return "parallel-math" }

func (w *ParallelMath) Run() (Result, error) {
	start := time.Now()

	counter := &metrics.CompletionCounter{}
	var total int64

	var wg sync.WaitGroup
	for i := 0; i < w.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var local int64
			for j := 0; j < w.Rounds; j++ {
				local += fibonacci(fibDepth)
				for k := 0; k < innerLoop; k++ {
					local += int64(k * k)
				}
			}

			atomic.AddInt64(&total, local)
			counter.Inc()
		}()
	}
	wg.Wait()

	return Result{
		Elapsed:   time.Since(start),
		Completed: counter.Value(),
		Checksum:  atomic.LoadInt64(&total),
	}, nil
}

// fibonacci computes the nth Fibonacci number iteratively.
func fibonacci(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	a, b := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}
