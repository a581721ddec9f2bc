package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fluxorio/flowbench/pkg/metrics"
	"github.com/fluxorio/flowbench/pkg/queue"
)

func newQueue(t *testing.T, capacity int) *queue.BoundedQueue {
	t.Helper()
	q, err := queue.New(capacity)
	if err != nil {
		t.Fatalf("queue.New(%d) error = %v", capacity, err)
	}
	return q
}

func TestQueuePool_ProcessesAllTasks(t *testing.T) {
	q := newQueue(t, 16)
	counter := &metrics.CompletionCounter{}

	var sum int64
	p := NewQueuePool(4, q, func(task queue.Task) {
		atomic.AddInt64(&sum, int64(task.Tag))
	}, counter)

	const n = 1000
	for i := 0; i < n; i++ {
		p.Submit(queue.Task{Tag: i})
	}
	p.Close()
	p.Join()

	if got := counter.Value(); got != n {
		t.Errorf("completed = %d, want %d", got, n)
	}
	if want := int64(n) * (n - 1) / 2; atomic.LoadInt64(&sum) != want {
		t.Errorf("sum = %d, want %d", sum, want)
	}
	if q.Len() != 0 {
		t.Errorf("queue length = %d after Join, want 0", q.Len())
	}
}

// Sentinels are pushed after all real tasks; FIFO ordering guarantees no
// worker exits while real tasks are still queued.
func TestQueuePool_SentinelsDoNotStrandTasks(t *testing.T) {
	q := newQueue(t, 4)
	counter := &metrics.CompletionCounter{}

	p := NewQueuePool(8, q, func(queue.Task) {
		time.Sleep(time.Millisecond)
	}, counter)

	const n = 50
	var producers sync.WaitGroup
	for i := 0; i < 2; i++ {
		producers.Add(1)
		go func(base int) {
			defer producers.Done()
			for j := 0; j < n/2; j++ {
				p.Submit(queue.Task{Tag: base + j})
			}
		}(i * n / 2)
	}
	producers.Wait()
	p.Close()
	p.Join()

	if got := counter.Value(); got != n {
		t.Errorf("completed = %d, want %d", got, n)
	}
}

func TestQueuePool_SizeClamped(t *testing.T) {
	q := newQueue(t, 4)
	counter := &metrics.CompletionCounter{}

	p := NewQueuePool(0, q, func(queue.Task) {}, counter)
	p.Submit(queue.Task{Tag: 1})
	p.Close()
	p.Join()

	if got := counter.Value(); got != 1 {
		t.Errorf("completed = %d, want 1", got)
	}
}

func TestQueuePool_NilArguments(t *testing.T) {
	q := newQueue(t, 4)
	counter := &metrics.CompletionCounter{}

	for name, fn := range map[string]func(){
		"nil queue":   func() { NewQueuePool(1, nil, func(queue.Task) {}, counter) },
		"nil handler": func() { NewQueuePool(1, q, nil, counter) },
		"nil counter": func() { NewQueuePool(1, q, func(queue.Task) {}, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestSemaphorePool_BoundsInFlight(t *testing.T) {
	const size = 8
	const n = 200

	counter := &metrics.CompletionCounter{}
	var inFlight, maxInFlight int64

	p := NewSemaphorePool(size, func(queue.Task) {
		cur := atomic.AddInt64(&inFlight, 1)
		for {
			max := atomic.LoadInt64(&maxInFlight)
			if cur <= max || atomic.CompareAndSwapInt64(&maxInFlight, max, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
	}, counter)

	for i := 0; i < n; i++ {
		p.Submit(queue.Task{Tag: i})
	}
	p.Close()
	p.Join()

	if got := counter.Value(); got != n {
		t.Errorf("completed = %d, want %d", got, n)
	}
	if max := atomic.LoadInt64(&maxInFlight); max > size {
		t.Errorf("max in-flight = %d, exceeds pool size %d", max, size)
	}
	if max := atomic.LoadInt64(&maxInFlight); max < 2 {
		t.Logf("max in-flight = %d; pool never ran tasks concurrently", max)
	}
}

func TestSemaphorePool_SubmitAfterClosePanics(t *testing.T) {
	counter := &metrics.CompletionCounter{}
	p := NewSemaphorePool(2, func(queue.Task) {}, counter)
	p.Close()

	defer func() {
		if recover() == nil {
			t.Error("Submit after Close should panic")
		}
	}()
	p.Submit(queue.Task{Tag: 1})
}

func TestSemaphorePool_SizeClamped(t *testing.T) {
	counter := &metrics.CompletionCounter{}
	p := NewSemaphorePool(-3, func(queue.Task) {}, counter)

	for i := 0; i < 10; i++ {
		p.Submit(queue.Task{Tag: i})
	}
	p.Close()
	p.Join()

	if got := counter.Value(); got != 10 {
		t.Errorf("completed = %d, want 10", got)
	}
}
