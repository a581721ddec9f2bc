package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCompletionCounter_ConcurrentInc(t *testing.T) {
	var c CompletionCounter

	const goroutines = 16
	const perGoroutine = 1000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()

	if got := c.Value(); got != goroutines*perGoroutine {
		t.Errorf("Value() = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestCompletionCounter_Add(t *testing.T) {
	var c CompletionCounter
	c.Add(40)
	c.Inc()
	c.Inc()
	if got := c.Value(); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
}

func TestMetrics_RecordRun(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordRun("producer-consumer", 25*time.Millisecond, 4000)
	m.RecordRun("producer-consumer", 30*time.Millisecond, 4000)
	m.RecordFailure("http-fanout")

	completed := testutil.ToFloat64(m.TasksCompleted.WithLabelValues("producer-consumer"))
	if completed != 8000 {
		t.Errorf("tasks completed = %v, want 8000", completed)
	}

	ok := testutil.ToFloat64(m.RunsTotal.WithLabelValues("producer-consumer", "ok"))
	if ok != 2 {
		t.Errorf("ok runs = %v, want 2", ok)
	}

	failed := testutil.ToFloat64(m.RunsTotal.WithLabelValues("http-fanout", "error"))
	if failed != 1 {
		t.Errorf("failed runs = %v, want 1", failed)
	}
}

func TestGet_ReturnsSameInstance(t *testing.T) {
	if Get() != Get() {
		t.Error("Get() should return the same instance on every call")
	}
}
