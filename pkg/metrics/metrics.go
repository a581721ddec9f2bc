package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DefaultRegistry is the registry all flowbench collectors register with.
	// It is separate from prometheus.DefaultRegisterer so the exposition
	// contains only benchmark metrics.
	DefaultRegistry = prometheus.NewRegistry()

	// DefaultRegisterer labels every metric with the service name.
	DefaultRegisterer = prometheus.WrapRegistererWith(prometheus.Labels{"service": "flowbench"}, DefaultRegistry)

	metricsOnce sync.Once
	metrics     *Metrics
)

// Metrics holds the Prometheus instrumentation for workload runs.
type Metrics struct {
	// WorkloadDuration observes the wall-clock duration of each workload run.
	WorkloadDuration *prometheus.HistogramVec

	// TasksCompleted counts tasks observed fully processed, per workload.
	TasksCompleted *prometheus.CounterVec

	// RunsTotal counts workload runs by outcome ("ok" or "error").
	RunsTotal *prometheus.CounterVec
}

// Get returns the process-wide metrics instance.
func Get() *Metrics {
	metricsOnce.Do(func() {
		metrics = New(DefaultRegisterer)
	})
	return metrics
}

// New creates a metrics collection registered with registerer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = DefaultRegisterer
	}

	return &Metrics{
		WorkloadDuration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flowbench_workload_duration_seconds",
				Help:    "Wall-clock duration of one workload run in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~32s
			},
			[]string{"workload"},
		),
		TasksCompleted: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowbench_workload_tasks_completed_total",
				Help: "Total tasks observed fully processed, per workload",
			},
			[]string{"workload"},
		),
		RunsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowbench_workload_runs_total",
				Help: "Total workload runs by outcome",
			},
			[]string{"workload", "status"},
		),
	}
}

// RecordRun records a successful workload run.
func (m *Metrics) RecordRun(workload string, elapsed time.Duration, completed int64) {
	m.WorkloadDuration.WithLabelValues(workload).Observe(elapsed.Seconds())
	m.TasksCompleted.WithLabelValues(workload).Add(float64(completed))
	m.RunsTotal.WithLabelValues(workload, "ok").Inc()
}

// RecordFailure records a workload run that aborted before finishing.
func (m *Metrics) RecordFailure(workload string) {
	m.RunsTotal.WithLabelValues(workload, "error").Inc()
}
