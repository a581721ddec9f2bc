package harness

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/fluxorio/flowbench/pkg/config"
	"github.com/fluxorio/flowbench/pkg/logging"
	"github.com/fluxorio/flowbench/pkg/metrics"
	"github.com/fluxorio/flowbench/pkg/workload"
)

// Harness runs the five workload generators strictly sequentially, never
// concurrently with each other, so each measurement stays uncontended. Each
// workload measures its own wall-clock duration with the monotonic clock;
// the harness sums the milliseconds.
type Harness struct {
	workloads []workload.Workload
	logger    logging.Logger
	metrics   *metrics.Metrics
	runID     string
}

// New builds the standard five-workload harness from cfg. Each workload gets
// its own seed derived from the configured base, keeping the generators
// independent of each other.
func New(cfg config.Config, logger logging.Logger) *Harness {
	scale := cfg.ScaleFactor

	return &Harness{
		workloads: []workload.Workload{
			workload.NewFanOutHTTP(scale, cfg.Endpoint),
			workload.NewProducerConsumer(scale, cfg.Seed+1),
			workload.NewParallelMath(scale),
			workload.NewFileIO(scale, cfg.TempDir),
			workload.NewTaskPool(scale),
		},
		logger:  logger,
		metrics: metrics.Get(),
		runID:   uuid.NewString(),
	}
}

// Run executes every workload in order and returns the summed milliseconds.
// A failed workload contributes zero and the run keeps going: partial
// results beat a dead harness.
func (h *Harness) Run() float64 {
	total := 0.0

	for _, w := range h.workloads {
		res, err := w.Run()
		if err != nil {
			h.logger.Errorf("run %s: workload %s failed: %v", h.runID, w.Name(), err)
			h.metrics.RecordFailure(w.Name())
			continue
		}

		h.metrics.RecordRun(w.Name(), res.Elapsed, res.Completed)
		h.logger.Debugf("run %s: %s completed=%d elapsed=%.3fms", h.runID, w.Name(), res.Completed, res.Millis())
		total += res.Millis()
	}

	return total
}

// RunID identifies this harness instance in logs.
func (h *Harness) RunID() string {
	return h.runID
}

// FormatTotal renders the measurement line printed to stdout: the total
// elapsed milliseconds with three decimal places.
func FormatTotal(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 3, 64)
}
