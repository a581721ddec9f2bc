package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fluxorio/flowbench/pkg/config"
	"github.com/fluxorio/flowbench/pkg/harness"
	"github.com/fluxorio/flowbench/pkg/logging"
	"github.com/fluxorio/flowbench/pkg/metrics"
)

// flowbench runs the concurrency benchmark kernel: five workload generators
// over a bounded task queue and worker pools, timed sequentially. Stdout
// carries exactly one line, the summed elapsed milliseconds; everything else
// goes to stderr.
func main() {
	logger := logging.NewDefaultLogger()

	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	// The positional scale factor wins over file and environment.
	if args := flag.Args(); len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Warnf("invalid scale factor %q, using default 1", args[0])
			n = 1
		}
		cfg.ScaleFactor = n
	}
	cfg.Normalize(logger)

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	h := harness.New(cfg, logger)
	logger.Infof("run %s: scale factor %d", h.RunID(), cfg.ScaleFactor)

	total := h.Run()
	fmt.Println(harness.FormatTotal(total))
}

func serveMetrics(addr string, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.DefaultRegistry, promhttp.HandlerOpts{}))

	logger.Infof("metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warnf("metrics listener %s: %v", addr, err)
	}
}
