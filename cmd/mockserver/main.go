package main

import (
	"encoding/json"
	"flag"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/fluxorio/flowbench/pkg/metrics"
)

// mockserver is the collaborator endpoint for the fan-out HTTP workload:
// GET /fast answers 200 with a short body. It must be running before the
// harness starts; the harness treats connection failures as ordinary task
// failures either way.
func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	requestsTotal := promauto.With(metrics.DefaultRegisterer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowbench_mock_requests_total",
			Help: "Total requests served by the mock server",
		},
		[]string{"path"},
	)

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(metrics.DefaultRegistry, promhttp.HandlerOpts{}))

	handler := func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		switch path {
		case "/fast":
			requestsTotal.WithLabelValues(path).Inc()
			ctx.SetContentType("text/plain")
			ctx.SetBodyString("ok")
		case "/health":
			ctx.SetContentType("application/json")
			json.NewEncoder(ctx).Encode(map[string]interface{}{
				"status": "ok",
				"time":   time.Now().Unix(),
			})
		case "/metrics":
			metricsHandler(ctx)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	}

	server := &fasthttp.Server{
		Handler:         handler,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ReadBufferSize:  8192,
		WriteBufferSize: 8192,
	}

	log.Printf("mock server listening on %s", *addr)
	if err := server.ListenAndServe(*addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
