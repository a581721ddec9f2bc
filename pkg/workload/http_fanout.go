package workload

import (
	"sync"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/fluxorio/flowbench/pkg/metrics"
)

// FanOutHTTP launches Requests concurrent GETs against Endpoint at once and
// waits for every one of them to settle. Successes are counted but never
// asserted: a failed request is benchmark noise, not an error.
type FanOutHTTP struct {
	Requests int
	Endpoint string
	Timeout  time.Duration
}

// NewFanOutHTTP sizes the workload at 50 requests per scale unit with the
// benchmark's fixed 5 second timeout.
func NewFanOutHTTP(scale int, endpoint string) *FanOutHTTP {
	return &FanOutHTTP{
		Requests: 50 * scale,
		Endpoint: endpoint,
		Timeout:  5 * time.Second,
	}
}

func (w *FanOutHTTP) Name() string { return "http-fanout" }

func (w *FanOutHTTP) Run() (Result, error) {
	start := time.Now()

	client := &fasthttp.Client{
		ReadTimeout:     w.Timeout,
		WriteTimeout:    w.Timeout,
		MaxConnsPerHost: w.Requests,
	}

	counter := &metrics.CompletionCounter{}
	var wg sync.WaitGroup

	for i := 0; i < w.Requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := fasthttp.AcquireRequest()
			resp := fasthttp.AcquireResponse()
			defer fasthttp.ReleaseRequest(req)
			defer fasthttp.ReleaseResponse(resp)

			req.SetRequestURI(w.Endpoint)
			if err := client.DoTimeout(req, resp, w.Timeout); err == nil {
				counter.Inc()
			}
		}()
	}

	wg.Wait()

	return Result{
		Elapsed:   time.Since(start),
		Completed: counter.Value(),
	}, nil
}
