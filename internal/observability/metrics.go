package observability

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// Metrics holds the process counters exposed on /metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	apiRequests  *CounterVec
	apiLatency   *HistogramVec
	apiInflight  *Gauge
	apiReqError  *Counter
	storeOps     *CounterVec
	storeLatency *HistogramVec
	mailboxDepth *GaugeVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		apiRequests: NewCounterVec("ticketd_api_requests_total", "Total API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"ticketd_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		),
		apiInflight: NewGauge("ticketd_api_inflight_requests", "In-flight API requests."),
		apiReqError: NewCounter("ticketd_api_requests_error_total", "API requests that ended with a 5xx status."),
		storeOps:    NewCounterVec("ticketd_store_operations_total", "Store operations by backend/op/outcome.", []string{"backend", "op", "outcome"}),
		storeLatency: NewHistogramVec(
			"ticketd_store_operation_duration_seconds",
			"Store operation latency in seconds by backend/op.",
			[]string{"backend", "op"},
			[]float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		),
		mailboxDepth: NewGaugeVec("ticketd_mailbox_depth", "Commands waiting in the actor mailbox, sampled per request.", []string{"kind"}),
	}
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.apiReqError,
		m.storeOps,
		m.storeLatency,
		m.mailboxDepth,
	}
	for _, mw := range writers {
		if err := mw.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	code := strconv.Itoa(status)
	m.apiRequests.Inc(method, route, code)
	m.apiLatency.Observe(dur.Seconds(), method, route, code)
	if isServerErrorStatus(code) {
		m.apiReqError.Inc()
	}
}

func (m *Metrics) APIInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) APIInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveStore records one store call. outcome is a short code such as "ok",
// "not_found" or "mailbox_full".
func (m *Metrics) ObserveStore(backend, op, outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.storeOps.Inc(backend, op, outcome)
	m.storeLatency.Observe(dur.Seconds(), backend, op)
}

func (m *Metrics) SetMailboxDepth(pending, capacity int) {
	if m == nil {
		return
	}
	m.mailboxDepth.Set(float64(pending), "pending")
	m.mailboxDepth.Set(float64(capacity), "capacity")
}
