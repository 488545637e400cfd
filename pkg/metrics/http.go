package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics conta as requisições atendidas pela API
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registerer prometheus.Registerer) *HTTPMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plan_tracker_http_requests_total",
			Help: "Requisições HTTP por método e status.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plan_tracker_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP por método.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	registerer.MustRegister(m.requests, m.duration)
	return m
}

func (m *HTTPMetrics) Observe(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
