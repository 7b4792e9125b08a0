package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Contact submissions by outcome
	SubmissionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"result"}, // result: sent, invalid, misconfigured, failed
	)

	// Document store / email API call latency
	UpstreamCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "contact_upstream_duration_seconds",
			Help:    "Upstream API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"upstream", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~16s
		},
		[]string{"method", "path", "status"},
	)
)

const (
	ResultSent          = "sent"
	ResultInvalid       = "invalid"
	ResultMisconfigured = "misconfigured"
	ResultFailed        = "failed"
)

// IncrementSubmission counts one submission outcome
func IncrementSubmission(result string) {
	SubmissionCount.WithLabelValues(result).Inc()
}

// RecordUpstreamCall records the latency of one upstream call
func RecordUpstreamCall(upstream string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	UpstreamCallDuration.WithLabelValues(upstream, status).Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records one served request
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
