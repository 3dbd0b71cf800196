package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Verifications counts finished verification requests by content type and outcome.
	Verifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factchecker_verifications_total",
			Help: "Total number of verification requests by content type and final status",
		},
		[]string{"content_type", "status"},
	)

	// VerificationDuration tracks analyze+classify+persist latency.
	VerificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factchecker_verification_duration_seconds",
			Help:    "Latency of the verification pipeline",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"content_type"},
	)

	// Classifications counts verdicts by label.
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factchecker_classifications_total",
			Help: "Total number of classifications by content type and label",
		},
		[]string{"content_type", "label"},
	)

	// InferenceRequests counts calls to the external model servers.
	InferenceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factchecker_inference_requests_total",
			Help: "Total number of inference requests by model and result",
		},
		[]string{"model", "result"},
	)

	InferenceLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factchecker_inference_latency_seconds",
			Help:    "Latency of inference requests including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	// StatusCacheLookups counts status cache hits and misses.
	StatusCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factchecker_status_cache_lookups_total",
			Help: "Status cache lookups by result",
		},
		[]string{"result"},
	)

	// SweptRecords counts pending records marked failed by the sweeper.
	SweptRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factchecker_swept_records_total",
			Help: "Pending verifications marked failed after timing out",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factchecker_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "factchecker_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)
