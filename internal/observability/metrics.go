package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the report pipeline.
type Metrics struct {
	SubmissionsSent      prometheus.Counter
	SubmissionsThrottled prometheus.Counter
	SubmissionsRejected  prometheus.Counter
	SubmissionsFailed    prometheus.Counter

	PhotoPayloadBytes prometheus.Histogram

	// StoreOnline flips to 0 when the periodic connectivity probe fails.
	StoreOnline *prometheus.GaugeVec
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SubmissionsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare",
			Name:      "submissions_sent_total",
			Help:      "Reports persisted and routed to a station.",
		}),
		SubmissionsThrottled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare",
			Name:      "submissions_throttled_total",
			Help:      "Submissions blocked by the per-device cool-down.",
		}),
		SubmissionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare",
			Name:      "submissions_rejected_total",
			Help:      "Submissions rejected by the geofence.",
		}),
		SubmissionsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare",
			Name:      "submissions_failed_total",
			Help:      "Submissions aborted by a transient fetch or persist failure.",
		}),
		PhotoPayloadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flare",
			Name:      "photo_payload_bytes",
			Help:      "Encoded photo payload size after reduction.",
			Buckets:   []float64{10_240, 51_200, 102_400, 204_800, 409_600, 819_200},
		}),
		StoreOnline: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "flare",
			Name:      "store_online",
			Help:      "1 when the named backing store answers pings, 0 otherwise.",
		}, []string{"store"}),
	}

	prometheus.MustRegister(
		m.SubmissionsSent,
		m.SubmissionsThrottled,
		m.SubmissionsRejected,
		m.SubmissionsFailed,
		m.PhotoPayloadBytes,
		m.StoreOnline,
	)
	return m
}
