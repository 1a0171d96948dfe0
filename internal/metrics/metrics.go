// Package metrics provides Prometheus metrics for the card validation relay.
package metrics

import (
	"strconv"

	"github.com/MKhiriev/nfc-card-relay/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nfc_relay"

// Metrics contains all relay metrics.
type Metrics struct {
	// Verdict metrics
	VerdictsTotal *prometheus.CounterVec // Verdicts served by kind (valid, not_found, upstream_error, unreachable)

	// Upstream metrics
	UpstreamResponsesTotal         *prometheus.CounterVec   // Upstream answers by HTTP status code
	UpstreamRequestDurationSeconds *prometheus.HistogramVec // Upstream call latency by outcome

	// Inbound metrics
	EndpointLatency *prometheus.HistogramVec // Inbound request latency by route pattern

	BuildInfo *prometheus.GaugeVec // Constant 1, labelled with build metadata
}

// New creates a new Metrics instance with all metrics registered on reg.
// A nil reg registers nothing, which keeps unit tests free of global state.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		VerdictsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verdicts_total",
			Help:      "Total number of card validation verdicts by kind",
		}, []string{"kind"}),

		UpstreamResponsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_responses_total",
			Help:      "Total number of responses from the card validation service by status code",
		}, []string{"status"}),

		UpstreamRequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of calls to the card validation service by outcome",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),

		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "endpoint_latency_seconds",
			Help:      "Latency of inbound endpoints in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),

		BuildInfo: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build metadata of the running relay; the value is always 1",
		}, []string{"version", "date", "commit"}),
	}
}

// RecordVerdict records one served verdict of the given kind.
func (m *Metrics) RecordVerdict(kind string) {
	m.VerdictsTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamResponse records one upstream answer with the given status.
// Unreachable calls have no status and must not be recorded here.
func (m *Metrics) RecordUpstreamResponse(status int) {
	m.UpstreamResponsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

// ObserveUpstreamDuration records the duration of one upstream call.
func (m *Metrics) ObserveUpstreamDuration(outcome string, durationSeconds float64) {
	m.UpstreamRequestDurationSeconds.WithLabelValues(outcome).Observe(durationSeconds)
}

// ObserveEndpointLatency records the latency of one inbound request.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

// SetBuildInfo publishes the build metadata of the running binary.
func (m *Metrics) SetBuildInfo(info models.AppBuildInfo) {
	m.BuildInfo.Reset()
	m.BuildInfo.WithLabelValues(info.BuildVersion(), info.BuildDate(), info.BuildCommit()).Set(1)
}
