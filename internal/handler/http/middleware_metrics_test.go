package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/nfc-card-relay/internal/logger"
	"github.com/MKhiriev/nfc-card-relay/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := &Handler{metrics: m, logger: logger.Nop()}

	router := chi.NewRouter()
	router.Use(h.withMetrics)
	router.Get("/api/validate-card/{card_no}", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/api/validate-card/1", "/api/validate-card/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2, testutil.CollectAndCount(m.EndpointLatency))
	assert.Equal(t, uint64(2), histogramCount(t, m, "/api/validate-card/{card_no}"))
	assert.Equal(t, uint64(1), histogramCount(t, m, unmatchedRoute))
}

func TestWithMetrics_NilMetrics(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withMetrics(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func histogramCount(t *testing.T, m *metrics.Metrics, endpoint string) uint64 {
	t.Helper()
	observer, err := m.EndpointLatency.GetMetricWithLabelValues(endpoint)
	if err != nil {
		t.Fatalf("get histogram: %v", err)
	}

	metric, ok := observer.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer is not a metric")
	}

	var out dto.Metric
	if err = metric.Write(&out); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return out.GetHistogram().GetSampleCount()
}
