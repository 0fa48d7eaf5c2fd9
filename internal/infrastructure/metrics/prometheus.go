// Package metrics implements port.Metrics with Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus records application metrics in a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	draftsStarted     prometheus.Counter
	pieceMutations    *prometheus.CounterVec
	shipmentsSubmited *prometheus.CounterVec
	chargeableWeight  prometheus.Histogram
}

var _ port.Metrics = (*Prometheus)(nil)

// NewPrometheus creates the collectors under namespace and registers them,
// together with the Go runtime and process collectors.
func NewPrometheus(namespace string) *Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Prometheus{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		httpRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		}),
		draftsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drafts_started_total",
			Help:      "Total number of shipment drafts started",
		}),
		pieceMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "piece_mutations_total",
			Help:      "Total number of piece add/update/remove operations",
		}, []string{"operation"}),
		shipmentsSubmited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipments_submitted_total",
			Help:      "Total number of shipments submitted",
		}, []string{"service"}),
		chargeableWeight: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shipment_chargeable_weight_kg",
			Help:      "Chargeable weight of submitted shipments in kilograms",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.draftsStarted,
		m.pieceMutations,
		m.shipmentsSubmited,
		m.chargeableWeight,
	)
	return m
}

// Handler returns the HTTP handler exposing the registry.
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Prometheus) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Prometheus) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Prometheus) HTTPRequestStarted()  { m.httpRequestsInFlight.Inc() }
func (m *Prometheus) HTTPRequestFinished() { m.httpRequestsInFlight.Dec() }

func (m *Prometheus) RecordDraftStarted() {
	m.draftsStarted.Inc()
}

func (m *Prometheus) RecordPieceMutation(op port.PieceOperation) {
	m.pieceMutations.WithLabelValues(string(op)).Inc()
}

func (m *Prometheus) RecordShipmentSubmitted(service entity.ServiceType, chargeableWeight float64) {
	m.shipmentsSubmited.WithLabelValues(string(service)).Inc()
	m.chargeableWeight.Observe(chargeableWeight)
}

// Nop is a port.Metrics that records nothing.
type Nop struct{}

var _ port.Metrics = Nop{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) HTTPRequestStarted()                                  {}
func (Nop) HTTPRequestFinished()                                 {}
func (Nop) RecordDraftStarted()                                  {}
func (Nop) RecordPieceMutation(port.PieceOperation)              {}
func (Nop) RecordShipmentSubmitted(entity.ServiceType, float64)  {}
