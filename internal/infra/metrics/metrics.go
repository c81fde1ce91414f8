package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invoicing"

// Metrics owns its registry so tests can build one without touching the global default.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPLatency    *prometheus.HistogramVec
	InvoicesIssued *prometheus.CounterVec
	InvoiceLines   prometheus.Histogram
	TaxCalls       *prometheus.CounterVec
	TaxLatency     *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Request latency",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"method", "route"}),
		InvoicesIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_issued_total",
			Help:      "Invoice issuance attempts by outcome",
		}, []string{"outcome"}),
		InvoiceLines: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invoice_lines",
			Help:      "Number of lines on issued invoices",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		TaxCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_calculations_total",
			Help:      "Tax policy calls by product type and outcome",
		}, []string{"product_type", "outcome"}),
		TaxLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tax_calculation_duration_seconds",
			Help:      "Tax policy call latency",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"product_type"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

func (m *Metrics) ObserveIssuance(lines int, err error) {
	if err != nil {
		m.InvoicesIssued.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	m.InvoicesIssued.WithLabelValues(OutcomeSuccess).Inc()
	m.InvoiceLines.Observe(float64(lines))
}
