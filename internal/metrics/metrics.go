package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog_admin"

// Metrics groups the service counters. All methods are safe on a nil
// receiver so tests can skip instrumentation.
type Metrics struct {
	registry *prometheus.Registry

	entityWrites          *prometheus.CounterVec
	combinationsGenerated prometheus.Counter
	weightRejections      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		entityWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_writes_total",
			Help:      "Admin writes by resource and action.",
		}, []string{"resource", "action"}),
		combinationsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combinations_generated_total",
			Help:      "Product combinations produced by the generator.",
		}),
		weightRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feature_weight_rejections_total",
			Help:      "Feature weight saves rejected, by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.entityWrites, m.combinationsGenerated, m.weightRejections)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) EntityWrite(resource, action string) {
	if m == nil {
		return
	}
	m.entityWrites.WithLabelValues(resource, action).Inc()
}

func (m *Metrics) CombinationsGenerated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.combinationsGenerated.Add(float64(n))
}

func (m *Metrics) WeightRejected(reason string) {
	if m == nil {
		return
	}
	m.weightRejections.WithLabelValues(reason).Inc()
}
