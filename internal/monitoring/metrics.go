package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	generationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lsga_generations_total",
			Help: "Total number of generations completed",
		},
	)

	evaluationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lsga_objective_evaluations_total",
			Help: "Total number of objective evaluations performed",
		},
	)

	frontSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lsga_front_size",
			Help: "Size of the current non-dominated front",
		},
	)

	bestCost = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lsga_best_cost",
			Help: "Lowest cost objective on the current front",
		},
	)

	bestInstability = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lsga_best_instability",
			Help: "Lowest workforce instability objective on the current front",
		},
	)
)

func init() {
	prometheus.MustRegister(generationsTotal)
	prometheus.MustRegister(evaluationsTotal)
	prometheus.MustRegister(frontSize)
	prometheus.MustRegister(bestCost)
	prometheus.MustRegister(bestInstability)
}

// MetricsHandler serves the Prometheus metrics endpoint.
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint.
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordGeneration records one completed generation and the state of its
// non-dominated front.
func RecordGeneration(size int, lowestCost, lowestInstability float64) {
	generationsTotal.Inc()
	frontSize.Set(float64(size))
	if size > 0 {
		bestCost.Set(lowestCost)
		bestInstability.Set(lowestInstability)
	}
}

// AddEvaluations adds to the objective evaluation counter.
func AddEvaluations(n int) {
	evaluationsTotal.Add(float64(n))
}
