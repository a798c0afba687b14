// Package metrics provides Prometheus metrics for the propulsion estimator.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Matching metrics
	MatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propulsion_catalog_matches_total",
			Help: "Catalog match attempts by component domain and winning tier",
		},
		[]string{"domain", "tier"},
	)

	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "propulsion_catalog_records",
			Help: "Number of records in the loaded catalog",
		},
		[]string{"domain"},
	)

	// Solver metrics
	SolverErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propulsion_solver_errors_total",
			Help: "Propulsion solver failures by kind",
		},
		[]string{"kind"},
	)

	ThrottleIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "propulsion_throttle_search_iterations",
			Help:    "Bisection iterations used by the throttle search",
			Buckets: []float64{1, 5, 10, 20, 40, 80, 200},
		},
	)

	// Calibration metrics
	CalibrationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "propulsion_calibration_duration_seconds",
			Help:    "Time taken by the external calculator round-trip",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"status"},
	)

	SweepEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propulsion_sweep_evaluations_total",
			Help: "Memo lookups split into fresh evaluations, hits and evictions",
		},
		[]string{"result"},
	)
)

// RecordMatch counts a match attempt. An empty tier means no match was found.
func RecordMatch(domain, tier string) {
	if tier == "" {
		tier = "none"
	}
	MatchesTotal.WithLabelValues(domain, tier).Inc()
}

// RecordSolverError counts a solver failure of the given kind.
func RecordSolverError(kind string) {
	SolverErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordCalibration observes a calculator round-trip.
func RecordCalibration(status string, started time.Time) {
	CalibrationDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// Handler exposes the default registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
