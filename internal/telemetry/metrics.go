package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uma-logic-user/uma-logic-sub000/internal/backtest"
)

// Registry holds the Prometheus metrics exposed during tuning and
// evaluation runs.
type Registry struct {
	registry *prometheus.Registry

	// Backtest metrics
	BacktestRaces *prometheus.CounterVec
	RecoveryRate  prometheus.Gauge

	// Optimizer metrics
	OptimizerEvaluations prometheus.Counter
	OptimizerBest        prometheus.Gauge
	TuneRuns             *prometheus.CounterVec
}

// NewRegistry creates a registry with all engine metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		BacktestRaces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "umalogic",
				Name:      "backtest_races_total",
				Help:      "Total races seen by the backtester by result",
			},
			[]string{"result"}, // hit|miss|skipped
		),

		RecoveryRate: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "umalogic",
				Name:      "backtest_recovery_rate",
				Help:      "Recovery rate of the most recent backtest pass",
			},
		),

		OptimizerEvaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "umalogic",
				Name:      "optimizer_evaluations_total",
				Help:      "Total objective evaluations performed by the weight search",
			},
		),

		OptimizerBest: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "umalogic",
				Name:      "optimizer_best_recovery_rate",
				Help:      "Best training recovery rate found so far",
			},
		),

		TuneRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "umalogic",
				Name:      "tune_runs_total",
				Help:      "Total tuning runs by status",
			},
			[]string{"status"}, // success|error
		),
	}

	r.registry.MustRegister(
		r.BacktestRaces,
		r.RecoveryRate,
		r.OptimizerEvaluations,
		r.OptimizerBest,
		r.TuneRuns,
	)

	return r
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gather exposes the underlying gatherer, used by tests to inspect metric
// families.
func (r *Registry) Gather() prometheus.Gatherer {
	return r.registry
}

// RecordBacktest records the aggregate of one backtest pass.
func (r *Registry) RecordBacktest(m backtest.Metrics) {
	r.BacktestRaces.WithLabelValues("hit").Add(float64(m.Hits))
	r.BacktestRaces.WithLabelValues("miss").Add(float64(m.TotalRaces - m.Hits))
	r.BacktestRaces.WithLabelValues("skipped").Add(float64(m.SkippedRaces))
	r.RecoveryRate.Set(m.RecoveryRate)
}

// RecordEvaluation counts one objective evaluation and updates the running
// best when improved is true.
func (r *Registry) RecordEvaluation(objective float64, improved bool) {
	r.OptimizerEvaluations.Inc()
	if improved {
		r.OptimizerBest.Set(objective)
	}
}
