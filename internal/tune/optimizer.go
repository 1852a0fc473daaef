package tune

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/uma-logic-user/uma-logic-sub000/internal/backtest"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// OptimizerConfig describes one weight-search run.
type OptimizerConfig struct {
	Iterations   int     `json:"iterations"`
	LearningRate float64 `json:"learning_rate"`
	Seed         int64   `json:"seed"`
	TrainYears   []int   `json:"train_years"`
	TestYears    []int   `json:"test_years"`
}

// Optimizer searches the ensemble weight space on a training set and
// reports the frozen result against a disjoint test set.
type Optimizer struct {
	backtester *backtest.Backtester
	strategy   Strategy
	cfg        OptimizerConfig
}

// NewOptimizer wires a search strategy to a backtester.
func NewOptimizer(backtester *backtest.Backtester, strategy Strategy, cfg OptimizerConfig) *Optimizer {
	return &Optimizer{backtester: backtester, strategy: strategy, cfg: cfg}
}

// Run searches on train, then evaluates the frozen best weights once on
// train and once on test, and assembles the persistent artifact. Empty
// periods degrade to zero-valued metrics; Run always produces an artifact.
func (o *Optimizer) Run(initial weights.Weights, train, test []features.RaceCard) *Artifact {
	started := time.Now()

	log.Info().
		Str("strategy", o.strategy.Name()).
		Int("iterations", o.cfg.Iterations).
		Float64("learning_rate", o.cfg.LearningRate).
		Int("train_races", len(train)).
		Int("test_races", len(test)).
		Msg("Starting weight search")

	objective := func(w weights.Weights) float64 {
		return o.backtester.Evaluate(w, train).RecoveryRate
	}

	best, bestScore := o.strategy.Search(initial, objective)

	trainMetrics := o.backtester.Evaluate(best, train)
	testMetrics := o.backtester.Evaluate(best, test)

	log.Info().
		Dur("elapsed", time.Since(started)).
		Float64("best_objective", bestScore).
		Float64("train_recovery", trainMetrics.RecoveryRate).
		Float64("test_recovery", testMetrics.RecoveryRate).
		Msg("Weight search complete")

	return &Artifact{
		SchemaVersion: ArtifactSchemaVersion,
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Weights:       best,
		Optimizer: OptimizerSettings{
			Strategy:     o.strategy.Name(),
			Iterations:   o.cfg.Iterations,
			LearningRate: o.cfg.LearningRate,
			Seed:         o.cfg.Seed,
		},
		Train: PeriodMetrics{Years: o.cfg.TrainYears, Metrics: trainMetrics},
		Test:  PeriodMetrics{Years: o.cfg.TestYears, Metrics: testMetrics},
	}
}
