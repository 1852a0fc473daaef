package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/uma-logic-user/uma-logic-sub000/internal/agents"
	"github.com/uma-logic-user/uma-logic-sub000/internal/backtest"
	"github.com/uma-logic-user/uma-logic-sub000/internal/config"
	"github.com/uma-logic-user/uma-logic-sub000/internal/data"
	"github.com/uma-logic-user/uma-logic-sub000/internal/ensemble"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
)

// engine bundles the scoring pipeline pieces shared by tune and evaluate.
type engine struct {
	extractor  *features.Extractor
	backtester *backtest.Backtester
}

// newEngine assembles extractor, agents, combiner, predictor and backtester
// from the tuning config and agent tables.
func newEngine(cfg config.TuningConfig, tablesPath string) (*engine, error) {
	tables, err := config.LoadTablesOrDefault(tablesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent tables: %w", err)
	}

	extractorCfg := features.DefaultExtractorConfig()
	extractorCfg.FallbackOdds = cfg.FallbackOdds
	extractorCfg.MaxHistory = cfg.MaxHistory

	predictor := ensemble.NewPredictor(ensemble.NewCombiner(agents.All(tables)))
	return &engine{
		extractor:  features.NewExtractor(extractorCfg),
		backtester: backtest.NewBacktester(predictor, cfg.Stake),
	}, nil
}

// loadCards loads race records, keeps the requested years, and extracts
// leakage-safe race cards in date order. A period matching zero records is
// not an error: it yields an empty slice, and downstream evaluation degrades
// to zero-valued metrics.
func (e *engine) loadCards(dataDir string, years []int) ([]features.RaceCard, error) {
	records, err := data.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load race records: %w", err)
	}

	selected := data.SelectYears(data.GroupByYear(records), years)
	if len(selected) == 0 {
		log.Warn().
			Ints("years", years).
			Str("data_dir", dataDir).
			Msg("No race records for requested years; metrics will be zero-valued")
		return nil, nil
	}

	cards := e.extractor.ExtractAll(selected)
	log.Info().
		Int("records", len(records)).
		Int("selected", len(selected)).
		Ints("years", years).
		Msg("Extracted race cards")
	return cards, nil
}

func logMetrics(label string, m backtest.Metrics) {
	log.Info().
		Str("period", label).
		Int("races", m.TotalRaces).
		Int("hits", m.Hits).
		Float64("hit_rate", m.HitRate).
		Float64("investment", m.TotalInvestment).
		Float64("return", m.TotalReturn).
		Float64("recovery_rate", m.RecoveryRate).
		Int("skipped", m.SkippedRaces).
		Msg("Backtest metrics")
}
