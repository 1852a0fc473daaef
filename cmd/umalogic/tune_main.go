package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/uma-logic-user/uma-logic-sub000/internal/config"
	"github.com/uma-logic-user/uma-logic-sub000/internal/telemetry"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// newTuneCmd builds the tune subcommand.
func newTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Search for ensemble weights on a train/test year split",
		Long: `Loads race records, backtests candidate weights on the training
years, and keeps the best-performing set. The result is written as a
versioned weights artifact together with a markdown report.`,
		RunE: runTune,
	}
	cmd.Flags().String("data-dir", "data/races", "Directory of race record JSON files")
	cmd.Flags().IntSlice("train-years", nil, "Years used for the weight search (required)")
	cmd.Flags().IntSlice("test-years", nil, "Held-out years for evaluation (required)")
	cmd.Flags().Int("iterations", 0, "Search iterations (overrides config)")
	cmd.Flags().Float64("learning-rate", 0, "Perturbation step size (overrides config)")
	cmd.Flags().Int64("seed", 0, "Random seed, 0 derives from wall clock")
	cmd.Flags().String("out", "artifacts/weights.json", "Weights artifact output path")
	cmd.Flags().String("report", "", "Optional markdown report output path")
	cmd.Flags().String("metrics-addr", "", "Expose /health and /metrics on this address (e.g. :9090)")
	cmd.Flags().String("config", "", "Tuning config YAML path")
	cmd.Flags().String("tables", "", "Agent tables YAML path (sire bonuses, jockeys)")
	return cmd
}

// runTune executes the weight search and writes the artifact and report.
func runTune(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)

	dataDir, _ := cmd.Flags().GetString("data-dir")
	trainYears, _ := cmd.Flags().GetIntSlice("train-years")
	testYears, _ := cmd.Flags().GetIntSlice("test-years")
	iterations, _ := cmd.Flags().GetInt("iterations")
	learningRate, _ := cmd.Flags().GetFloat64("learning-rate")
	seed, _ := cmd.Flags().GetInt64("seed")
	outPath, _ := cmd.Flags().GetString("out")
	reportPath, _ := cmd.Flags().GetString("report")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	configPath, _ := cmd.Flags().GetString("config")
	tablesPath, _ := cmd.Flags().GetString("tables")

	if len(trainYears) == 0 {
		return fmt.Errorf("--train-years is required")
	}
	if len(testYears) == 0 {
		return fmt.Errorf("--test-years is required")
	}
	for _, trainYear := range trainYears {
		for _, testYear := range testYears {
			if trainYear == testYear {
				return fmt.Errorf("year %d appears in both --train-years and --test-years", trainYear)
			}
		}
	}

	cfg, err := config.LoadTuningConfig(configPath)
	if err != nil {
		return err
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if learningRate > 0 {
		cfg.LearningRate = learningRate
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	registry := telemetry.NewRegistry()
	if metricsAddr != "" {
		telemetry.Serve(telemetry.NewServer(metricsAddr, registry))
	}

	eng, err := newEngine(cfg, tablesPath)
	if err != nil {
		registry.TuneRuns.WithLabelValues("error").Inc()
		return err
	}

	train, err := eng.loadCards(dataDir, trainYears)
	if err != nil {
		registry.TuneRuns.WithLabelValues("error").Inc()
		return err
	}
	test, err := eng.loadCards(dataDir, testYears)
	if err != nil {
		registry.TuneRuns.WithLabelValues("error").Inc()
		return err
	}

	log.Info().
		Int("iterations", cfg.Iterations).
		Float64("learning_rate", cfg.LearningRate).
		Int64("seed", cfg.Seed).
		Ints("train_years", trainYears).
		Ints("test_years", testYears).
		Msg("Starting weight search")

	strategy := tune.NewHillClimb(cfg.Iterations, cfg.LearningRate, rand.New(rand.NewSource(cfg.Seed)))
	strategy.OnEvaluation(registry.RecordEvaluation)

	optimizer := tune.NewOptimizer(eng.backtester, strategy, tune.OptimizerConfig{
		Iterations:   cfg.Iterations,
		LearningRate: cfg.LearningRate,
		Seed:         cfg.Seed,
		TrainYears:   trainYears,
		TestYears:    testYears,
	})

	initial := weights.Default()
	artifact := optimizer.Run(initial, train, test)

	registry.RecordBacktest(artifact.Test.Metrics)
	logMetrics("train", artifact.Train.Metrics)
	logMetrics("test", artifact.Test.Metrics)

	if err := artifact.Save(outPath); err != nil {
		registry.TuneRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to save weights artifact: %w", err)
	}
	log.Info().Str("path", outPath).Str("run_id", artifact.RunID).Msg("Saved weights artifact")

	if reportPath != "" {
		if err := tune.WriteReport(reportPath, artifact, initial); err != nil {
			registry.TuneRuns.WithLabelValues("error").Inc()
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Info().Str("path", reportPath).Msg("Wrote tuning report")
	}

	registry.TuneRuns.WithLabelValues("success").Inc()
	return nil
}
