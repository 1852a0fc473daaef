package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uma-logic-user/uma-logic-sub000/internal/config"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune"
)

// newEvaluateCmd builds the evaluate subcommand.
func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Backtest a weights artifact over selected years",
		Long: `Runs the flat win-bet backtest with weights loaded from an artifact
file, falling back to the built-in defaults when the artifact is
missing or invalid.`,
		RunE: runEvaluate,
	}
	cmd.Flags().String("data-dir", "data/races", "Directory of race record JSON files")
	cmd.Flags().IntSlice("years", nil, "Years to evaluate (required)")
	cmd.Flags().String("weights", "artifacts/weights.json", "Weights artifact path")
	cmd.Flags().String("tables", "", "Agent tables YAML path (sire bonuses, jockeys)")
	cmd.Flags().String("config", "", "Tuning config YAML path")
	return cmd
}

// runEvaluate backtests a saved weights artifact over the selected years
// and prints the metrics as JSON on stdout.
func runEvaluate(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)

	dataDir, _ := cmd.Flags().GetString("data-dir")
	years, _ := cmd.Flags().GetIntSlice("years")
	weightsPath, _ := cmd.Flags().GetString("weights")
	tablesPath, _ := cmd.Flags().GetString("tables")
	configPath, _ := cmd.Flags().GetString("config")

	if len(years) == 0 {
		return fmt.Errorf("--years is required")
	}

	cfg, err := config.LoadTuningConfig(configPath)
	if err != nil {
		return err
	}

	eng, err := newEngine(cfg, tablesPath)
	if err != nil {
		return err
	}

	cards, err := eng.loadCards(dataDir, years)
	if err != nil {
		return err
	}

	w := tune.LoadWeightsOrDefault(weightsPath)
	metrics := eng.backtester.Evaluate(w, cards)
	logMetrics("evaluate", metrics)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(metrics)
}
