package tune

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uma-logic-user/uma-logic-sub000/internal/backtest"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// WriteReport renders a markdown summary of a tuning run: final weights
// against the starting point, and train/test metrics side by side.
func WriteReport(path string, artifact *Artifact, initial weights.Weights) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	report := buildReport(artifact, initial)
	return os.WriteFile(path, []byte(report), 0644)
}

func buildReport(artifact *Artifact, initial weights.Weights) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ensemble Weight Tuning Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", artifact.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "**Run ID:** %s\n\n", artifact.RunID)
	fmt.Fprintf(&b, "Strategy: %s, %d iterations, learning rate %.3f, seed %d\n\n",
		artifact.Optimizer.Strategy, artifact.Optimizer.Iterations,
		artifact.Optimizer.LearningRate, artifact.Optimizer.Seed)

	b.WriteString("## Weights\n\n")
	b.WriteString("| Agent | Initial | Final | Change |\n")
	b.WriteString("|-------|---------|-------|--------|\n")
	for _, name := range artifact.Weights.Names() {
		final := artifact.Weights[name]
		start := initial[name]
		fmt.Fprintf(&b, "| %s | %.4f | %.4f | %+.4f |\n", name, start, final, final-start)
	}
	b.WriteString("\n")

	b.WriteString("## Performance\n\n")
	b.WriteString("| Period | Years | Races | Hit Rate | Investment | Return | Recovery |\n")
	b.WriteString("|--------|-------|-------|----------|------------|--------|----------|\n")
	writeMetricsRow(&b, "train", artifact.Train)
	writeMetricsRow(&b, "test", artifact.Test)
	b.WriteString("\n")

	b.WriteString(assessment(artifact.Test.Metrics))

	return b.String()
}

func writeMetricsRow(b *strings.Builder, label string, period PeriodMetrics) {
	years := make([]string, len(period.Years))
	for i, year := range period.Years {
		years[i] = fmt.Sprintf("%d", year)
	}

	m := period.Metrics
	fmt.Fprintf(b, "| %s | %s | %d | %.3f | %.0f | %.0f | %.3f |\n",
		label, strings.Join(years, ", "), m.TotalRaces, m.HitRate,
		m.TotalInvestment, m.TotalReturn, m.RecoveryRate)
}

func assessment(test backtest.Metrics) string {
	switch {
	case test.TotalRaces == 0:
		return "No usable races in the test period; test metrics are zero-valued.\n"
	case test.RecoveryRate >= 1.0:
		return fmt.Sprintf("Test recovery %.3f: at or above break-even on held-out data.\n", test.RecoveryRate)
	default:
		return fmt.Sprintf("Test recovery %.3f: below break-even on held-out data.\n", test.RecoveryRate)
	}
}
