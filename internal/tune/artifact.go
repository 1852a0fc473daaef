package tune

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/uma-logic-user/uma-logic-sub000/internal/backtest"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// ArtifactSchemaVersion is bumped on incompatible artifact layout changes.
const ArtifactSchemaVersion = 1

// PeriodMetrics pairs the years of a train or test period with the backtest
// aggregate measured over them.
type PeriodMetrics struct {
	Years   []int            `json:"years"`
	Metrics backtest.Metrics `json:"metrics"`
}

// OptimizerSettings records the search provenance.
type OptimizerSettings struct {
	Strategy     string  `json:"strategy"`
	Iterations   int     `json:"iterations"`
	LearningRate float64 `json:"learning_rate"`
	Seed         int64   `json:"seed"`
}

// Artifact is the persisted output of a tuning run and the sole interface
// consumed by downstream prediction logic. It loads independently of how it
// was produced.
type Artifact struct {
	SchemaVersion int               `json:"schema_version"`
	RunID         string            `json:"run_id"`
	GeneratedAt   time.Time         `json:"generated_at"`
	Weights       weights.Weights   `json:"weights"`
	Optimizer     OptimizerSettings `json:"optimizer"`
	Train         PeriodMetrics     `json:"train"`
	Test          PeriodMetrics     `json:"test"`
}

// Save writes the artifact as indented JSON, creating parent directories as
// needed.
func (a *Artifact) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create artifact dir: %w", err)
	}

	raw, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	return nil
}

// LoadArtifact reads and validates a weights artifact.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact: %w", err)
	}

	if artifact.SchemaVersion != ArtifactSchemaVersion {
		return nil, fmt.Errorf("unsupported artifact schema version %d", artifact.SchemaVersion)
	}
	if err := artifact.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("artifact carries invalid weights: %w", err)
	}

	return &artifact, nil
}

// LoadWeightsOrDefault returns the artifact's weights, or the built-in
// defaults when the artifact is missing or unreadable. Predict-only callers
// never fail on a bad artifact.
func LoadWeightsOrDefault(path string) weights.Weights {
	artifact, err := LoadArtifact(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("Falling back to default weights")
		return weights.Default()
	}
	return artifact.Weights
}
