package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig holds the weight-search and backtest parameters.
type TuningConfig struct {
	Iterations   int     `yaml:"iterations"`
	LearningRate float64 `yaml:"learning_rate"`
	Seed         int64   `yaml:"seed"` // 0 means derive from wall clock
	Stake        float64 `yaml:"stake"`
	FallbackOdds float64 `yaml:"fallback_odds"`
	MaxHistory   int     `yaml:"max_history"`
}

// DefaultTuningConfig returns the standard tuning parameters.
func DefaultTuningConfig() TuningConfig {
	return TuningConfig{
		Iterations:   100,
		LearningRate: 0.1,
		Seed:         0,
		Stake:        100,
		FallbackOdds: 99.9,
		MaxHistory:   5,
	}
}

// LoadTuningConfig overlays a YAML file on top of the defaults. An empty
// path returns the defaults unchanged.
func LoadTuningConfig(path string) (TuningConfig, error) {
	cfg := DefaultTuningConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read tuning config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("tuning config validation failed: %w", err)
	}

	return cfg, nil
}

func (c TuningConfig) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be >= 1, got %d", c.Iterations)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning_rate %.3f outside range (0, 1]", c.LearningRate)
	}
	if c.Stake <= 0 {
		return fmt.Errorf("stake must be positive, got %.1f", c.Stake)
	}
	return nil
}
