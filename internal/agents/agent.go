package agents

import (
	"github.com/uma-logic-user/uma-logic-sub000/internal/config"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
)

// Canonical agent names. These are the keys used in weight maps and the
// persisted weights artifact.
const (
	SpeedName        = "speed"
	AdaptabilityName = "adaptability"
	PedigreeName     = "pedigree"
)

// Score bounds shared by all agents.
const (
	baselineScore = 50.0
	minScore      = 0.0
	maxScore      = 100.0
)

// Agent is one independent heuristic producing a bounded score for a horse
// from pre-event features. Agents are stateless; an agent with no usable
// history returns the baseline plus only the signals it can compute, and
// never panics on missing optional fields.
type Agent interface {
	Name() string

	// DefaultWeight is this agent's built-in ensemble coefficient, used
	// when a weight map carries no entry for it.
	DefaultWeight() float64

	// Score returns a value in [0, 100].
	Score(horse features.HorseFeatures, race features.RaceFeatures) float64
}

// All constructs the full agent set in canonical order.
func All(tables *config.AgentTables) []Agent {
	return []Agent{
		NewSpeedAgent(),
		NewAdaptabilityAgent(),
		NewPedigreeAgent(tables),
	}
}

func clampScore(score float64) float64 {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
