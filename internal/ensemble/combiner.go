package ensemble

import (
	"github.com/uma-logic-user/uma-logic-sub000/internal/agents"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// NeutralScore is returned when no agent carries any weight, avoiding a
// division by zero in the weighted mean.
const NeutralScore = 50.0

// Combiner aggregates the independent agent scores into one ranking score
// via a weighted arithmetic mean.
type Combiner struct {
	agents []agents.Agent
}

// NewCombiner creates a combiner over the given agent set. Agent order is
// preserved, keeping evaluation deterministic.
func NewCombiner(agentSet []agents.Agent) *Combiner {
	return &Combiner{agents: agentSet}
}

// Score combines all agent scores for one horse under the given weights.
// An agent missing from the map contributes at its own default weight.
func (c *Combiner) Score(w weights.Weights, horse features.HorseFeatures, race features.RaceFeatures) float64 {
	var weighted, total float64
	for _, agent := range c.agents {
		coef, ok := w[agent.Name()]
		if !ok {
			coef = agent.DefaultWeight()
		}
		if coef <= 0 {
			continue
		}
		weighted += coef * agent.Score(horse, race)
		total += coef
	}

	if total == 0 {
		return NeutralScore
	}
	return weighted / total
}
