package agents

import (
	"github.com/uma-logic-user/uma-logic-sub000/internal/config"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
)

// PedigreeAgent scores bloodline and form trajectory: a configured sire
// bonus table, improvement between the last two starts, a value pattern
// (strong recent form the market is ignoring, and its mirror), and a
// top-tier jockey bonus.
type PedigreeAgent struct {
	sireBonuses map[string]float64
	topJockeys  map[string]struct{}
}

// NewPedigreeAgent creates the pedigree/form agent from externally supplied
// lookup tables. A nil tables argument yields an agent with empty tables,
// which scores pedigree-neutral.
func NewPedigreeAgent(tables *config.AgentTables) *PedigreeAgent {
	agent := &PedigreeAgent{
		sireBonuses: map[string]float64{},
		topJockeys:  map[string]struct{}{},
	}
	if tables == nil {
		return agent
	}

	for sire, bonus := range tables.SireBonuses {
		agent.sireBonuses[sire] = bonus
	}
	for _, jockey := range tables.TopJockeys {
		agent.topJockeys[jockey] = struct{}{}
	}
	return agent
}

func (a *PedigreeAgent) Name() string { return PedigreeName }

func (a *PedigreeAgent) DefaultWeight() float64 { return 0.3 }

func (a *PedigreeAgent) Score(horse features.HorseFeatures, race features.RaceFeatures) float64 {
	score := baselineScore

	score += a.sireBonuses[horse.Sire] // unlisted sires contribute zero

	if len(horse.PriorFinishes) >= 2 {
		last, previous := horse.PriorFinishes[0], horse.PriorFinishes[1]
		if last < previous {
			score += 10
		} else if last > previous {
			score -= 6
		}
	}

	// Value pattern: solid recent form the market prices long, and the
	// mirror case of poor form going off short.
	if mean, ok := horse.RecentFinishMean(3); ok {
		if mean <= 3.0 && horse.Odds >= 10.0 {
			score += 12
		} else if mean >= 8.0 && horse.Odds <= 3.0 {
			score -= 10
		}
	}

	if _, ok := a.topJockeys[horse.Jockey]; ok {
		score += 8
	}

	return clampScore(score)
}
