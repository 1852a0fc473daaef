package agents

import (
	"math"

	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
)

// AdaptabilityAgent scores fit between the horse and the day's conditions:
// gate position against the trip's positional bias, frame size against
// adverse going, body-weight stability, and age profile.
type AdaptabilityAgent struct{}

// NewAdaptabilityAgent creates the adaptability agent.
func NewAdaptabilityAgent() *AdaptabilityAgent {
	return &AdaptabilityAgent{}
}

func (a *AdaptabilityAgent) Name() string { return AdaptabilityName }

func (a *AdaptabilityAgent) DefaultWeight() float64 { return 0.3 }

func (a *AdaptabilityAgent) Score(horse features.HorseFeatures, race features.RaceFeatures) float64 {
	score := baselineScore

	score += gateFitBonus(horse.Gate, race.DistanceCategory())

	// Heavier frames hold their action better through soft or heavy going.
	if race.AdverseGoing() && horse.Weight > 0 {
		if horse.Weight >= 480 {
			score += 8
		} else if horse.Weight < 440 {
			score -= 5
		}
	}

	swing := math.Abs(horse.WeightDelta)
	if swing >= 10 {
		score -= 8
	} else if swing <= 4 {
		score += 5
	}

	switch {
	case horse.Age == 3:
		score += 2
	case horse.Age == 4 || horse.Age == 5:
		score += 6
	case horse.Age >= 8:
		score -= 6
	}

	return clampScore(score)
}

// gateFitBonus rewards draws inside the ideal band for the trip. Sprints
// favor inside gates outright; middle distances favor a mid draw with room;
// staying trips favor the rail.
func gateFitBonus(gate int, category string) float64 {
	if gate < 1 {
		return 0
	}

	switch category {
	case features.DistanceShort:
		if gate <= 4 {
			return 8
		}
		if gate <= 8 {
			return 3
		}
	case features.DistanceMedium:
		if gate >= 3 && gate <= 6 {
			return 8
		}
		if gate <= 8 {
			return 3
		}
	case features.DistanceLong:
		if gate <= 3 {
			return 8
		}
		if gate <= 6 {
			return 3
		}
	}

	return 0
}
