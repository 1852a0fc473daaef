package agents

import (
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
)

// SpeedAgent scores raw competitiveness: market confidence (odds and
// popularity rank), recent finishing form, and an inside-gate edge over
// short trips.
type SpeedAgent struct{}

// NewSpeedAgent creates the speed-oriented agent.
func NewSpeedAgent() *SpeedAgent {
	return &SpeedAgent{}
}

func (a *SpeedAgent) Name() string { return SpeedName }

func (a *SpeedAgent) DefaultWeight() float64 { return 0.4 }

func (a *SpeedAgent) Score(horse features.HorseFeatures, race features.RaceFeatures) float64 {
	score := baselineScore

	switch {
	case horse.Odds <= 2.0:
		score += 20
	case horse.Odds <= 5.0:
		score += 12
	case horse.Odds < 10.0:
		score += 5
	}

	switch {
	case horse.Popularity == 1:
		score += 15
	case horse.Popularity == 2 || horse.Popularity == 3:
		score += 10
	case horse.Popularity == 4 || horse.Popularity == 5:
		score += 4
	}

	if mean, ok := horse.RecentFinishMean(3); ok {
		switch {
		case mean <= 2.0:
			score += 15
		case mean <= 3.5:
			score += 10
		case mean <= 5.0:
			score += 5
		case mean > 8.0:
			score -= 5
		}
	}

	// Inside draws break cleaner over sprint trips.
	if race.DistanceCategory() == features.DistanceShort && horse.Gate >= 1 && horse.Gate <= 4 {
		score += 5
	}

	return clampScore(score)
}
