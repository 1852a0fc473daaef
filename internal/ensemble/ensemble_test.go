package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uma-logic-user/uma-logic-sub000/internal/agents"
	"github.com/uma-logic-user/uma-logic-sub000/internal/config"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// stubAgent returns a fixed score regardless of input.
type stubAgent struct {
	name          string
	defaultWeight float64
	score         float64
}

func (s stubAgent) Name() string           { return s.name }
func (s stubAgent) DefaultWeight() float64 { return s.defaultWeight }
func (s stubAgent) Score(features.HorseFeatures, features.RaceFeatures) float64 {
	return s.score
}

func TestCombiner_WeightedMean(t *testing.T) {
	c := NewCombiner([]agents.Agent{
		stubAgent{name: "speed", defaultWeight: 0.4, score: 80},
		stubAgent{name: "adaptability", defaultWeight: 0.3, score: 60},
		stubAgent{name: "pedigree", defaultWeight: 0.3, score: 40},
	})

	w := weights.Weights{"speed": 0.5, "adaptability": 0.25, "pedigree": 0.25}
	got := c.Score(w, features.HorseFeatures{}, features.RaceFeatures{})

	// (0.5*80 + 0.25*60 + 0.25*40) / 1.0
	assert.InDelta(t, 65.0, got, 1e-9)
}

func TestCombiner_FallsBackToDefaultWeight(t *testing.T) {
	c := NewCombiner([]agents.Agent{
		stubAgent{name: "speed", defaultWeight: 0.4, score: 100},
		stubAgent{name: "adaptability", defaultWeight: 0.6, score: 50},
	})

	// Map carries only speed; adaptability uses its built-in 0.6.
	got := c.Score(weights.Weights{"speed": 0.4}, features.HorseFeatures{}, features.RaceFeatures{})
	assert.InDelta(t, (0.4*100+0.6*50)/1.0, got, 1e-9)
}

func TestCombiner_ZeroTotalWeightReturnsNeutral(t *testing.T) {
	c := NewCombiner([]agents.Agent{
		stubAgent{name: "speed", defaultWeight: 0, score: 100},
	})

	got := c.Score(weights.Weights{"speed": 0}, features.HorseFeatures{}, features.RaceFeatures{})
	assert.Equal(t, NeutralScore, got)
}

func TestCombiner_OutputBounded(t *testing.T) {
	tables, err := config.LoadTablesOrDefault("")
	require.NoError(t, err)
	c := NewCombiner(agents.All(tables))

	horses := []features.HorseFeatures{
		{},
		{Odds: 1.2, Popularity: 1, Gate: 1, Age: 4, Weight: 500,
			Sire: "Deep Impact", Jockey: "Yuga Kawada", PriorFinishes: []int{1, 1}},
		{Odds: 180, Popularity: 16, Gate: 16, Age: 10, Weight: 400, WeightDelta: -20,
			PriorFinishes: []int{14, 12, 16}},
	}
	race := features.RaceFeatures{Distance: 1200, Condition: features.ConditionHeavy}

	for _, horse := range horses {
		got := c.Score(weights.Default(), horse, race)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestPredictor_RanksDescending(t *testing.T) {
	tables, err := config.LoadTablesOrDefault("")
	require.NoError(t, err)
	p := NewPredictor(NewCombiner(agents.All(tables)))

	card := features.RaceCard{
		Race: features.RaceFeatures{Distance: 1200, Condition: features.ConditionGood},
		Horses: []features.HorseFeatures{
			{Number: 1, Odds: 15.0, Popularity: 7, Gate: 8, Age: 4, PriorFinishes: []int{9, 9}},
			{Number: 2, Odds: 2.0, Popularity: 1, Gate: 2, Age: 4, Sire: "Deep Impact", PriorFinishes: []int{1, 2}},
			{Number: 3, Odds: 8.0, Popularity: 4, Gate: 6, Age: 4, PriorFinishes: []int{6, 6}},
		},
	}

	ranked := p.Rank(weights.Default(), card)
	require.Len(t, ranked, 3)
	assert.Equal(t, 2, ranked[0].Horse.Number)
	assert.Equal(t, 3, ranked[1].Horse.Number)
	assert.Equal(t, 1, ranked[2].Horse.Number)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}

// Equal scores keep their input order.
func TestPredictor_StableTieBreak(t *testing.T) {
	p := NewPredictor(NewCombiner([]agents.Agent{
		stubAgent{name: "speed", defaultWeight: 1.0, score: 50},
	}))

	card := features.RaceCard{
		Horses: []features.HorseFeatures{
			{Number: 7}, {Number: 3}, {Number: 5},
		},
	}

	ranked := p.Rank(weights.Weights{"speed": 1.0}, card)
	require.Len(t, ranked, 3)
	assert.Equal(t, 7, ranked[0].Horse.Number)
	assert.Equal(t, 3, ranked[1].Horse.Number)
	assert.Equal(t, 5, ranked[2].Horse.Number)
}
