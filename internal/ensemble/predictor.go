package ensemble

import (
	"sort"

	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// RankedHorse pairs a starter with its combined score.
type RankedHorse struct {
	Horse features.HorseFeatures `json:"horse"`
	Score float64                `json:"score"`
}

// Predictor ranks every starter on a card by combined score.
type Predictor struct {
	combiner *Combiner
}

// NewPredictor creates a predictor over the given combiner.
func NewPredictor(combiner *Combiner) *Predictor {
	return &Predictor{combiner: combiner}
}

// Rank returns the card's horses ordered by descending combined score.
// The sort is stable: equal scores keep their input order, which keeps
// rankings reproducible run to run.
func (p *Predictor) Rank(w weights.Weights, card features.RaceCard) []RankedHorse {
	ranked := make([]RankedHorse, 0, len(card.Horses))
	for _, horse := range card.Horses {
		ranked = append(ranked, RankedHorse{
			Horse: horse,
			Score: p.combiner.Score(w, horse, card.Race),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}
