package backtest

import (
	"github.com/uma-logic-user/uma-logic-sub000/internal/ensemble"
	"github.com/uma-logic-user/uma-logic-sub000/internal/features"
	"github.com/uma-logic-user/uma-logic-sub000/internal/tune/weights"
)

// DefaultStake is the flat win-bet stake recorded per evaluated race.
const DefaultStake = 100.0

// Metrics aggregates one backtest pass. It is built fresh per Evaluate call
// and never mutated afterwards.
type Metrics struct {
	TotalRaces      int     `json:"total_races"`
	Hits            int     `json:"hits"`
	HitRate         float64 `json:"hit_rate"`
	SkippedRaces    int     `json:"skipped_races"`
	TotalInvestment float64 `json:"total_investment"`
	TotalReturn     float64 `json:"total_return"`
	RecoveryRate    float64 `json:"recovery_rate"`
}

// RaceOutcome is the per-race evaluation detail.
type RaceOutcome struct {
	RaceID     string  `json:"race_id"`
	Selection  int     `json:"selection"`
	Winner     int     `json:"winner"`
	Hit        bool    `json:"hit"`
	Investment float64 `json:"investment"`
	Return     float64 `json:"return"`
}

// Backtester replays historical race cards: the predictor's top pick is
// backed with a flat win bet and settled against the card's ground truth.
type Backtester struct {
	predictor *ensemble.Predictor
	stake     float64
}

// NewBacktester creates a backtester. A non-positive stake falls back to
// DefaultStake.
func NewBacktester(predictor *ensemble.Predictor, stake float64) *Backtester {
	if stake <= 0 {
		stake = DefaultStake
	}
	return &Backtester{predictor: predictor, stake: stake}
}

// Evaluate replays every card under the given weights and aggregates the
// results. Cards without a result or with fewer than 2 starters are counted
// as skipped, not as errors. Evaluation is deterministic and idempotent for
// fixed weights and cards.
func (b *Backtester) Evaluate(w weights.Weights, cards []features.RaceCard) Metrics {
	metrics := Metrics{}
	for _, card := range cards {
		outcome, ok := b.evaluateRace(w, card)
		if !ok {
			metrics.SkippedRaces++
			continue
		}

		metrics.TotalRaces++
		metrics.TotalInvestment += outcome.Investment
		metrics.TotalReturn += outcome.Return
		if outcome.Hit {
			metrics.Hits++
		}
	}

	if metrics.TotalRaces > 0 {
		metrics.HitRate = float64(metrics.Hits) / float64(metrics.TotalRaces)
	}
	if metrics.TotalInvestment > 0 {
		metrics.RecoveryRate = metrics.TotalReturn / metrics.TotalInvestment
	}

	return metrics
}

// EvaluateRace settles a single card. The second return is false when the
// card is unusable for backtesting.
func (b *Backtester) EvaluateRace(w weights.Weights, card features.RaceCard) (RaceOutcome, bool) {
	return b.evaluateRace(w, card)
}

func (b *Backtester) evaluateRace(w weights.Weights, card features.RaceCard) (RaceOutcome, bool) {
	if card.Result == nil || len(card.Horses) < 2 {
		return RaceOutcome{}, false
	}

	ranked := b.predictor.Rank(w, card)
	selection := ranked[0].Horse

	outcome := RaceOutcome{
		RaceID:     card.Race.ID,
		Selection:  selection.Number,
		Winner:     card.Result.WinnerNumber,
		Hit:        selection.Number == card.Result.WinnerNumber,
		Investment: b.stake,
	}
	if outcome.Hit {
		outcome.Return = b.stake * card.Result.WinnerOdds
	}

	return outcome, true
}
