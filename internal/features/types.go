package features

import "time"

// Canonical surface and going values. The ingestion pipeline maps venue- and
// language-specific variants onto these before records reach the engine.
const (
	SurfaceTurf = "turf"
	SurfaceDirt = "dirt"

	ConditionGood     = "good"
	ConditionYielding = "yielding"
	ConditionSoft     = "soft"
	ConditionHeavy    = "heavy"
)

// Distance categories used by the scoring agents.
const (
	DistanceShort  = "short"  // <= 1400m
	DistanceMedium = "medium" // 1401-2000m
	DistanceLong   = "long"   // > 2000m
)

// RaceFeatures holds the pre-event view of one race.
type RaceFeatures struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Venue     string    `json:"venue"`
	Distance  int       `json:"distance"`
	Surface   string    `json:"surface"`
	Condition string    `json:"condition"`
	Grade     string    `json:"grade"`
	Date      time.Time `json:"date"`
}

// DistanceCategory buckets the race distance for gate and pace heuristics.
func (r RaceFeatures) DistanceCategory() string {
	switch {
	case r.Distance <= 1400:
		return DistanceShort
	case r.Distance <= 2000:
		return DistanceMedium
	default:
		return DistanceLong
	}
}

// AdverseGoing reports whether the track condition is rated soft or worse.
func (r RaceFeatures) AdverseGoing() bool {
	return r.Condition == ConditionSoft || r.Condition == ConditionHeavy
}

// HorseFeatures holds the pre-event view of one starter. It must never carry
// a field derived from the race being predicted: no finish position, time,
// sectional, or payout. Those live only on RaceResult.
type HorseFeatures struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Odds        float64 `json:"odds"`
	Popularity  int     `json:"popularity"`
	Weight      float64 `json:"weight"`
	WeightDelta float64 `json:"weight_delta"`
	Age         int     `json:"age"`
	Sex         string  `json:"sex"`
	Jockey      string  `json:"jockey"`
	Trainer     string  `json:"trainer"`
	Sire        string  `json:"sire"`
	DamSire     string  `json:"dam_sire"`
	Gate        int     `json:"gate"`

	// PriorFinishes and PriorOdds describe earlier starts, most recent
	// first. Each element is pre-event relative to its own race.
	PriorFinishes []int     `json:"prior_finishes,omitempty"`
	PriorOdds     []float64 `json:"prior_odds,omitempty"`
}

// RecentFinishMean averages the most recent n prior finishes. The second
// return is false when no history is available.
func (h HorseFeatures) RecentFinishMean(n int) (float64, bool) {
	if len(h.PriorFinishes) == 0 || n <= 0 {
		return 0, false
	}
	if n > len(h.PriorFinishes) {
		n = len(h.PriorFinishes)
	}

	var sum int
	for _, finish := range h.PriorFinishes[:n] {
		sum += finish
	}
	return float64(sum) / float64(n), true
}

// RaceResult is ground truth for one race, held apart from the feature view.
// Only the backtester consumes it.
type RaceResult struct {
	WinnerNumber int     `json:"winner_number"`
	WinnerOdds   float64 `json:"winner_odds"`
	Top3         []int   `json:"top3,omitempty"`
}

// RaceCard bundles the extracted views of one race. Result is nil when the
// record lacks enough starters or a resolvable outcome; such cards are
// skipped by the backtester but remain usable for feature-only paths.
type RaceCard struct {
	Race   RaceFeatures    `json:"race"`
	Horses []HorseFeatures `json:"horses"`
	Result *RaceResult     `json:"result,omitempty"`
}
