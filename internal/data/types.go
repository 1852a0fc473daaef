package data

// RaceRecord is the canonical extracted form of one historical race. Records
// are produced by the external acquisition pipeline and materialized as JSON
// before this engine runs; the engine never fetches or parses remote sources.
//
// Outcome information lives in two places: the race-level Outcome block and
// the per-entry finish fields. Both are ground truth for the race being
// described and must never leak into prediction features — the feature
// extractor is the only consumer allowed to read them, and only to build a
// RaceResult.
type RaceRecord struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Venue     string         `json:"venue"`
	Distance  int            `json:"distance"`
	Surface   string         `json:"surface"`
	Condition string         `json:"condition"`
	Grade     string         `json:"grade"`
	Date      string         `json:"date"` // YYYY-MM-DD
	Entries   []EntryRecord  `json:"entries"`
	Outcome   *OutcomeRecord `json:"outcome,omitempty"`
}

// EntryRecord describes one starter in a race.
type EntryRecord struct {
	Number      int     `json:"number"`
	Name        string  `json:"name"`
	Odds        float64 `json:"odds"`
	Popularity  int     `json:"popularity"`
	Weight      float64 `json:"weight"`       // body weight in kg
	WeightDelta float64 `json:"weight_delta"` // change vs previous start
	Age         int     `json:"age"`
	Sex         string  `json:"sex"`
	Jockey      string  `json:"jockey"`
	Trainer     string  `json:"trainer"`
	Sire        string  `json:"sire"`
	DamSire     string  `json:"dam_sire"`
	Gate        int     `json:"gate"`

	// History holds this horse's prior starts, most recent first. Each
	// element is pre-event relative to its own race.
	History []StartRecord `json:"history,omitempty"`

	// Outcome block for the race this entry belongs to. Feature extraction
	// must not copy these into HorseFeatures.
	Finish     int     `json:"finish,omitempty"`
	FinishTime string  `json:"finish_time,omitempty"`
	Payout     float64 `json:"payout,omitempty"`
}

// StartRecord is one prior start of a horse: its finish position and the win
// odds it carried going into that race.
type StartRecord struct {
	Date   string  `json:"date"`
	Finish int     `json:"finish"`
	Odds   float64 `json:"odds"`
}

// OutcomeRecord is the race-level ground truth block.
type OutcomeRecord struct {
	WinnerNumber int     `json:"winner_number"`
	WinnerOdds   float64 `json:"winner_odds"`
	Top3         []int   `json:"top3,omitempty"`
}
