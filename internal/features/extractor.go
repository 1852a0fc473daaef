package features

import (
	"time"

	"github.com/uma-logic-user/uma-logic-sub000/internal/data"
)

// ExtractorConfig controls default substitution and history depth.
type ExtractorConfig struct {
	// FallbackOdds replaces missing or non-positive odds. A high value keeps
	// odds-driven bonuses switched off for horses the market never priced.
	FallbackOdds float64

	// MaxHistory bounds the number of prior starts carried per horse.
	MaxHistory int
}

// DefaultExtractorConfig returns the standard extraction settings.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		FallbackOdds: 99.9,
		MaxHistory:   5,
	}
}

// Extractor converts raw race records into leakage-safe feature views plus a
// separately held ground-truth result. Malformed sub-fields are replaced
// with neutral defaults; extraction never fails a whole record.
type Extractor struct {
	cfg ExtractorConfig
}

// NewExtractor creates an extractor. Non-positive config fields fall back to
// the defaults.
func NewExtractor(cfg ExtractorConfig) *Extractor {
	def := DefaultExtractorConfig()
	if cfg.FallbackOdds <= 0 {
		cfg.FallbackOdds = def.FallbackOdds
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = def.MaxHistory
	}
	return &Extractor{cfg: cfg}
}

// Extract builds the RaceCard for one record. The per-entry outcome block
// (finish, time, payout) and the race-level outcome feed only RaceResult;
// nothing outcome-derived reaches RaceFeatures or HorseFeatures. Records
// with fewer than 2 starters or without a resolvable winner get Result=nil.
func (e *Extractor) Extract(rec data.RaceRecord) RaceCard {
	card := RaceCard{
		Race:   e.extractRace(rec),
		Horses: make([]HorseFeatures, 0, len(rec.Entries)),
	}

	for _, entry := range rec.Entries {
		card.Horses = append(card.Horses, e.extractHorse(entry))
	}

	if len(card.Horses) >= 2 {
		card.Result = e.extractResult(rec)
	}

	return card
}

// ExtractAll maps Extract over a batch, preserving order.
func (e *Extractor) ExtractAll(records []data.RaceRecord) []RaceCard {
	cards := make([]RaceCard, 0, len(records))
	for _, rec := range records {
		cards = append(cards, e.Extract(rec))
	}
	return cards
}

func (e *Extractor) extractRace(rec data.RaceRecord) RaceFeatures {
	date, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		date = time.Time{}
	}

	return RaceFeatures{
		ID:        rec.ID,
		Name:      rec.Name,
		Venue:     rec.Venue,
		Distance:  rec.Distance,
		Surface:   rec.Surface,
		Condition: rec.Condition,
		Grade:     rec.Grade,
		Date:      date,
	}
}

func (e *Extractor) extractHorse(entry data.EntryRecord) HorseFeatures {
	odds := entry.Odds
	if odds <= 0 {
		odds = e.cfg.FallbackOdds
	}

	popularity := entry.Popularity
	if popularity < 0 {
		popularity = 0
	}

	horse := HorseFeatures{
		Number:      entry.Number,
		Name:        entry.Name,
		Odds:        odds,
		Popularity:  popularity,
		Weight:      entry.Weight,
		WeightDelta: entry.WeightDelta,
		Age:         entry.Age,
		Sex:         entry.Sex,
		Jockey:      entry.Jockey,
		Trainer:     entry.Trainer,
		Sire:        entry.Sire,
		DamSire:     entry.DamSire,
		Gate:        entry.Gate,
	}

	for _, start := range entry.History {
		if start.Finish <= 0 {
			continue
		}
		horse.PriorFinishes = append(horse.PriorFinishes, start.Finish)
		horse.PriorOdds = append(horse.PriorOdds, start.Odds)
		if len(horse.PriorFinishes) >= e.cfg.MaxHistory {
			break
		}
	}

	return horse
}

// extractResult resolves ground truth from the record's outcome block,
// falling back to per-entry finish positions when the block is absent.
func (e *Extractor) extractResult(rec data.RaceRecord) *RaceResult {
	if out := rec.Outcome; out != nil && out.WinnerNumber > 0 && out.WinnerOdds > 0 {
		return &RaceResult{
			WinnerNumber: out.WinnerNumber,
			WinnerOdds:   out.WinnerOdds,
			Top3:         append([]int(nil), out.Top3...),
		}
	}

	result := &RaceResult{}
	top3 := make([]int, 3)
	for _, entry := range rec.Entries {
		if entry.Finish >= 1 && entry.Finish <= 3 {
			top3[entry.Finish-1] = entry.Number
		}
		if entry.Finish == 1 {
			result.WinnerNumber = entry.Number
			result.WinnerOdds = entry.Odds
		}
	}

	if result.WinnerNumber == 0 || result.WinnerOdds <= 0 {
		return nil
	}

	for _, number := range top3 {
		if number > 0 {
			result.Top3 = append(result.Top3, number)
		}
	}
	return result
}
