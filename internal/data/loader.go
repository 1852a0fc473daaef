package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Year returns the calendar year of the record, or 0 when the date is
// missing or unparseable.
func (r RaceRecord) Year() int {
	t, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return 0
	}
	return t.Year()
}

// Load reads every *.json file under dir. Each file holds an array of
// RaceRecord. Unreadable or malformed files are logged and skipped so that a
// single bad export never aborts a run.
func Load(dir string) ([]RaceRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data dir %s: %w", dir, err)
	}

	var records []RaceRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Str("file", path).Err(err).Msg("Skipping unreadable data file")
			continue
		}

		var batch []RaceRecord
		if err := json.Unmarshal(raw, &batch); err != nil {
			log.Warn().Str("file", path).Err(err).Msg("Skipping malformed data file")
			continue
		}

		records = append(records, batch...)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].ID < records[j].ID
	})

	return records, nil
}

// GroupByYear buckets records by calendar year. Records with an unparseable
// date land in year 0 and are effectively unselectable by period.
func GroupByYear(records []RaceRecord) map[int][]RaceRecord {
	grouped := make(map[int][]RaceRecord)
	for _, rec := range records {
		year := rec.Year()
		grouped[year] = append(grouped[year], rec)
	}
	return grouped
}

// SelectYears flattens the requested years from a grouped set, preserving
// the per-year ordering. Unknown years contribute nothing.
func SelectYears(grouped map[int][]RaceRecord, years []int) []RaceRecord {
	var out []RaceRecord
	for _, year := range years {
		out = append(out, grouped[year]...)
	}
	return out
}
