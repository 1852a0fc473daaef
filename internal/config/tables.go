package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// AgentTables is the externally supplied lookup data consumed by the scoring
// agents: per-sire bonus points and the roster of top-tier jockeys. Keeping
// these out of the agents makes each agent a pure function of
// (horse, race, config).
type AgentTables struct {
	SireBonuses map[string]float64 `yaml:"sire_bonuses"`
	TopJockeys  []string           `yaml:"top_jockeys"`
}

// TablesLoader handles loading and validation of agent lookup tables.
type TablesLoader struct {
	tables *AgentTables
}

// NewTablesLoader creates an empty loader.
func NewTablesLoader() *TablesLoader {
	return &TablesLoader{}
}

// LoadFromFile loads agent tables from a YAML configuration file.
func (tl *TablesLoader) LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tables file %s: %w", path, err)
	}

	var tables AgentTables
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return fmt.Errorf("failed to parse tables YAML: %w", err)
	}

	if err := validateTables(&tables); err != nil {
		return fmt.Errorf("tables validation failed: %w", err)
	}

	tl.tables = &tables
	return nil
}

// LoadDefault installs the built-in tables used when no file is supplied.
func (tl *TablesLoader) LoadDefault() error {
	tables := &AgentTables{
		SireBonuses: map[string]float64{
			"Deep Impact":      15,
			"Lord Kanaloa":     12,
			"King Kamehameha":  10,
			"Heart's Cry":      9,
			"Kitasan Black":    9,
			"Orfevre":          8,
			"Duramente":        8,
			"Stay Gold":        8,
			"Epiphaneia":       7,
			"Harbinger":        6,
			"Rulership":        6,
			"Screen Hero":      5,
			"Daiwa Major":      5,
			"Kizuna":           5,
			"Maurice":          4,
			"Gold Ship":        4,
		},
		TopJockeys: []string{
			"Christophe Lemaire",
			"Yuga Kawada",
			"Yutaka Take",
			"Mirco Demuro",
			"Keita Tosaki",
			"Yuichi Fukunaga",
			"Kohei Matsuyama",
			"Takeshi Yokoyama",
		},
	}

	if err := validateTables(tables); err != nil {
		return fmt.Errorf("default tables validation failed: %w", err)
	}

	tl.tables = tables
	return nil
}

// Tables returns the loaded tables.
func (tl *TablesLoader) Tables() (*AgentTables, error) {
	if tl.tables == nil {
		return nil, fmt.Errorf("tables not loaded - call LoadFromFile or LoadDefault first")
	}
	return tl.tables, nil
}

// LoadTablesOrDefault loads tables from path when given, falling back to the
// built-in defaults when path is empty or unreadable.
func LoadTablesOrDefault(path string) (*AgentTables, error) {
	tl := NewTablesLoader()
	if path != "" {
		if err := tl.LoadFromFile(path); err == nil {
			return tl.Tables()
		}
	}
	if err := tl.LoadDefault(); err != nil {
		return nil, err
	}
	return tl.Tables()
}

func validateTables(tables *AgentTables) error {
	for sire, bonus := range tables.SireBonuses {
		if sire == "" {
			return fmt.Errorf("sire bonus entry with empty name")
		}
		if bonus < 0 || bonus > 30 {
			return fmt.Errorf("sire bonus for %s (%.1f) outside range [0, 30]", sire, bonus)
		}
	}

	for _, jockey := range tables.TopJockeys {
		if jockey == "" {
			return fmt.Errorf("top jockey entry with empty name")
		}
	}

	return nil
}
