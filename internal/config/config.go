package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/KJone1/shekel/internal/rules"
)

// Config represents the top-level shekel.yaml configuration.
type Config struct {
	Files        FilesConfig    `yaml:"files"`
	Overrides    []Override     `yaml:"overrides,omitempty"`
	RentDetector RentDetector   `yaml:"rent_detector"`
	Insights     InsightsConfig `yaml:"insights"`
}

// FilesConfig names the hand-off files between stages.
type FilesConfig struct {
	Workbook string `yaml:"workbook"` // cleaned multi-sheet workbook (stage 1 output)
	Report   string `yaml:"report"`   // Markdown report (stage 2 output)
	CSV      string `yaml:"csv"`      // budget-app import CSV (stage 3 output)
}

// Override rewrites the category of matching rows during cleanup. Exactly
// one of Payees or Contains is set: Payees matches the payee exactly and
// only fills rows whose category is still unset; Contains is a
// case-insensitive substring test and overwrites unconditionally.
type Override struct {
	Payees   []string `yaml:"payees,omitempty"`
	Contains string   `yaml:"contains,omitempty"`
	Category string   `yaml:"category"`
}

// RentDetector configures the paybox rent heuristic. The amount windows are
// personal thresholds, so they live here rather than in the rule tables.
type RentDetector struct {
	Ranges []AmountRange `yaml:"ranges"`
}

// AmountRange is an inclusive amount window in major currency units.
type AmountRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// InsightsConfig controls the report's Key Insights section.
type InsightsConfig struct {
	Merchant       string  `yaml:"merchant"`        // tracked delivery merchant
	NotablePercent float64 `yaml:"notable_percent"` // category share threshold
}

// RentRanges converts the configured windows into rule-table ranges.
func (c *Config) RentRanges() []rules.AmountRange {
	ranges := make([]rules.AmountRange, 0, len(c.RentDetector.Ranges))
	for _, r := range c.RentDetector.Ranges {
		ranges = append(ranges, rules.AmountRange{
			Min: decimal.NewFromFloat(r.Min),
			Max: decimal.NewFromFloat(r.Max),
		})
	}
	return ranges
}

// Load reads a shekel.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads path if it exists, falling back to Default when the
// file is absent.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration matching the historical behavior of the
// pipeline.
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Workbook: "out.xlsx",
			Report:   "expense_report.md",
			CSV:      "actual.csv",
		},
		Overrides: []Override{
			{Payees: []string{"BIT", "PAYBOX"}, Category: "תשלומים"},
		},
		RentDetector: RentDetector{
			Ranges: []AmountRange{
				{Min: 2900, Max: 3100},
				{Min: 800, Max: 900},
			},
		},
		Insights: InsightsConfig{
			Merchant:       "Wolt",
			NotablePercent: 15.0,
		},
	}
}
