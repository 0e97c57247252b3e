package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ActualConfig holds the remote budget-server settings for the push stage.
// All three values are required.
type ActualConfig struct {
	// ServerURL is the base URL of the Actual API server.
	// Environment variable: ACTUAL_SERVER_URL
	ServerURL string `koanf:"ACTUAL_SERVER_URL"`

	// Password is the API key presented on every request.
	// Environment variable: ACTUAL_PASSWORD
	Password string `koanf:"ACTUAL_PASSWORD"`

	// BudgetID is the sync ID of the budget file to import into.
	// Environment variable: ACTUAL_BUDGET_ID
	BudgetID string `koanf:"ACTUAL_BUDGET_ID"`
}

// LoadActual reads the push-stage configuration from the process
// environment. A missing variable is a fatal pre-condition: the returned
// error names every absent variable and no partial config is returned.
func LoadActual() (*ActualConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg ActualConfig
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	var missing []string
	if cfg.ServerURL == "" {
		missing = append(missing, "ACTUAL_SERVER_URL")
	}
	if cfg.Password == "" {
		missing = append(missing, "ACTUAL_PASSWORD")
	}
	if cfg.BudgetID == "" {
		missing = append(missing, "ACTUAL_BUDGET_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return &cfg, nil
}
