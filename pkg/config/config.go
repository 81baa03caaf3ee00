// Package config provides configuration for ledgerize. Values come
// from environment variables and an optional .env file; every path has
// a fixed default so the command surface stays flag-free.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shunichi-ikebuchi/ledgerize/pkg/pathutil"
)

// Defaults for the persistence targets. They can be overridden through
// the environment, which keeps the store paths injectable without
// widening the command surface.
const (
	DefaultRulesFile    = "rules.json"
	DefaultAccountsFile = "accounts.yaml"
	DefaultOutputFile   = "ledger.txt"
	DefaultDBPath       = ".ledgerize/history.db"
)

// Config represents the application configuration.
type Config struct {
	// RulesFile is the persisted categorization rule store.
	RulesFile string
	// AccountsFile is the optional account alias mapping.
	AccountsFile string
	// OutputFile is the default ledger output path, used when the
	// command line does not supply one.
	OutputFile string
	// DBPath is the SQLite run-history database.
	DBPath string
	Debug  bool
}

// Load loads configuration from environment variables. It loads a
// .env file from the current directory if present; a custom .env path
// can be given instead.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Missing .env in the working directory is fine.
		_ = godotenv.Load()
	}

	cfg := &Config{
		RulesFile:    getEnvOrDefault("LEDGERIZE_RULES_FILE", DefaultRulesFile),
		AccountsFile: getEnvOrDefault("LEDGERIZE_ACCOUNTS_FILE", DefaultAccountsFile),
		OutputFile:   getEnvOrDefault("LEDGERIZE_OUTPUT_FILE", DefaultOutputFile),
		DBPath:       getEnvOrDefault("LEDGERIZE_DB_PATH", DefaultDBPath),
		Debug:        os.Getenv("DEBUG") == "true",
	}

	var err error
	if cfg.RulesFile, err = pathutil.ExpandHome(cfg.RulesFile); err != nil {
		return nil, err
	}
	if cfg.AccountsFile, err = pathutil.ExpandHome(cfg.AccountsFile); err != nil {
		return nil, err
	}
	if cfg.OutputFile, err = pathutil.ExpandHome(cfg.OutputFile); err != nil {
		return nil, err
	}
	if cfg.DBPath, err = pathutil.ExpandHome(cfg.DBPath); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of the environment variable or a
// default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
