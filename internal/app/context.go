package app

import (
	"fmt"

	"github.com/seacliff-health/vitals/internal/config"
	"github.com/seacliff-health/vitals/internal/score"
	"github.com/seacliff-health/vitals/internal/store"
)

// loadConfig loads the configuration honoring the persistent --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveUser returns the user readings belong to: the --user flag when set,
// otherwise the configured default.
func resolveUser(cfg *config.Config) string {
	if flagUser != "" {
		return flagUser
	}
	return cfg.User
}

// resolveRange validates a range string, falling back to the configured
// default when empty.
func resolveRange(s string, cfg *config.Config) (score.TimeRange, error) {
	if s == "" {
		s = cfg.Range
	}
	rng := score.TimeRange(s)
	if !rng.Valid() {
		return "", fmt.Errorf("invalid range %q (want week, month, or 3months)", s)
	}
	return rng, nil
}

// openStore opens the configured SQLite database.
func openStore(cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}
