package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level vitals configuration. Scoring thresholds and
// weights are deliberately absent: the ladders are clinical constants, not
// configuration.
type Config struct {
	DataDir       string `mapstructure:"data_dir"`
	User          string `mapstructure:"user"`
	Range         string `mapstructure:"range"`
	WatchInterval string `mapstructure:"watch_interval"`
	Alerts        Alerts `mapstructure:"alerts"`
	Output        Output `mapstructure:"output"`
}

// Alerts defines watch alert thresholds.
type Alerts struct {
	ScoreDrop  int `mapstructure:"score_drop"`
	StaleHours int `mapstructure:"stale_hours"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("data_dir", DefaultConfigDir)
	v.SetDefault("user", DefaultUser)
	v.SetDefault("range", DefaultRange)
	v.SetDefault("watch_interval", DefaultWatchInterval)
	v.SetDefault("alerts.score_drop", DefaultAlerts.ScoreDrop)
	v.SetDefault("alerts.stale_hours", DefaultAlerts.StaleHours)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded default configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
