// Package config provides configuration loading and defaults for vitals.
package config

// DefaultConfigDir is the default location for vitals configuration and data.
const DefaultConfigDir = "~/.config/vitals"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "vitals.db"

// DefaultUser is the user readings are attributed to when no --user flag or
// config entry is present. Single-user installs never need to change it.
const DefaultUser = "default"

// DefaultRange is the lookback window used when none is given.
const DefaultRange = "week"

// DefaultWatchInterval is the watch loop check interval.
const DefaultWatchInterval = "10m"

// DefaultAlerts holds the default watch alert thresholds.
var DefaultAlerts = Alerts{
	ScoreDrop:  5,
	StaleHours: 48,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
