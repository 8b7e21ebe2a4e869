// Package config provides configuration loading and defaults for bashstats.
package config

// DefaultDataDir is the default location for bashstats data.
const DefaultDataDir = "~/.bashstats"

// DefaultConfigDir is the default location for bashstats configuration.
const DefaultConfigDir = "~/.config/bashstats"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "bashstats.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultDashboardPort is the local port the dashboard server listens on.
const DefaultDashboardPort = 17900

// DefaultDashboardHost binds the dashboard to loopback only.
const DefaultDashboardHost = "127.0.0.1"

// DefaultAgent is assumed when hook payloads carry no agent identity.
const DefaultAgent = "claude-code"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultNotify controls whether newly unlocked badges are announced after
// hook handling.
const DefaultNotify = true
