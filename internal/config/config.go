// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or set by
// command line options, mirroring the layered setup pattern of the
// engine this one is modeled on.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/reversigo/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the
	// working directory unless overridden by a command line flag).
	ConfFile = "./config.toml"

	// LogLevel is the standard progress log level; overridable by the
	// command line (the config file only populates Settings).
	LogLevel = 5

	// SearchLogLevel is the search-trace log level.
	SearchLogLevel = 5

	// TestLogLevel is the log level used by tests.
	TestLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file, if present, and falls back to
// the defaults already populated on searchConfiguration/evalConfiguration
// for anything the file omits. Safe to call more than once; only the
// first call has effect.
func Setup() {
	if initialized {
		return
	}

	Settings.Search = defaultSearchConfiguration()
	Settings.Eval = defaultEvalConfiguration()

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("Config file not found, using defaults. (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file could not be parsed, using defaults. (", err, ")")
	}

	initialized = true
}
