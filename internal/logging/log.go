// Package logging is a thin helper over "github.com/op/go-logging" that
// preconfigures the backends and formatters used across the engine, so
// call sites need only one line to get a ready logger.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/reversigo/internal/config"
)

// Out is a German-locale printer used for thousands-grouped numbers in
// log lines (node counts, nps, etc.), matching the formatting idiom
// used throughout this engine's ancestry.
var Out = message.NewPrinter(language.German)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard progress logger, preconfigured with an
// os.Stdout backend at config.LogLevel.
func GetLog() *logging.Logger {
	return withBackend(standardLog, os.Stdout, standardFormat, config.LogLevel)
}

// GetSearchLog returns the search-trace logger, preconfigured at
// config.SearchLogLevel so per-node decider tracing can be silenced
// independently of standard progress logging.
func GetSearchLog() *logging.Logger {
	return withBackend(searchLog, os.Stdout, standardFormat, config.SearchLogLevel)
}

// GetTestLog returns the logger used by tests, at config.TestLogLevel.
func GetTestLog() *logging.Logger {
	return withBackend(testLog, os.Stdout, standardFormat, config.TestLogLevel)
}

func withBackend(logger *logging.Logger, w *os.File, format logging.Formatter, level int) *logging.Logger {
	backend := logging.NewLogBackend(w, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	logger.SetBackend(leveled)
	return logger
}
