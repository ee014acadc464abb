// Package logger configures the process-wide zerolog instance.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the shared instance; Init replaces it.
var Logger = log.Logger

// Init sets up the global logger. Level is one of debug/info/warn/error;
// format is "json" or "pretty".
func Init(level, format string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if format == "pretty" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	Logger = zerolog.New(output).Level(parsed).With().Timestamp().Logger()
	log.Logger = Logger
}
