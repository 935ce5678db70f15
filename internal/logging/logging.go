// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls logger initialization.
type Config struct {
	Verbose bool
	Pretty  bool
}

// Init sets up the global logger. Verbose enables debug-level output; Pretty
// switches to the human-readable console writer for interactive use.
func Init(conf Config) {
	if conf.Pretty {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if conf.Verbose {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}

// ForRole returns a logger tagged with the agent role name.
func ForRole(role string) zerolog.Logger {
	return log.Logger.With().Str("role", role).Logger()
}
