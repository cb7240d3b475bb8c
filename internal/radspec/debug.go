package radspec

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var log = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
}

// Log exposes the package logger.
func Log() *zerolog.Logger { return &log }

// SetLogWriter redirects logging (tests, files).
func SetLogWriter(w io.Writer) { log = newLogger(w).Level(log.GetLevel()) }

// SetDebug toggles verbose output; DebugLog is a no-op while it is off.
func SetDebug(on bool) {
	Debug = on
	if on {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	log.Debug().Msgf(format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		log.Debug().Msgf(format, args...)
	})
}
