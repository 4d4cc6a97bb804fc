package kotodama

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package logger, silent by default so the library never writes
// to a caller's streams unasked.
var Logger = zerolog.Nop()

// EnableConsoleLogging switches the package logger to a console writer on
// stderr. Stdout is left untouched since it may carry protocol traffic.
func EnableConsoleLogging(level zerolog.Level) {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
}
