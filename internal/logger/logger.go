package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Create a human readable logger writing to 'w' at given level
// (trace, debug, info, warn, error, ...)
func New(level string, w io.Writer, noColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: %w", err)
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}
