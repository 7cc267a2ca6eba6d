package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const serviceName = "lottery-engine"

type Options struct {
	Pretty bool
	Level  string
	// Out defaults to stdout
	Out io.Writer
}

// New builds the process logger. JSON output is tagged with the service name;
// console output carries the caller instead.
func New(opts Options) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.Pretty {
		console := zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05.000"}
		return zerolog.New(console).Level(level).With().Timestamp().Caller().Logger(), nil
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", serviceName).Logger(), nil
}

// Component tags every entry with the subsystem that wrote it
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
