package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// EnvVarLogFormat selects the handler: "text" or "json" (default).
	EnvVarLogFormat = "LOG_FORMAT"
)

// Options configures a structured logger.
type Options struct {
	// Module is the name of the module/application using the logger.
	Module string

	// Version of the module/application (e.g., "v1.0.0").
	Version string

	// Level is the log level as a string (e.g., "debug", "info", "warn", "error").
	Level string

	// Format selects the handler, "text" or "json". Anything else means json.
	Format string
}

// OptionsFromEnv returns logger options with level and format taken from
// the LOG_LEVEL and LOG_FORMAT environment variables.
// Parameters:
//   - module: The name of the module/application using the logger.
//   - version: The version of the module/application (e.g., "v1.0.0").
//
// Returns:
//   - Options ready to be passed to New.
func OptionsFromEnv(module, version string) Options {
	return Options{
		Module:  module,
		Version: version,
		Level:   os.Getenv(EnvVarLogLevel),
		Format:  os.Getenv(EnvVarLogFormat),
	}
}

// New creates a new structured logger writing to w.
// Defined module name and version are included in the logger's context.
// AddSource is enabled for debug level logging only.
// Parameters:
//   - w: The destination of the log records, os.Stderr for the default logger.
//   - opts: Module, version, level and format of the logger.
//
// Returns:
//   - *slog.Logger: A pointer to the configured slog.Logger instance.
func New(w io.Writer, opts Options) *slog.Logger {
	lev := ParseLogLevel(opts.Level)
	hopts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "text") {
		h = slog.NewTextHandler(w, hopts)
	} else {
		h = slog.NewJSONHandler(w, hopts)
	}

	return slog.New(h).With("module", opts.Module, "version", opts.Version)
}

// SetDefaultLogger initializes the structured logger with the
// appropriate log level and sets it as the default logger.
// Defined module name and version are included in the logger's context.
// Parameters:
//   - module: The name of the module/application using the logger.
//   - version: The version of the module/application (e.g., "v1.0.0").
//
// Derives log level and format from the LOG_LEVEL and LOG_FORMAT environment variables.
func SetDefaultLogger(module, version string) {
	slog.SetDefault(New(os.Stderr, OptionsFromEnv(module, version)))
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Parameters:
//   - level: The log level as a string (e.g., "debug", "info", "warn", "error").
//
// Returns:
//   - slog.Level corresponding to the input string. Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
