package framelog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"pkt.systems/framelog/ansi"
)

// LoggerFromEnvOption customizes LoggerFromEnv behavior.
type LoggerFromEnvOption func(*loggerFromEnvConfig)

type loggerFromEnvConfig struct {
	prefix  string
	options Options
	writer  io.Writer
}

// WithEnvPrefix overrides the environment variable prefix used by
// LoggerFromEnv.
func WithEnvPrefix(prefix string) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds LoggerFromEnv with explicit Options values.
func WithEnvOptions(opts Options) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvWriter seeds LoggerFromEnv with a default output writer.
func WithEnvWriter(w io.Writer) LoggerFromEnvOption {
	return func(cfg *loggerFromEnvConfig) {
		cfg.writer = w
	}
}

// LoggerFromEnv builds a logger from environment variables, allowing optional
// seeded options and writers. Environment values override supplied options.
//
// Recognised variables are: {prefix}LEVEL, TIME_FORMAT, UTC, NO_COLOR,
// FORCE_COLOR, PALETTE, SUPPRESS_WARNINGS, SUPPRESS_ERRORS, and OUTPUT.
// OUTPUT accepts stdout, stderr, default, or a file path; file outputs are
// opened append-only, owned by the logger, and closed by Logger.Close.
// The default prefix is "FRAMELOG_".
func LoggerFromEnv(opts ...LoggerFromEnvOption) *Logger {
	cfg := loggerFromEnvConfig{prefix: "FRAMELOG_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolvedOpts := cfg.options
	baseWriter := cfg.writer
	if baseWriter == nil {
		baseWriter = os.Stdout
	}
	prefix := cfg.prefix
	if value, ok := lookupEnv(prefix, "LEVEL"); ok {
		if level, ok := ParseLevel(value); ok {
			resolvedOpts.Threshold = level
		}
	}
	if value, ok := lookupEnv(prefix, "TIME_FORMAT"); ok {
		if parsed := strings.TrimSpace(value); parsed != "" {
			resolvedOpts.TimeFormat = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "UTC"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.UTC = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "NO_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.NoColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "FORCE_COLOR"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.ForceColor = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "PALETTE"); ok {
		resolvedOpts.Palette = ansi.PaletteByName(value)
	}
	if value, ok := lookupEnv(prefix, "SUPPRESS_WARNINGS"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.SuppressSelfWarnings = parsed
		}
	}
	if value, ok := lookupEnv(prefix, "SUPPRESS_ERRORS"); ok {
		if parsed, ok := parseEnvBool(value); ok {
			resolvedOpts.SuppressSelfErrors = parsed
		}
	}
	outputValue, hasOutput := lookupEnv(prefix, "OUTPUT")
	writer := baseWriter
	var outputErr error
	if hasOutput {
		if resolved, err := writerFromEnvOutput(outputValue, baseWriter); err != nil {
			outputErr = err
		} else {
			writer = resolved
		}
	}
	logger := NewWithOptions(writer, resolvedOpts)
	if outputErr != nil {
		logger.mu.Lock()
		logger.selfErrorLocked("LOGGER ERROR::" + outputErr.Error())
		logger.mu.Unlock()
	}
	return logger
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func writerFromEnvOutput(value string, base io.Writer) (io.Writer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return base, nil
	}
	switch strings.ToLower(trimmed) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "default":
		return base, nil
	}
	file, err := os.OpenFile(trimmed, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return base, fmt.Errorf("open log output %q: %w", trimmed, err)
	}
	return newOwnedOutput(file, file), nil
}
