package framelog

import (
	"os"
	"strconv"
	"strings"
)

// Level is a numeric message severity. A logger only queues messages from
// channels whose level is at or above its threshold.
type Level int

// Severities of the five default channels. Custom channels may use any value;
// the gaps are intentional so callers can slot channels between the defaults.
const (
	DebugLevel    Level = 0
	InfoLevel     Level = 25
	WarningLevel  Level = 50
	ErrorLevel    Level = 75
	CriticalLevel Level = 100
)

// ParseLevel converts a textual level into a Level value. It accepts the
// default channel names ("debug", "info", "warning"/"warn", "error",
// "critical"/"crit", case insensitive) as well as bare integers.
func ParseLevel(value string) (Level, bool) {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarningLevel, true
	case "error":
		return ErrorLevel, true
	case "crit", "critical":
		return CriticalLevel, true
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Level(n), true
	}
	return DebugLevel, false
}

// LevelString returns the canonical name for the default levels and the
// decimal representation for everything else.
func LevelString(level Level) string {
	switch level {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return strconv.Itoa(int(level))
	}
}

// LevelFromEnv looks up key in the environment and parses it into a Level.
func LevelFromEnv(key string) (Level, bool) {
	if key == "" {
		return DebugLevel, false
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return DebugLevel, false
	}
	return ParseLevel(value)
}
