package framelog

import (
	"log"
	"strings"
)

type channelWriter struct {
	logger  *Logger
	channel string
}

func (w channelWriter) Write(p []byte) (int, error) {
	w.logger.Log(w.channel, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// LogLogger wraps a Logger into a stdlib *log.Logger whose output is queued
// on the Info channel, so third-party code that only speaks log.Logger still
// benefits from batched flushing.
func LogLogger(l *Logger) *log.Logger {
	return LogLoggerChannel(l, "Info")
}

// LogLoggerChannel is LogLogger pinned to the named channel.
func LogLoggerChannel(l *Logger, channel string) *log.Logger {
	return log.New(channelWriter{logger: l, channel: channel}, "", 0)
}
