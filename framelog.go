package framelog

import (
	"io"

	"pkt.systems/framelog/ansi"
)

// Options controls how a Logger filters, styles, and times its output.
type Options struct {
	// Threshold is the minimum channel severity that gets queued. Messages
	// below it are dropped permanently. Fixed for the logger's lifetime.
	Threshold Level

	// Channels replaces the five default channels when non-nil. Each entry is
	// registered in order via Register, so reserved-prefix warnings apply.
	Channels []ChannelConfig

	// SuppressSelfWarnings silences the logger's own warning self-reports
	// (for example the reserved-prefix registration warning).
	SuppressSelfWarnings bool

	// SuppressSelfErrors silences the logger's own error self-reports
	// (unknown channel, failed flush write).
	SuppressSelfErrors bool

	// NoColor forces escape codes off regardless of terminal detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits color even when the
	// destination is not a TTY. Useful for tests and forced-color logs.
	ForceColor bool

	// Palette supplies the styles for the default channels and the logger's
	// self-reports. Nil means ansi.PaletteDefault.
	Palette *ansi.Palette

	// Clock overrides timestamp acquisition. Nil installs a SystemClock with
	// TimeFormat and UTC applied. Use a CachedClock in tight frame loops.
	Clock Clock

	// TimeFormat overrides the timestamp layout of the installed clock.
	// Ignored when Clock is set. Defaults to DayDateTimeFormat.
	TimeFormat string

	// UTC renders timestamps of the installed clock in UTC.
	UTC bool
}

// New constructs a Logger writing to w with the default channels, threshold
// zero, and color auto-detected from the destination.
func New(w io.Writer) *Logger {
	return NewWithOptions(w, Options{})
}

// NewWithOptions constructs a Logger with explicit settings.
func NewWithOptions(w io.Writer, opts Options) *Logger {
	if w == nil {
		w = io.Discard
	}
	palette := resolvePalette(opts.Palette)
	clock := opts.Clock
	if clock == nil {
		layout := opts.TimeFormat
		if layout == "" {
			layout = DayDateTimeFormat
		}
		clock = SystemClock(layout, opts.UTC)
	}
	l := &Logger{
		out:              w,
		clock:            clock,
		threshold:        opts.Threshold,
		channels:         make(map[string]*Channel),
		color:            opts.ForceColor || (!opts.NoColor && isTerminal(w)),
		suppressWarnings: opts.SuppressSelfWarnings,
		suppressErrors:   opts.SuppressSelfErrors,
		warnStyle:        palette.Warning,
		errorStyle:       palette.Error,
	}
	channels := opts.Channels
	if channels == nil {
		channels = defaultChannels(palette)
	}
	for _, cfg := range channels {
		l.Register(cfg.Name, cfg.Level, cfg.Style, cfg.ForceImmediate)
	}
	return l
}

// NewWithPalette constructs a Logger with threshold and a built-in or custom
// palette for the default channel set.
func NewWithPalette(w io.Writer, threshold Level, palette *ansi.Palette) *Logger {
	return NewWithOptions(w, Options{Threshold: threshold, Palette: palette})
}
