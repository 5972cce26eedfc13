package framelog

import (
	"io"
	"strings"
	"sync"

	"pkt.systems/framelog/ansi"
)

// Logger accumulates rendered log messages in memory and flushes them in
// bulk, so a tight frame loop pays for console I/O once per flush instead of
// once per message.
//
// Messages move through two stages: Log appends to the queue, staging moves
// the queue into a single pending-write buffer, and executing writes that
// buffer to the destination in one call. CyclePrint advances one stage per
// call; Print does both synchronously.
//
// All methods are safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	clock  Clock
	queue  []string
	staged string

	threshold Level
	channels  map[string]*Channel
	color     bool

	suppressWarnings bool
	suppressErrors   bool
	warnStyle        *ansi.Style
	errorStyle       *ansi.Style
}

// Register adds a channel under the case-folded name, replacing any existing
// channel with the same name. A nil style gets a neutral, unmodified style.
// Names starting with the reserved "__" prefix emit one self-warning but are
// still registered; the collision risk with logger internals is the caller's.
func (l *Logger) Register(name string, level Level, style *ansi.Style, forceImmediate bool) *Channel {
	if strings.HasPrefix(name, reservedChannelPrefix) {
		l.selfWarn("LOGGER WARNING::DYNAMIC CHANNELS ARE NOT PRIVATE, THIS CHANNEL MAY BEHAVE DIFFERENTLY THAN EXPECTED.")
	}
	if style == nil {
		style = ansi.NewStyle(ansi.Color{}, 0)
	}
	ch := &Channel{
		name:           name,
		level:          level,
		style:          style,
		forceImmediate: forceImmediate,
	}
	l.mu.Lock()
	l.channels[strings.ToLower(name)] = ch
	l.mu.Unlock()
	return ch
}

// Lookup returns the channel registered under the case-folded name.
func (l *Logger) Lookup(name string) (*Channel, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.channels[strings.ToLower(name)]
	return ch, ok
}

// Log queues a message on the named channel, joining parts with spaces.
// Below-threshold messages are dropped permanently and silently. An unknown
// channel produces a self-error report and is otherwise a no-op. Channels
// registered with forceImmediate flush synchronously before Log returns.
func (l *Logger) Log(name string, parts ...string) {
	l.LogJoin(name, " ", parts...)
}

// LogJoin is Log with an explicit separator between the metadata prefix and
// the message parts.
func (l *Logger) LogJoin(name, sep string, parts ...string) {
	l.mu.Lock()
	ch, ok := l.channels[strings.ToLower(name)]
	if !ok {
		l.selfErrorLocked("LOGGER ERROR::NO CHANNEL REGISTERED AS \"" + name + "\"")
		l.mu.Unlock()
		return
	}
	if ch.level < l.threshold {
		l.mu.Unlock()
		return
	}
	meta := "[ " + l.clock.Now() + " - " + ch.name + " ]:"
	composed := append([]string{meta}, parts...)
	var line string
	if l.color {
		line = ch.style.RenderJoin(sep, composed...)
	} else {
		line = strings.Join(composed, sep)
	}
	l.queue = append(l.queue, line)
	if ch.forceImmediate {
		l.printLocked()
	}
	l.mu.Unlock()
}

// Debug logs on the "Debug" channel (level 0 by default).
func (l *Logger) Debug(parts ...string) { l.Log("Debug", parts...) }

// Info logs on the "Info" channel (level 25 by default).
func (l *Logger) Info(parts ...string) { l.Log("Info", parts...) }

// Warning logs on the "Warning" channel (level 50 by default).
func (l *Logger) Warning(parts ...string) { l.Log("Warning", parts...) }

// Error logs on the "Error" channel (level 75 by default).
func (l *Logger) Error(parts ...string) { l.Log("Error", parts...) }

// Critical logs on the "Critical" channel (level 100, force-immediate by
// default), so the message normally reaches the destination before Critical
// returns.
func (l *Logger) Critical(parts ...string) { l.Log("Critical", parts...) }

// CyclePrint advances the logger one stage. If a previous cycle left content
// staged, it is written out; otherwise the queue is staged without I/O.
// Calling this once per frame makes output lag one cycle behind, amortizing
// write cost across frames.
func (l *Logger) CyclePrint() {
	l.mu.Lock()
	if l.staged != "" {
		l.executeLocked()
	} else {
		l.stageLocked()
	}
	l.mu.Unlock()
}

// Print stages the queue and writes everything pending in one synchronous
// flush. Queue and staged buffer are both empty afterwards.
func (l *Logger) Print() {
	l.mu.Lock()
	l.printLocked()
	l.mu.Unlock()
}

// Pending returns the number of queued, not yet staged messages.
func (l *Logger) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Close performs a final Print and closes the destination when the logger
// owns it (outputs opened by LoggerFromEnv). os.Stdout and os.Stderr are
// never closed.
func (l *Logger) Close() error {
	l.mu.Lock()
	l.printLocked()
	out := l.out
	l.mu.Unlock()
	return closeOutput(out)
}

func (l *Logger) printLocked() {
	l.stageLocked()
	l.executeLocked()
}

// stageLocked moves the queue into the staged buffer, newline-joined and
// appended after any content an earlier stage left behind.
func (l *Logger) stageLocked() {
	if len(l.queue) == 0 {
		return
	}
	if l.staged != "" {
		l.staged += "\n"
	}
	l.staged += strings.Join(l.queue, "\n")
	l.queue = l.queue[:0]
}

// executeLocked writes the staged buffer to the destination in a single
// write and clears it. A write failure becomes a self-error report; flushing
// is best effort and never returns an error to the logging caller.
func (l *Logger) executeLocked() {
	if l.staged == "" {
		return
	}
	payload := l.staged
	l.staged = ""
	if _, err := io.WriteString(l.out, payload+"\n"); err != nil {
		l.selfErrorLocked("LOGGER ERROR::FLUSH FAILED: " + err.Error())
	}
}

func (l *Logger) selfWarn(text string) {
	l.mu.Lock()
	l.selfWarnLocked(text)
	l.mu.Unlock()
}

func (l *Logger) selfWarnLocked(text string) {
	if l.suppressWarnings {
		return
	}
	l.reportLocked(l.warnStyle, text)
}

func (l *Logger) selfErrorLocked(text string) {
	if l.suppressErrors {
		return
	}
	l.reportLocked(l.errorStyle, text)
}

// reportLocked writes a self-report straight to the destination, bypassing
// the queue so misconfiguration is visible even if the caller never flushes.
func (l *Logger) reportLocked(style *ansi.Style, text string) {
	line := text
	if l.color && style != nil {
		line = style.Render(text)
	}
	_, _ = io.WriteString(l.out, line+"\n")
}
