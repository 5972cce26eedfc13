// Package framelog provides a buffered, channelized console logger for
// latency-sensitive loops such as game frames. Instead of hitting the
// console on every call, messages accumulate in memory and flush in bulk,
// amortizing write cost across frames.
//
// # Design overview
//
//   - Channels: every message goes through a named channel carrying a
//     severity level, an ansi.Style, and an optional force-immediate flag.
//     The five defaults are Debug(0), Info(25), Warning(50), Error(75), and
//     Critical(100, force-immediate). Register adds or replaces channels at
//     runtime; the name→channel map is the source of truth and the typed
//     methods (Debug, Info, ...) are thin accessors over it.
//   - Two-phase flush: Log appends rendered lines to a queue. Staging moves
//     the queue into a single pending-write buffer; executing writes that
//     buffer in one call and clears it. CyclePrint does one phase per call,
//     so output lags one cycle; Print does both synchronously.
//   - Level gate: a channel below the logger's threshold never queues; the
//     message is dropped permanently at call time.
//   - Styles: ansi.Style caches its full escape prefix at construction, so
//     rendering is one concatenation. Color is auto-disabled when the
//     destination is not a terminal (Options.NoColor / ForceColor override).
//   - Self-reports: the logger's own warnings and errors (reserved channel
//     names, unknown channels, failed flushes) print immediately, bypass the
//     queue, and are individually suppressible. Nothing in this package
//     panics or returns an error from a logging call.
//
// # Usage
//
//	logger := framelog.New(os.Stdout)
//	for running {
//		logger.Debug("pos", fmt.Sprint(x), fmt.Sprint(y))
//		logger.CyclePrint() // once per frame; writes last frame's batch
//	}
//	logger.Print() // final synchronous flush
//
// Custom channels take any style from the ansi package:
//
//	logger.Register("Net", 40, ansi.NewStyle(ansi.RGB(120, 220, 120), ansi.Bold), false)
//	logger.Log("net", "peer connected")
//
// Construction from the environment (FRAMELOG_LEVEL, FRAMELOG_PALETTE,
// FRAMELOG_OUTPUT, ...) is available through LoggerFromEnv. For loops hot
// enough that even timestamp formatting shows up in profiles, pass a
// CachedClock via Options.Clock and Stop it on shutdown.
package framelog
