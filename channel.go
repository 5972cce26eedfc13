package framelog

import "pkt.systems/framelog/ansi"

// reservedChannelPrefix marks names that collide with the naming convention
// used for a logger's own internals. Registering such a name works, but the
// logger emits a self-warning first.
const reservedChannelPrefix = "__"

// Channel is a named, leveled logging endpoint. Channels are bound to the
// logger that registered them and are looked up by case-folded name; they are
// descriptors, not transferable state.
type Channel struct {
	name           string
	level          Level
	style          *ansi.Style
	forceImmediate bool
}

// Name returns the channel's display name as registered.
func (c *Channel) Name() string { return c.name }

// Level returns the channel's severity.
func (c *Channel) Level() Level { return c.level }

// Style returns the channel's style profile.
func (c *Channel) Style() *ansi.Style { return c.style }

// ForceImmediate reports whether messages on this channel trigger a
// synchronous stage+flush.
func (c *Channel) ForceImmediate() bool { return c.forceImmediate }

// ChannelConfig describes one channel for Options.Channels and
// LoggerFromEnv seeding.
type ChannelConfig struct {
	Name           string
	Level          Level
	Style          *ansi.Style
	ForceImmediate bool
}

// defaultChannels returns a fresh slice per call so loggers never share
// channel definitions through a package-level list.
func defaultChannels(palette *ansi.Palette) []ChannelConfig {
	return []ChannelConfig{
		{Name: "Debug", Level: DebugLevel, Style: palette.Debug},
		{Name: "Info", Level: InfoLevel, Style: palette.Info},
		{Name: "Warning", Level: WarningLevel, Style: palette.Warning},
		{Name: "Error", Level: ErrorLevel, Style: palette.Error},
		{Name: "Critical", Level: CriticalLevel, Style: palette.Critical, ForceImmediate: true},
	}
}

func resolvePalette(palette *ansi.Palette) *ansi.Palette {
	if palette != nil {
		return palette
	}
	return &ansi.PaletteDefault
}
