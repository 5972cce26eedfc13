// Package ansi provides the escape sequences and style profiles used by
// framelog's logging channels. A Style combines one color representation
// (a truecolor RGB triple or a classic SGR palette code) with a fixed set of
// modifier flags and caches the combined prefix once, so rendering a message
// is a single string concatenation. Styles group into a Palette; see the
// palette catalog for the built-in themes.
package ansi

import (
	"strconv"
	"strings"
)

// Reset is the universal escape code that clears all terminal styling. Every
// rendered string ends with it.
const Reset = "\x1b[0m"

// Classic SGR foreground palette codes, for shells without truecolor support.
const (
	Black  = 30
	Red    = 31
	Green  = 32
	Yellow = 33
	Blue   = 34
	Purple = 35
	Teal   = 36
	White  = 37
)

// Mod is a bitset of text modifiers applied on top of a Style's color.
type Mod uint8

// Modifier flags. Their SGR fragments are emitted in declaration order.
const (
	Bold Mod = 1 << iota
	Italic
	Underline
	Blink
	Strikethrough
	Invert
)

// sgr returns the modifier fragment of an escape sequence, e.g. ";1;3" for
// Bold|Italic. Empty when no modifiers are set.
func (m Mod) sgr() string {
	if m == 0 {
		return ""
	}
	var b strings.Builder
	if m&Bold != 0 {
		b.WriteString(";1")
	}
	if m&Italic != 0 {
		b.WriteString(";3")
	}
	if m&Underline != 0 {
		b.WriteString(";4")
	}
	if m&Blink != 0 {
		b.WriteString(";5")
	}
	if m&Strikethrough != 0 {
		b.WriteString(";9")
	}
	if m&Invert != 0 {
		b.WriteString(";7")
	}
	return b.String()
}

type colorKind uint8

const (
	colorNone colorKind = iota
	colorRGB
	colorCode
)

// Color selects a foreground color. Construct with RGB or Code; the zero
// value renders the neutral reset color.
type Color struct {
	r, g, b byte
	code    int
	kind    colorKind
}

// RGB returns a truecolor Color. Only certain shells support truecolor; use
// Code with one of the classic palette constants when yours does not.
func RGB(r, g, b byte) Color {
	return Color{r: r, g: g, b: b, kind: colorRGB}
}

// Code returns a Color using a classic SGR palette code such as Red or Teal.
func Code(code int) Color {
	return Color{code: code, kind: colorCode}
}

// sequence returns the color introducer without the trailing "m", so modifier
// fragments can be appended before the sequence is terminated.
func (c Color) sequence() string {
	switch c.kind {
	case colorRGB:
		return "\x1b[38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
	case colorCode:
		return "\x1b[" + strconv.Itoa(c.code)
	default:
		return "\x1b[0"
	}
}

// Style is a reusable text style: one color plus a fixed modifier set. The
// full escape prefix is computed once at construction (and again on Recolor),
// keeping Render cheap enough for per-frame logging.
//
// Recolor is the only mutating operation. It is not synchronized; callers
// that restyle a live channel from another goroutine need their own locking.
type Style struct {
	color  Color
	mods   Mod
	prefix string
}

// NewStyle builds a Style from a color and a modifier set. Modifiers are
// fixed for the lifetime of the Style; use RenderOnce for one-off deviations.
func NewStyle(color Color, mods Mod) *Style {
	s := &Style{color: color, mods: mods}
	s.rebuild()
	return s
}

func (s *Style) rebuild() {
	s.prefix = s.color.sequence() + s.mods.sgr() + "m"
}

// Recolor replaces the color portion of the cached prefix. Modifiers are
// untouched. Strings rendered before the call keep their old color.
func (s *Style) Recolor(color Color) {
	s.color = color
	s.rebuild()
}

// Render joins parts with single spaces and wraps them in the cached
// color+modifier prefix and the universal reset suffix.
func (s *Style) Render(parts ...string) string {
	return s.RenderJoin(" ", parts...)
}

// RenderJoin is Render with an explicit separator.
func (s *Style) RenderJoin(sep string, parts ...string) string {
	return s.prefix + strings.Join(parts, sep) + Reset
}

// RenderPlain renders with the color only, leaving the Style's modifiers off.
func (s *Style) RenderPlain(parts ...string) string {
	return s.RenderPlainJoin(" ", parts...)
}

// RenderPlainJoin is RenderPlain with an explicit separator.
func (s *Style) RenderPlainJoin(sep string, parts ...string) string {
	return s.color.sequence() + "m" + strings.Join(parts, sep) + Reset
}

// RenderOnce renders text with the current color and a fresh modifier set,
// ignoring the cached prefix. The modifier fragment is recomputed on every
// call, so this is for occasional one-off styling, not steady-state logging.
func (s *Style) RenderOnce(text string, mods Mod) string {
	return s.color.sequence() + mods.sgr() + "m" + text + Reset
}
