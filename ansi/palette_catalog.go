package ansi

import (
	"sort"
	"strings"
)

// Palette assigns one Style to each default channel role. Loggers also use
// Warning and Error for their own self-reports, so a custom palette restyles
// those too.
type Palette struct {
	Debug    *Style
	Info     *Style
	Warning  *Style
	Error    *Style
	Critical *Style
}

// PaletteDefault carries the stock channel colors.
var PaletteDefault = Palette{
	Debug:    NewStyle(RGB(33, 192, 232), Italic),
	Info:     NewStyle(RGB(222, 222, 222), 0),
	Warning:  NewStyle(RGB(255, 245, 23), Bold),
	Error:    NewStyle(RGB(241, 25, 44), Bold),
	Critical: NewStyle(RGB(241, 25, 44), Bold|Invert),
}

// PaletteGruvbox approximates the gruvbox dark theme.
var PaletteGruvbox = Palette{
	Debug:    NewStyle(RGB(131, 165, 152), Italic),
	Info:     NewStyle(RGB(235, 219, 178), 0),
	Warning:  NewStyle(RGB(250, 189, 47), Bold),
	Error:    NewStyle(RGB(251, 73, 52), Bold),
	Critical: NewStyle(RGB(251, 73, 52), Bold|Invert),
}

// PaletteNord approximates the nord theme.
var PaletteNord = Palette{
	Debug:    NewStyle(RGB(136, 192, 208), Italic),
	Info:     NewStyle(RGB(216, 222, 233), 0),
	Warning:  NewStyle(RGB(235, 203, 139), Bold),
	Error:    NewStyle(RGB(191, 97, 106), Bold),
	Critical: NewStyle(RGB(191, 97, 106), Bold|Invert),
}

// PaletteDracula approximates the dracula theme.
var PaletteDracula = Palette{
	Debug:    NewStyle(RGB(139, 233, 253), Italic),
	Info:     NewStyle(RGB(248, 248, 242), 0),
	Warning:  NewStyle(RGB(241, 250, 140), Bold),
	Error:    NewStyle(RGB(255, 85, 85), Bold),
	Critical: NewStyle(RGB(255, 85, 85), Bold|Invert),
}

// PaletteSynthwave84 approximates the synthwave '84 theme.
var PaletteSynthwave84 = Palette{
	Debug:    NewStyle(RGB(54, 249, 246), Italic),
	Info:     NewStyle(RGB(255, 255, 255), 0),
	Warning:  NewStyle(RGB(254, 222, 93), Bold),
	Error:    NewStyle(RGB(254, 68, 80), Bold),
	Critical: NewStyle(RGB(254, 68, 80), Bold|Invert),
}

// PaletteClassic sticks to the eight classic SGR codes for shells without
// truecolor support.
var PaletteClassic = Palette{
	Debug:    NewStyle(Code(Teal), Italic),
	Info:     NewStyle(Code(White), 0),
	Warning:  NewStyle(Code(Yellow), Bold),
	Error:    NewStyle(Code(Red), Bold),
	Critical: NewStyle(Code(Red), Bold|Invert),
}

var namedPalettes = map[string]*Palette{
	"default":      &PaletteDefault,
	"classic":      &PaletteClassic,
	"gruvbox":      &PaletteGruvbox,
	"nord":         &PaletteNord,
	"dracula":      &PaletteDracula,
	"synthwave-84": &PaletteSynthwave84,
}

var paletteAliases = map[string]string{
	"synthwave84":  "synthwave-84",
	"doom-gruvbox": "gruvbox",
	"doomgruvbox":  "gruvbox",
	"doom-nord":    "nord",
	"doomnord":     "nord",
	"doom-dracula": "dracula",
	"doomdracula":  "dracula",
	"8color":       "classic",
	"ansi":         "classic",
}

// PaletteByName resolves a built-in palette by its canonical name. Names are
// case-insensitive, tolerate underscores and spaces, and support a few
// compatibility aliases. Unknown names resolve to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// AvailablePaletteNames returns canonical built-in palette names in sorted
// order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
