package ansi_test

import (
	"sort"
	"testing"

	"pkt.systems/framelog/ansi"
)

func TestPaletteByNameCanonical(t *testing.T) {
	if ansi.PaletteByName("gruvbox") != &ansi.PaletteGruvbox {
		t.Fatalf("expected gruvbox palette")
	}
	if ansi.PaletteByName("synthwave-84") != &ansi.PaletteSynthwave84 {
		t.Fatalf("expected synthwave-84 palette")
	}
}

func TestPaletteByNameNormalization(t *testing.T) {
	cases := []string{
		"Gruvbox",
		"  gruvbox  ",
		"GRUVBOX",
		"palette-gruvbox",
		"doom_gruvbox",
		"Doom Gruvbox",
	}
	for _, name := range cases {
		if ansi.PaletteByName(name) != &ansi.PaletteGruvbox {
			t.Fatalf("name %q did not resolve to gruvbox", name)
		}
	}
}

func TestPaletteByNameAliases(t *testing.T) {
	if ansi.PaletteByName("synthwave84") != &ansi.PaletteSynthwave84 {
		t.Fatalf("alias synthwave84 did not resolve")
	}
	if ansi.PaletteByName("ansi") != &ansi.PaletteClassic {
		t.Fatalf("alias ansi did not resolve to classic")
	}
}

func TestPaletteByNameUnknownFallsBack(t *testing.T) {
	if ansi.PaletteByName("no-such-theme") != &ansi.PaletteDefault {
		t.Fatalf("unknown name should fall back to default")
	}
	if ansi.PaletteByName("") != &ansi.PaletteDefault {
		t.Fatalf("empty name should fall back to default")
	}
}

func TestAvailablePaletteNamesSortedAndComplete(t *testing.T) {
	names := ansi.AvailablePaletteNames()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("palette names not sorted: %v", names)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []string{"default", "classic", "gruvbox", "nord", "dracula", "synthwave-84"} {
		if !seen[want] {
			t.Fatalf("missing palette %q in %v", want, names)
		}
	}
}

func TestPaletteStylesRenderDistinctChannels(t *testing.T) {
	p := ansi.PaletteDefault
	debug := p.Debug.Render("x")
	critical := p.Critical.Render("x")
	if debug == critical {
		t.Fatalf("debug and critical styles should differ, both %q", debug)
	}
}
