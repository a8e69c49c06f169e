package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme carries the cosmetic defaults applied to every panel: background
// and plot-area fills, text and grid colors, and the palette that event and
// state series draw from (cycled when the palette runs out).
type Theme struct {
	Name       string
	Background drawing.Color
	Canvas     drawing.Color
	Text       drawing.Color
	Grid       drawing.Color
	Palette    []drawing.Color
}

// defaultPalette matches the hue ordering survival plots conventionally use.
var defaultPalette = []drawing.Color{
	{R: 0xe4, G: 0x1a, B: 0x1c, A: 0xff},
	{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff},
	{R: 0x4d, G: 0xaf, B: 0x4a, A: 0xff},
	{R: 0x98, G: 0x4e, B: 0xa3, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x00, A: 0xff},
	{R: 0xa6, G: 0x56, B: 0x28, A: 0xff},
}

// DefaultTheme is a white-background theme with a light grid.
func DefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Canvas:     drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Text:       drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Grid:       drawing.Color{R: 0xe2, G: 0xe2, B: 0xe2, A: 0xff},
		Palette:    defaultPalette,
	}
}

// GrayTheme shades the plot area, leaving the surround white.
func GrayTheme() Theme {
	t := DefaultTheme()
	t.Name = "gray"
	t.Canvas = drawing.Color{R: 0xeb, G: 0xeb, B: 0xeb, A: 0xff}
	t.Grid = drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	return t
}

// DarkTheme inverts for dark UIs (the viewer default).
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: drawing.Color{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
		Canvas:     drawing.Color{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff},
		Text:       drawing.Color{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Grid:       drawing.Color{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff},
		Palette:    defaultPalette,
	}
}

// ThemeByName resolves a CLI/UI theme name; unknown names fall back to the
// default theme with ok=false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), true
	case "gray", "grey":
		return GrayTheme(), true
	case "dark":
		return DarkTheme(), true
	}
	return DefaultTheme(), false
}

// color returns the palette entry for index i, cycling past the end.
func (t Theme) color(i int) drawing.Color {
	p := t.Palette
	if len(p) == 0 {
		p = defaultPalette
	}
	return p[i%len(p)]
}
