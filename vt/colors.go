package vt

import (
	"fmt"
	"log/slog"
)

// Color kinds, in ascending fidelity.
const (
	DEFAULT = iota // whatever the host terminal paints by default
	BASIC          // the 16 named ANSI colors, index 0-15
	ANSI256        // the xterm 256-color palette, index 16-255
	RGB            // 24-bit direct color
)

// Color is one terminal color. The zero value is the default
// foreground/background.
type Color struct {
	ctype int
	vals  [3]uint8
}

func DefaultColor() Color {
	return Color{}
}

// BasicColor returns palette entry n of the classic 16. The
// BASIC/ANSI256 split is part of the type's contract, so an index
// above 15 here is a caller bug.
func BasicColor(n uint8) Color {
	if n > 15 {
		panic(fmt.Sprintf("basic color index %d out of range", n))
	}
	return Color{ctype: BASIC, vals: [3]uint8{n, 0, 0}}
}

// Ansi256Color returns palette entry n of the 256. Indices below 16
// name the same colors as the basic palette and normalize to it.
func Ansi256Color(n uint8) Color {
	if n < 16 {
		return BasicColor(n)
	}
	return Color{ctype: ANSI256, vals: [3]uint8{n, 0, 0}}
}

func RGBColor(r, g, b uint8) Color {
	return Color{ctype: RGB, vals: [3]uint8{r, g, b}}
}

func (c Color) Kind() int {
	return c.ctype
}

// Index returns the palette slot for BASIC and ANSI256 colors. It's
// meaningless for the other kinds.
func (c Color) Index() uint8 {
	return c.vals[0]
}

// RGB returns the color as direct RGB. Palette entries translate via
// the stock xterm palette; DEFAULT has no meaningful answer and comes
// back black.
func (c Color) RGB() (uint8, uint8, uint8) {
	switch c.ctype {
	case RGB:
		return c.vals[0], c.vals[1], c.vals[2]
	case BASIC, ANSI256:
		return paletteRGB(c.vals[0])
	}
	return 0, 0, 0
}

func (c Color) String() string {
	switch c.ctype {
	case BASIC:
		return fmt.Sprintf("basic(%d)", c.vals[0])
	case ANSI256:
		return fmt.Sprintf("ansi256(%d)", c.vals[0])
	case RGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.vals[0], c.vals[1], c.vals[2])
	}
	return "default"
}

// The RGB values a stock xterm renders the 16 basic entries as.
var basicPalette = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xc0, 0xc0, 0xc0}, // white
	{0x80, 0x80, 0x80}, // bright black
	{0xff, 0x00, 0x00}, // bright red
	{0x00, 0xff, 0x00}, // bright green
	{0xff, 0xff, 0x00}, // bright yellow
	{0x00, 0x00, 0xff}, // bright blue
	{0xff, 0x00, 0xff}, // bright magenta
	{0x00, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// The six channel levels of the 6x6x6 color cube (indices 16-231).
var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// paletteRGB maps any 256-palette index to the RGB it renders as:
// the basic 16, then the color cube, then the 24-step gray ramp.
func paletteRGB(n uint8) (uint8, uint8, uint8) {
	switch {
	case n < 16:
		p := basicPalette[n]
		return p[0], p[1], p[2]
	case n < 232:
		idx := int(n) - 16
		return cubeLevels[idx/36], cubeLevels[(idx/6)%6], cubeLevels[idx%6]
	default:
		v := uint8(8 + 10*(int(n)-232))
		return v, v, v
	}
}

// colorFromParams handles the extended forms of SGR 38/48. The mode
// selector and its arguments are consumed from params; anything
// malformed leaves the previous color in place.
func colorFromParams(params *parameters, def Color) Color {
	cm, ok := params.consumeItem()
	if !ok {
		slog.Debug("missing color mode selector, returning default")
		return def
	}

	switch cm {
	case 2:
		var rgb [3]int
		for i := range rgb {
			if rgb[i], ok = params.consumeItem(); !ok {
				slog.Debug("short rgb color spec, returning default")
				return def
			}
		}
		return RGBColor(clampChan(rgb[0]), clampChan(rgb[1]), clampChan(rgb[2]))
	case 5:
		n, ok := params.consumeItem()
		if !ok {
			slog.Debug("missing palette index, returning default")
			return def
		}
		return Ansi256Color(clampChan(n))
	}

	slog.Debug("invalid color mode selector, returning default", "selector", cm)
	return def
}

func clampChan(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
