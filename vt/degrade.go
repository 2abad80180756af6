package vt

import (
	"github.com/lucasb-eyer/go-colorful"
)

// SupportLevel is the color fidelity the host terminal can render.
type SupportLevel int

const (
	LVL_NOCOLOR SupportLevel = iota
	LVL_GRAYSCALE
	LVL_ANSI256
	LVL_TRUECOLOR
)

func (l SupportLevel) String() string {
	switch l {
	case LVL_NOCOLOR:
		return "nocolor"
	case LVL_GRAYSCALE:
		return "grayscale"
	case LVL_ANSI256:
		return "ansi256"
	case LVL_TRUECOLOR:
		return "truecolor"
	}
	return "unknown"
}

// Degrade maps c onto the nearest color a terminal with the given
// support level can render. It never errors: colors already inside
// the level pass through untouched, which also makes a second pass at
// the same level a no-op.
func Degrade(c Color, lvl SupportLevel) Color {
	switch lvl {
	case LVL_TRUECOLOR:
		return c
	case LVL_ANSI256:
		if c.ctype != RGB {
			return c
		}
		return Ansi256Color(nearestAnsi256(c.RGB()))
	case LVL_GRAYSCALE:
		if c.ctype == DEFAULT {
			return c
		}
		// Palette entries route through their RGB rendering so
		// that every kind lands on the ramp the same way.
		r, g, b := c.RGB()
		return Ansi256Color(232 + grayRampIndex(r, g, b))
	}
	// No color support at all: everything visible becomes the
	// terminal's strongest guaranteed color.
	if c.ctype == DEFAULT {
		return c
	}
	return BasicColor(0)
}

// grayRampIndex picks the nearest slot on the 24-step xterm gray ramp
// (palette 232-255, values 8, 18, ... 238) for the average channel
// intensity. All grayscale conversion funnels through here so equal
// inputs always land on the same gray.
func grayRampIndex(r, g, b uint8) uint8 {
	avg := (int(r) + int(g) + int(b)) / 3
	if avg > 238 {
		return 23
	}
	if avg < 3 {
		return 0
	}
	return uint8((avg - 3) / 10)
}

// nearestAnsi256 quantizes an RGB color onto the 256 palette. The
// channels snap onto the 6x6x6 cube, then a perceptual distance picks
// between that candidate and the closest gray-ramp slot.
func nearestAnsi256(r, g, b uint8) uint8 {
	ir, ig, ib := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	ci := uint8(16 + 36*ir + 6*ig + ib)
	cr, cg, cb := cubeLevels[ir], cubeLevels[ig], cubeLevels[ib]

	gi := grayRampIndex(r, g, b)
	gv := uint8(8 + 10*int(gi))

	want := colorfulRGB(r, g, b)
	cubeDist := want.DistanceHSLuv(colorfulRGB(cr, cg, cb))
	grayDist := want.DistanceHSLuv(colorfulRGB(gv, gv, gv))
	if cubeDist <= grayDist {
		return ci
	}
	return 232 + gi
}

// cubeIndex maps a channel value onto 0-5. The breakpoints are the
// midpoints between the cube levels.
func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (int(v) - 35) / 40
}

func colorfulRGB(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}
