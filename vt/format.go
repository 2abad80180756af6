package vt

import (
	"fmt"
	"log/slog"
	"strings"
)

var defFmt = Format{}

// Attribute bits.
const (
	BOLD       = 1 << 0
	FAINT      = 1 << 1
	ITALIC     = 1 << 2
	BOLD_FAINT = 1 << 3
	UNDERLINE  = 1 << 4
	BLINK      = 1 << 5
	REVERSED   = 1 << 6
	INVISIBLE  = 1 << 7
	STRIKEOUT  = 1 << 8
)

// Format is the pen: the colors and attributes the next printed cell
// will take. The zero value is the terminal default.
type Format struct {
	fg, bg Color
	attrs  uint16
}

func (f Format) Fg() Color {
	return f.fg
}

func (f Format) Bg() Color {
	return f.bg
}

func (f Format) Has(attr uint16) bool {
	return f.attrs&attr != 0
}

func (f *Format) setAttr(attr uint16, on bool) {
	if on {
		f.attrs |= attr
	} else {
		f.attrs &^= attr
	}
}

func (f Format) String() string {
	attrs := []string{}
	for _, a := range []struct {
		bit  uint16
		name string
	}{
		{BOLD, "bold"},
		{FAINT, "faint"},
		{ITALIC, "italic"},
		{UNDERLINE, "underline"},
		{BLINK, "blink"},
		{REVERSED, "reversed"},
		{INVISIBLE, "invisible"},
		{STRIKEOUT, "strikeout"},
	} {
		if f.Has(a.bit) {
			attrs = append(attrs, a.name)
		}
	}
	return fmt.Sprintf("fg: %s, bg: %s, attrs: [%s]", f.fg, f.bg, strings.Join(attrs, " "))
}

// applyFormat folds a run of SGR parameters into curF, left to right.
// Parameters we don't implement are logged and skipped, never
// errored; a reset anywhere in the run clears everything set before
// it.
func applyFormat(curF Format, params *parameters) Format {
	// A bare CSI m is equivalent to CSI 0 m.
	if params.numItems() == 0 {
		return defFmt
	}

	f := curF
	for {
		item, ok := params.consumeItem()
		if !ok {
			break
		}

		switch {
		case item == RESET:
			f = defFmt
		case item == INTENSITY_BOLD:
			if f.Has(FAINT) {
				f.setAttr(BOLD_FAINT, true)
			}
			f.setAttr(BOLD, true)
		case item == INTENSITY_FAINT:
			if f.Has(BOLD) {
				f.setAttr(BOLD_FAINT, true)
			}
			f.setAttr(FAINT, true)
		case item == INTENSITY_OFF:
			f.setAttr(BOLD|FAINT|BOLD_FAINT, false)
		case item == ITALIC_ON || item == ITALIC_OFF:
			f.setAttr(ITALIC, item == ITALIC_ON)
		case item == UNDERLINE_ON || item == UNDERLINE_OFF:
			f.setAttr(UNDERLINE, item == UNDERLINE_ON)
		case item == BLINK_ON || item == BLINK_OFF:
			f.setAttr(BLINK, item == BLINK_ON)
		case item == REVERSE_ON || item == REVERSE_OFF:
			f.setAttr(REVERSED, item == REVERSE_ON)
		case item == INVISIBLE_ON || item == INVISIBLE_OFF:
			f.setAttr(INVISIBLE, item == INVISIBLE_ON)
		case item == STRIKEOUT_ON || item == STRIKEOUT_OFF:
			f.setAttr(STRIKEOUT, item == STRIKEOUT_ON)
		case item >= FG_BLACK && item <= FG_WHITE:
			f.fg = BasicColor(uint8(item - FG_BLACK))
		case item >= FG_BRIGHT_BLACK && item <= FG_BRIGHT_WHITE:
			f.fg = BasicColor(uint8(item - FG_BRIGHT_BLACK + 8))
		case item == SET_FG:
			f.fg = colorFromParams(params, f.fg)
		case item == FG_DEF:
			f.fg = DefaultColor()
		case item >= BG_BLACK && item <= BG_WHITE:
			f.bg = BasicColor(uint8(item - BG_BLACK))
		case item >= BG_BRIGHT_BLACK && item <= BG_BRIGHT_WHITE:
			f.bg = BasicColor(uint8(item - BG_BRIGHT_BLACK + 8))
		case item == SET_BG:
			f.bg = colorFromParams(params, f.bg)
		case item == BG_DEF:
			f.bg = DefaultColor()
		default:
			slog.Debug("unimplemented SGR parameter", "param", item)
		}
	}

	return f
}
