package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

var ErrBadColor = errors.New("bad color")

// ParseColor reads a color the way sketches pass one: gray, gray and
// alpha, rgb, or rgba, each channel 0-255.
func ParseColor(v ...float64) (color.RGBA, error) {
	switch len(v) {
	case 1:
		g := channel(v[0])
		return color.RGBA{R: g, G: g, B: g, A: 255}, nil
	case 2:
		g := channel(v[0])
		return premultiply(g, g, g, channel(v[1])), nil
	case 3:
		return color.RGBA{R: channel(v[0]), G: channel(v[1]), B: channel(v[2]), A: 255}, nil
	case 4:
		return premultiply(channel(v[0]), channel(v[1]), channel(v[2]), channel(v[3])), nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %d values", ErrBadColor, len(v))
}

// ParseHex reads "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	h, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %w", ErrBadColor, s, err)
	}
	return premultiply(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// color.RGBA is alpha-premultiplied
func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 255 {
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
	m := func(c uint8) uint8 { return uint8(uint16(c) * uint16(a) / 255) }
	return color.RGBA{R: m(r), G: m(g), B: m(b), A: a}
}
