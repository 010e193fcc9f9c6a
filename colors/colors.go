// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides named colors, color parsing, and
// color manipulation helpers used for chart entries and painting.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/microcharts/math32"
	"golang.org/x/image/colornames"
)

// Standard colors used throughout the package.
var (
	Transparent = color.RGBA{}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
)

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// WithA returns the given color with the transparency (A) set to
// the given value, keeping the non-premultiplied color components.
func WithA(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return AsRGBA(n)
}

// WithAF32 returns the given color with the transparency (A) set to
// the given float32 value between 0 and 1.
func WithAF32(c color.Color, a float32) color.RGBA {
	a = math32.Clamp(a, 0, 1)
	return WithA(c, uint8(math32.Round(a*255)))
}

// ApplyOpacity applies the given opacity (0-1) to the given color
// and returns the result. It is different from [WithAF32] in that it
// multiplies the existing alpha by the opacity instead of replacing it.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	if opacity >= 1 {
		return r
	}
	if opacity <= 0 {
		return color.RGBA{}
	}
	r.R = uint8(float32(r.R) * opacity)
	r.G = uint8(float32(r.G) * opacity)
	r.B = uint8(float32(r.B) * opacity)
	r.A = uint8(float32(r.A) * opacity)
	return r
}

// BlendRGB blends the two given colors together, returning
// pct percent (0-100) of x and 100-pct percent of y,
// interpolating the non-premultiplied components.
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	f := math32.Clamp(pct, 0, 100) / 100
	xn := color.NRGBAModel.Convert(x).(color.NRGBA)
	yn := color.NRGBAModel.Convert(y).(color.NRGBA)
	mix := func(a, b uint8) uint8 {
		return uint8(math32.Round(f*float32(a) + (1-f)*float32(b)))
	}
	return AsRGBA(color.NRGBA{mix(xn.R, yn.R), mix(xn.G, yn.G), mix(xn.B, yn.B), mix(xn.A, yn.A)})
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string
// and returns the resulting color. Supported forms are
// #rgb, #rrggbb, and #rrggbbaa (non-premultiplied alpha),
// with or without the leading #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		n++
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		n++
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil || n != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return AsRGBA(color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}), nil
}

// FromString returns a color value from the given string.
// FromString accepts hex values, standard color names,
// "transparent", and "none" or "off" (both meaning transparent).
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case lstr == "none", lstr == "off", lstr == "transparent":
		return Transparent, nil
	default:
		return FromName(lstr)
	}
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string of its non-premultiplied components, in #RRGGBB form when
// fully opaque and #RRGGBBAA form otherwise.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
