// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
)

// spacedColors are widely spaced hues, in an order where successive
// colors contrast well: blue, red, green, yellow, violet, aqua, orange, blueviolet.
var spacedColors = []color.RGBA{
	{0x26, 0x6E, 0xF1, 0xFF},
	{0xE0, 0x40, 0x3B, 0xFF},
	{0x2E, 0x9E, 0x5B, 0xFF},
	{0xE8, 0xB3, 0x1C, 0xFF},
	{0xC2, 0x4A, 0xC8, 0xFF},
	{0x1C, 0xA8, 0xC2, 0xFF},
	{0xF0, 0x82, 0x2D, 0xFF},
	{0x77, 0x52, 0xE0, 0xFF},
}

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index. This is useful, for example,
// for assigning colors to chart entries that do not specify one.
// After the first cycle of hues, successive cycles are progressively
// lighter versions of the same hues.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	n := len(spacedColors)
	c := spacedColors[idx%n]
	cycle := (idx / n) % 4
	if cycle == 0 {
		return c
	}
	return BlendRGB(100-float32(cycle)*20, c, White)
}
