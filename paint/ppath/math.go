// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"cogentcore.org/microcharts/math32"
)

var (
	// PixelTolerance is the maximum deviation of the rasterized path from
	// the original for flattening purposed in pixels.
	PixelTolerance = float32(0.1)

	//	In C, FLT_EPSILON = 1.19209e-07

	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-7)

	// Precision is the number of significant digits at which floating point
	// value will be printed to output formats.
	Precision = 7
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

// EqualPoint returns true if both coordinates of a and b are [Equal].
func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// quadPos returns the point at t on the quadratic Bézier p0, p1, p2.
func quadPos(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	return p0.MulScalar(mt * mt).Add(p1.MulScalar(2 * mt * t)).Add(p2.MulScalar(t * t))
}

// cubePos returns the point at t on the cubic Bézier p0, p1, p2, p3.
func cubePos(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.MulScalar(a).Add(p1.MulScalar(b)).Add(p2.MulScalar(c)).Add(p3.MulScalar(d))
}
