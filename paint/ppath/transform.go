// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"strconv"
	"strings"

	"cogentcore.org/microcharts/math32"
)

// Transform transforms the path by the given transformation matrix
// and returns a new path. It modifies the path in-place.
func (p Path) Transform(m math32.Matrix2) Path {
	if m.IsIdentity() {
		return p
	}
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j+1 < i+n-1; j += 2 {
			pt := m.MulVector2AsPoint(math32.Vec2(p[j], p[j+1]))
			p[j] = pt.X
			p[j+1] = pt.Y
		}
		i += n
	}
	return p
}

// Translate translates the path by (x,y) and returns a new path.
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale scales the path by (x,y) and returns a new path.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}

// FastBounds returns the maximum bounding box rectangle of the path.
// It includes the control points of curves, so it is quick to compute
// but may be larger than the exact bounds.
func (p Path) FastBounds() math32.Box2 {
	if len(p) < 4 {
		return math32.Box2{}
	}
	b := math32.B2Empty()
	for i := 0; i < len(p); {
		cmd := p[i]
		n := CmdLen(cmd)
		for j := i + 1; j+1 < i+n-1; j += 2 {
			b.ExpandByPoint(math32.Vec2(p[j], p[j+1]))
		}
		i += n
	}
	return b
}

// Bounds returns the bounding box of the flattened path.
func (p Path) Bounds() math32.Box2 {
	if len(p) < 4 {
		return math32.Box2{}
	}
	b := math32.B2Empty()
	for _, sp := range p.Flatten(PixelTolerance) {
		for _, pt := range sp.Points {
			b.ExpandByPoint(pt)
		}
	}
	return b
}

func num(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', Precision, 32)
}

// ToSVG returns a string that represents the path in the SVG path data format.
func (p Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo:
			sb.WriteString("M" + num(p[i+1]) + " " + num(p[i+2]))
		case LineTo:
			sb.WriteString("L" + num(p[i+1]) + " " + num(p[i+2]))
		case QuadTo:
			sb.WriteString("Q" + num(p[i+1]) + " " + num(p[i+2]) + " " + num(p[i+3]) + " " + num(p[i+4]))
		case CubeTo:
			sb.WriteString("C" + num(p[i+1]) + " " + num(p[i+2]) + " " + num(p[i+3]) + " " + num(p[i+4]) + " " + num(p[i+5]) + " " + num(p[i+6]))
		case Close:
			sb.WriteString("Z")
		}
		i += CmdLen(cmd)
	}
	return sb.String()
}
