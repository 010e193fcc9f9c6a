// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/microcharts/math32"
)

// Stroke returns the outline of the path stroked with the given width,
// with round joins and round caps, flattened with the given tolerance.
// The outline is a union of polygons: one quad per segment and one
// round dot per vertex. All of them share the same orientation, so
// that filling the outline with a nonzero rule covers their union.
func (p Path) Stroke(width, tolerance float32) Path {
	hw := width / 2
	if hw <= 0 {
		return Path{}
	}
	out := Path{}
	dotSegs := min(max(int(hw*4), 8), 64)
	dot := func(c math32.Vector2) {
		for i := 0; i < dotSegs; i++ {
			// negative angle direction, matching the segment quads
			a := -2 * math32.Pi * float32(i) / float32(dotSegs)
			s, cs := math32.Sincos(a)
			pt := c.Add(math32.Vec2(cs*hw, s*hw))
			if i == 0 {
				out.MoveTo(pt.X, pt.Y)
			} else {
				out.LineTo(pt.X, pt.Y)
			}
		}
		out.Close()
	}
	for _, pl := range p.Flatten(tolerance) {
		pts := pl.Points
		if pl.Closed && len(pts) > 1 && !EqualPoint(pts[0], pts[len(pts)-1]) {
			pts = append(pts, pts[0])
		}
		for i := 0; i+1 < len(pts); i++ {
			p0, p1 := pts[i], pts[i+1]
			d := p1.Sub(p0)
			if d.LengthSquared() == 0 {
				continue
			}
			n := d.Normal().Rot90CCW().MulScalar(hw)
			a := p0.Add(n)
			b := p1.Add(n)
			c := p1.Sub(n)
			e := p0.Sub(n)
			out.MoveTo(a.X, a.Y)
			out.LineTo(b.X, b.Y)
			out.LineTo(c.X, c.Y)
			out.LineTo(e.X, e.Y)
			out.Close()
		}
		for _, pt := range pts {
			dot(pt)
		}
	}
	return out
}
