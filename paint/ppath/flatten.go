// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/microcharts/math32"
)

// Polyline is one flattened subpath.
type Polyline struct {
	Points []math32.Vector2

	// Closed is whether the subpath ended with a Close command.
	Closed bool
}

// curveSegments returns the number of line segments used to
// approximate a curve with the given control polygon length.
func curveSegments(length, tolerance float32) int {
	if tolerance <= 0 {
		tolerance = PixelTolerance
	}
	n := int(math32.Ceil(math32.Sqrt(length / tolerance)))
	return min(max(n, 1), 200)
}

// Flatten converts the path into polylines, one per subpath,
// approximating curves with line segments that deviate
// from the curve by roughly at most the given tolerance.
func (p Path) Flatten(tolerance float32) []Polyline {
	var res []Polyline
	var cur *Polyline
	for s := p.Scanner(); s.Scan(); {
		start := s.Start()
		end := s.End()
		switch s.Cmd() {
		case MoveTo:
			res = append(res, Polyline{Points: []math32.Vector2{end}})
			cur = &res[len(res)-1]
			continue
		}
		if cur == nil {
			res = append(res, Polyline{Points: []math32.Vector2{start}})
			cur = &res[len(res)-1]
		}
		switch s.Cmd() {
		case LineTo:
			cur.Points = append(cur.Points, end)
		case QuadTo:
			cp := s.CP1()
			n := curveSegments(start.DistanceTo(cp)+cp.DistanceTo(end), tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, quadPos(start, cp, end, float32(i)/float32(n)))
			}
		case CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			n := curveSegments(start.DistanceTo(cp1)+cp1.DistanceTo(cp2)+cp2.DistanceTo(end), tolerance)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, cubePos(start, cp1, cp2, end, float32(i)/float32(n)))
			}
		case Close:
			if !EqualPoint(cur.Points[len(cur.Points)-1], end) {
				cur.Points = append(cur.Points, end)
			}
			cur.Closed = true
			cur = nil
		}
	}
	return res
}
