// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint"
)

// SelectedSizeIncrease is added to the marker size of the selected point.
const SelectedSizeIncrease = 20

// Markers has the point marker options shared by all layouts.
type Markers struct {

	// PointSize is the marker diameter or side.
	PointSize float32

	// PointMode is the marker shape.
	PointMode PointModes
}

// DrawPoint draws one marker of the given size at pt in the current fill.
func (mk *Markers) DrawPoint(pc *paint.Painter, pt math32.Vector2, size float32) {
	switch mk.PointMode {
	case PointCircle:
		pc.DrawCircle(pt.X, pt.Y, size/2)
	case PointSquare:
		pc.DrawRectangle(pt.X-size/2, pt.Y-size/2, size, size)
	}
}

// DrawPoints draws a marker at each point in its entry's color. The point
// selected in the given interaction state is drawn enlarged.
func (mk *Markers) DrawPoints(pc *paint.Painter, entries Series, points []math32.Vector2, in *Interaction) {
	if len(points) == 0 || mk.PointMode == PointNone {
		return
	}
	pc.Stroke.Color = nil
	for i, pt := range points {
		size := mk.PointSize
		if in.IsSelected(pt) {
			size += SelectedSizeIncrease
		}
		pc.Fill.Color = colors.Uniform(entries[i].Color)
		mk.DrawPoint(pc, pt, size)
	}
	pc.Fill.Color = nil
}
