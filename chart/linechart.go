// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/colors/gradient"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint"
)

// SplineControlFactor is the horizontal offset of spline control points
// from their end points, as a proportion of the column width.
const SplineControlFactor = 0.8

// LineChart draws each series as a line or spline through its points,
// over an optional area down to the zero line. Both are colored with
// a horizontal gradient of the entry colors.
type LineChart struct {
	Chart
	Markers
	Interaction

	// LineSize is the stroke width of the line.
	LineSize float32

	// LineMode is how points are connected.
	LineMode LineModes

	// LineAreaAlpha is the alpha of the area under the line;
	// 0 disables the area.
	LineAreaAlpha uint8
}

// NewLineChart returns a new [LineChart] with default values
// and the given series.
func NewLineChart(series ...Series) *LineChart {
	lc := &LineChart{}
	lc.Defaults()
	lc.Series = series
	return lc
}

// Defaults sets the default values.
func (lc *LineChart) Defaults() {
	lc.Chart.Defaults()
	lc.PointSize = 10
	lc.PointMode = PointCircle
	lc.LineSize = 3
	lc.LineMode = LineSpline
	lc.LineAreaAlpha = 32
}

// Draw draws the chart onto pc; see [Draw].
func (lc *LineChart) Draw(pc *paint.Painter, width, height float32) {
	Draw(lc, pc, width, height)
}

func (lc *LineChart) DrawContent(pc *paint.Painter, width, height float32) {
	lc.Points = lc.LayoutSeries(pc, width, height, func(ly *Layout) {
		lc.DrawArea(pc, ly)
		lc.DrawLine(pc, ly)
		lc.DrawPoints(pc, ly.Entries, ly.Points, &lc.Interaction)
		lc.DrawLabels(pc, ly, height)
		lc.DrawValueLabels(pc, ly)
	})
}

// CubicControls returns the control points of the spline segment from
// point i to point i+1: offset horizontally by [SplineControlFactor]
// times the column width, outward from point i and back from point i+1.
func CubicControls(points []math32.Vector2, i int, itemWidth float32) (control, nextControl math32.Vector2) {
	off := math32.Vec2(itemWidth*SplineControlFactor, 0)
	return points[i].Add(off), points[i+1].Sub(off)
}

// NewGradient returns the horizontal gradient for the given entries and
// points, with one stop per entry in its color with its alpha replaced
// by the given alpha, positioned at the point's x.
func NewGradient(entries Series, points []math32.Vector2, alpha uint8) *gradient.Linear {
	x0 := points[0].X
	xn := points[len(points)-1].X
	g := gradient.NewUserLinear(math32.Vec2(x0, 0), math32.Vec2(xn, 0))
	span := xn - x0
	for i, p := range points {
		var pos float32
		if span != 0 {
			pos = (p.X - x0) / span
		}
		g.AddStop(colors.WithA(entries[i].Color, alpha), pos)
	}
	return g
}

// segments adds the segments through the points after the first to the
// current path, as splines in spline mode and straight lines otherwise.
func (lc *LineChart) segments(pc *paint.Painter, ly *Layout) {
	pts := ly.Points
	if lc.LineMode == LineSpline {
		for i := 0; i < len(pts)-1; i++ {
			c1, c2 := CubicControls(pts, i, ly.ItemSize.X)
			pc.CubeTo(c1.X, c1.Y, c2.X, c2.Y, pts[i+1].X, pts[i+1].Y)
		}
		return
	}
	for _, p := range pts[1:] {
		pc.LineTo(p.X, p.Y)
	}
}

// DrawLine strokes the line through the points with LineSize, using the
// entry color gradient. It needs at least two points.
func (lc *LineChart) DrawLine(pc *paint.Painter, ly *Layout) {
	if len(ly.Points) < 2 || lc.LineMode == LineNone {
		return
	}
	first := ly.Points[0]
	pc.MoveTo(first.X, first.Y)
	lc.segments(pc, ly)
	pc.Fill.Color = nil
	pc.Stroke.Color = NewGradient(ly.Entries, ly.Points, 255)
	pc.Stroke.Width = lc.LineSize
	pc.Draw()
	pc.Stroke.Color = nil
}

// DrawArea fills the region between the line and the zero line, using
// the entry color gradient at LineAreaAlpha. The area follows straight
// segments when LineMode is LineNone. It needs at least two points.
func (lc *LineChart) DrawArea(pc *paint.Painter, ly *Layout) {
	if len(ly.Points) < 2 || lc.LineAreaAlpha == 0 {
		return
	}
	first := ly.Points[0]
	last := ly.Points[len(ly.Points)-1]
	pc.MoveTo(first.X, ly.Origin)
	pc.LineTo(first.X, first.Y)
	lc.segments(pc, ly)
	pc.LineTo(last.X, ly.Origin)
	pc.Close()
	pc.Stroke.Color = nil
	pc.Fill.Color = NewGradient(ly.Entries, ly.Points, lc.LineAreaAlpha)
	pc.Draw()
	pc.Fill.Color = nil
}

// SetPointSize sets the marker size.
func (lc *LineChart) SetPointSize(size float32) *LineChart {
	lc.PointSize = size
	lc.Changed()
	return lc
}

// SetPointMode sets the marker shape.
func (lc *LineChart) SetPointMode(mode PointModes) *LineChart {
	lc.PointMode = mode
	lc.Changed()
	return lc
}

// SetLineSize sets the line width.
func (lc *LineChart) SetLineSize(size float32) *LineChart {
	lc.LineSize = size
	lc.Changed()
	return lc
}

// SetLineMode sets the line mode.
func (lc *LineChart) SetLineMode(mode LineModes) *LineChart {
	lc.LineMode = mode
	lc.Changed()
	return lc
}

// SetLineAreaAlpha sets the line area alpha.
func (lc *LineChart) SetLineAreaAlpha(alpha uint8) *LineChart {
	lc.LineAreaAlpha = alpha
	lc.Changed()
	return lc
}
