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

// PointChart draws each entry as a marker at its value, over an optional
// gradient column from the zero line.
type PointChart struct {
	Chart
	Markers
	Interaction

	// PointAreaAlpha is the alpha of the column drawn behind each marker,
	// fading to a third of it at the zero line; 0 disables the columns.
	PointAreaAlpha uint8
}

// NewPointChart returns a new [PointChart] with default values
// and the given series.
func NewPointChart(series ...Series) *PointChart {
	pt := &PointChart{}
	pt.Defaults()
	pt.Series = series
	return pt
}

// Defaults sets the default values.
func (pt *PointChart) Defaults() {
	pt.Chart.Defaults()
	pt.PointSize = 14
	pt.PointMode = PointCircle
	pt.PointAreaAlpha = 100
}

// Draw draws the chart onto pc; see [Draw].
func (pt *PointChart) Draw(pc *paint.Painter, width, height float32) {
	Draw(pt, pc, width, height)
}

func (pt *PointChart) DrawContent(pc *paint.Painter, width, height float32) {
	pt.Points = pt.LayoutSeries(pc, width, height, func(ly *Layout) {
		pt.DrawPointAreas(pc, ly)
		pt.DrawPoints(pc, ly.Entries, ly.Points, &pt.Interaction)
		pt.DrawLabels(pc, ly, height)
		pt.DrawValueLabels(pc, ly)
	})
}

// DrawPointAreas draws a PointSize wide column from the zero line to each
// point, with a vertical gradient from the entry color at PointAreaAlpha
// at the point to a third of that at the zero line.
func (pt *PointChart) DrawPointAreas(pc *paint.Painter, ly *Layout) {
	if pt.PointAreaAlpha == 0 || pt.PointSize <= 0 {
		return
	}
	pc.Stroke.Color = nil
	for i, p := range ly.Points {
		top := math32.Min(ly.Origin, p.Y)
		h := math32.Abs(ly.Origin - p.Y)
		if h == 0 {
			continue
		}
		clr := ly.Entries[i].Color
		g := gradient.NewUserLinear(math32.Vec2(0, p.Y), math32.Vec2(0, ly.Origin))
		g.AddStop(colors.WithA(clr, pt.PointAreaAlpha), 0)
		g.AddStop(colors.WithA(clr, pt.PointAreaAlpha/3), 1)
		pc.Fill.Color = g
		pc.DrawRectangle(p.X-pt.PointSize/2, top, pt.PointSize, h)
	}
	pc.Fill.Color = nil
}

// SetPointSize sets the marker size.
func (pt *PointChart) SetPointSize(size float32) *PointChart {
	pt.PointSize = size
	pt.Changed()
	return pt
}

// SetPointMode sets the marker shape.
func (pt *PointChart) SetPointMode(mode PointModes) *PointChart {
	pt.PointMode = mode
	pt.Changed()
	return pt
}

// SetPointAreaAlpha sets the point area alpha.
func (pt *PointChart) SetPointAreaAlpha(alpha uint8) *PointChart {
	pt.PointAreaAlpha = alpha
	pt.Changed()
	return pt
}
