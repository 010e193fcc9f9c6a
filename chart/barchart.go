// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint"
)

// MinBarHeight is the minimum drawn height of a bar.
const MinBarHeight = 4

// BarChart draws each entry as a bar from the zero line to its value,
// over an optional tinted column.
type BarChart struct {
	Chart
	Markers
	Interaction

	// BarAreaAlpha is the alpha of the column tint drawn behind each bar;
	// 0 disables the tint.
	BarAreaAlpha uint8
}

// NewBarChart returns a new [BarChart] with default values
// and the given series.
func NewBarChart(series ...Series) *BarChart {
	bc := &BarChart{}
	bc.Defaults()
	bc.Series = series
	return bc
}

// Defaults sets the default values. Markers are hidden by default.
func (bc *BarChart) Defaults() {
	bc.Chart.Defaults()
	bc.PointSize = 0
	bc.PointMode = PointCircle
	bc.BarAreaAlpha = 32
}

// Draw draws the chart onto pc; see [Draw].
func (bc *BarChart) Draw(pc *paint.Painter, width, height float32) {
	Draw(bc, pc, width, height)
}

func (bc *BarChart) DrawContent(pc *paint.Painter, width, height float32) {
	bc.Points = bc.LayoutSeries(pc, width, height, func(ly *Layout) {
		bc.DrawBarAreas(pc, ly)
		bc.DrawBars(pc, ly)
		bc.DrawPoints(pc, ly.Entries, ly.Points, &bc.Interaction)
		bc.DrawLabels(pc, ly, height)
		bc.DrawValueLabels(pc, ly)
	})
}

// BarRect returns the bar for the given point: a column wide box from
// the zero line to the point, at least [MinBarHeight] high. A bar
// enlarged to the minimum that would extend below the plot area is
// moved up to end at its bottom.
func BarRect(p math32.Vector2, itemSize math32.Vector2, origin, headerHeight float32) math32.Box2 {
	x := p.X - itemSize.X/2
	y := math32.Min(origin, p.Y)
	h := math32.Abs(origin - p.Y)
	if h < MinBarHeight {
		h = MinBarHeight
		if bottom := headerHeight + itemSize.Y; y+h > bottom {
			y = bottom - h
		}
	}
	return math32.B2Rect(x, y, itemSize.X, h)
}

// DrawBars draws the bar of each entry in its color.
func (bc *BarChart) DrawBars(pc *paint.Painter, ly *Layout) {
	pc.Stroke.Color = nil
	for i, p := range ly.Points {
		r := BarRect(p, ly.ItemSize, ly.Origin, ly.HeaderHeight)
		pc.Fill.Color = colors.Uniform(ly.Entries[i].Color)
		pc.DrawRectangle(r.Min.X, r.Min.Y, r.Size().X, r.Size().Y)
	}
	pc.Fill.Color = nil
}

// BarAreaRect returns the column tint for the given entry and point: from
// the top of the plot area for positive values, or its bottom otherwise,
// to the point.
func BarAreaRect(e *Entry, p math32.Vector2, itemSize math32.Vector2, headerHeight float32) math32.Box2 {
	end := headerHeight + itemSize.Y
	if e.Value > 0 {
		end = headerHeight
	}
	y := math32.Min(end, p.Y)
	h := math32.Abs(end - p.Y)
	return math32.B2Rect(p.X-itemSize.X/2, y, itemSize.X, h)
}

// DrawBarAreas draws the column tint of each entry in its color at
// BarAreaAlpha. Nothing is drawn when BarAreaAlpha is 0.
func (bc *BarChart) DrawBarAreas(pc *paint.Painter, ly *Layout) {
	if bc.BarAreaAlpha == 0 {
		return
	}
	pc.Stroke.Color = nil
	for i, p := range ly.Points {
		e := &ly.Entries[i]
		r := BarAreaRect(e, p, ly.ItemSize, ly.HeaderHeight)
		pc.Fill.Color = colors.Uniform(colors.WithA(e.Color, bc.BarAreaAlpha))
		pc.DrawRectangle(r.Min.X, r.Min.Y, r.Size().X, r.Size().Y)
	}
	pc.Fill.Color = nil
}

// SetPointSize sets the marker size.
func (bc *BarChart) SetPointSize(size float32) *BarChart {
	bc.PointSize = size
	bc.Changed()
	return bc
}

// SetPointMode sets the marker shape.
func (bc *BarChart) SetPointMode(mode PointModes) *BarChart {
	bc.PointMode = mode
	bc.Changed()
	return bc
}

// SetBarAreaAlpha sets the bar area alpha.
func (bc *BarChart) SetBarAreaAlpha(alpha uint8) *BarChart {
	bc.BarAreaAlpha = alpha
	bc.Changed()
	return bc
}
