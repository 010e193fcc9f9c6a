// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart lays out series of labeled values as point, bar, and
// line charts, drawing them onto a [paint.Painter].
//
// Each layout ([PointChart], [BarChart], [LineChart]) embeds the shared
// [Chart] configuration and helpers, a [Markers] value for point markers,
// and an [Interaction] value for hit testing. Draw and hit testing must be
// serialized by the caller.
package chart

import (
	"image/color"

	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/math32/minmax"
	"cogentcore.org/microcharts/paint"
)

// Charter is the interface implemented by all chart layouts.
type Charter interface {
	// AsChart returns the shared [Chart] configuration.
	AsChart() *Chart

	// DrawContent draws the layout for all series. It is called by [Draw]
	// only when there is data to draw.
	DrawContent(pc *paint.Painter, width, height float32)
}

// Chart has the configuration and helpers shared by all layouts.
type Chart struct {

	// Series are the series of entries, drawn in order.
	Series []Series

	// Margin is the uniform inset around and gutter between items.
	Margin float32

	// LabelTextSize is the font size of axis and value labels.
	LabelTextSize float32

	// Range has optional fixed ends overriding the value range
	// computed from the entries.
	Range minmax.Range32

	// BackgroundColor, if not transparent, fills the surface
	// before the content is drawn.
	BackgroundColor color.RGBA

	// OnChange, if set, is called after any setter changes the configuration.
	OnChange func()
}

// Defaults sets the default configuration values.
func (c *Chart) Defaults() {
	c.Margin = 20
	c.LabelTextSize = 16
}

func (c *Chart) AsChart() *Chart { return c }

// Changed calls [Chart.OnChange] if it is set.
func (c *Chart) Changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// HasData returns whether any series has at least one entry.
func (c *Chart) HasData() bool {
	for _, s := range c.Series {
		if len(s) > 0 {
			return true
		}
	}
	return false
}

// ValueRange returns the effective value range: the fixed ends of
// [Chart.Range] where set, and otherwise the min and max over all entries
// of all series. Max is never less than Min.
func (c *Chart) ValueRange() minmax.F32 {
	var data minmax.F32
	data.SetInfinity()
	for _, s := range c.Series {
		for i := range s {
			data.FitValInRange(s[i].Value)
		}
	}
	if !data.IsValid() {
		data.Set(0, 0)
	}
	return c.Range.Apply(data)
}

// MinValue returns the effective minimum value.
func (c *Chart) MinValue() float32 {
	return c.ValueRange().Min
}

// MaxValue returns the effective maximum value.
func (c *Chart) MaxValue() float32 {
	return c.ValueRange().Max
}

// Draw draws the given chart onto pc, for a surface of the given size.
// It draws nothing at all when there are no entries, and then clears
// the points of any [Interactor]; otherwise it fills the background if
// one is set and draws the layout content.
func Draw(c Charter, pc *paint.Painter, width, height float32) {
	ch := c.AsChart()
	if !ch.HasData() {
		if in, ok := c.(Interactor); ok {
			in.AsInteraction().Points = nil
		}
		return
	}
	if ch.BackgroundColor.A > 0 {
		pc.FillBox(math32.Vector2{}, math32.Vec2(width, height), colors.Uniform(ch.BackgroundColor))
	}
	c.DrawContent(pc, width, height)
}

// SetSeries sets the series to draw.
func (c *Chart) SetSeries(series ...Series) *Chart {
	c.Series = series
	c.Changed()
	return c
}

// SetMargin sets the margin.
func (c *Chart) SetMargin(margin float32) *Chart {
	c.Margin = margin
	c.Changed()
	return c
}

// SetLabelTextSize sets the label text size.
func (c *Chart) SetLabelTextSize(size float32) *Chart {
	c.LabelTextSize = size
	c.Changed()
	return c
}

// SetMinValue fixes the minimum value.
func (c *Chart) SetMinValue(v float32) *Chart {
	c.Range.SetMin(v)
	c.Changed()
	return c
}

// SetMaxValue fixes the maximum value.
func (c *Chart) SetMaxValue(v float32) *Chart {
	c.Range.SetMax(v)
	c.Changed()
	return c
}

// ClearMinValue makes the minimum value computed from the entries again.
func (c *Chart) ClearMinValue() *Chart {
	c.Range.FixMin = false
	c.Changed()
	return c
}

// ClearMaxValue makes the maximum value computed from the entries again.
func (c *Chart) ClearMaxValue() *Chart {
	c.Range.FixMax = false
	c.Changed()
	return c
}

// SetBackgroundColor sets the background color.
func (c *Chart) SetBackgroundColor(clr color.RGBA) *Chart {
	c.BackgroundColor = clr
	c.Changed()
	return c
}
