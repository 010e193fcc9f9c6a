// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"testing"

	"cogentcore.org/microcharts/base/tolassert"
	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint"
	"cogentcore.org/microcharts/paint/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

// values returns a series of entries with the given values,
// colored red, green, blue in turn.
func values(vs ...float32) Series {
	clrs := []color.RGBA{red, green, blue}
	s := make(Series, len(vs))
	for i, v := range vs {
		s[i] = NewEntry(v)
		s[i].Color = clrs[i%len(clrs)]
	}
	return s
}

// fillColors returns the uniform fill colors of the recorded paths.
func fillColors(r render.Render) []color.RGBA {
	var cs []color.RGBA
	for _, p := range r.Paths() {
		if p.Style.HasFill() && colors.IsUniform(p.Style.Fill.Color) {
			cs = append(cs, colors.ToUniform(p.Style.Fill.Color))
		}
	}
	return cs
}

func TestDrawNoData(t *testing.T) {
	charts := []Charter{
		NewPointChart(),
		NewBarChart(Series{}, Series{}),
		NewLineChart(Series{}),
	}
	for _, c := range charts {
		c.AsChart().BackgroundColor = colors.White
		pc := paint.NewPainter(100, 100)
		Draw(c, pc, 100, 100)
		assert.Len(t, pc.Render, 0)
	}
}

func TestDrawNoDataClearsPoints(t *testing.T) {
	lc := NewLineChart(values(1, 2, 3))
	lc.Draw(paint.NewPainter(100, 100), 100, 100)
	require.Len(t, lc.Points, 3)

	lc.SetSeries(Series{})
	lc.Draw(paint.NewPainter(100, 100), 100, 100)
	assert.Empty(t, lc.Points)
	assert.False(t, lc.SelectNearestPoint(math32.Vec2(50, 50)))
	assert.False(t, lc.HasSelection)
}

func TestBackground(t *testing.T) {
	pt := NewPointChart(values(1, 2))
	pt.BackgroundColor = colors.White
	pc := paint.NewPainter(100, 80)
	pt.Draw(pc, 100, 80)
	require.NotEmpty(t, pc.Render)
	bg := pc.Render[0].(*render.Path)
	assert.Equal(t, colors.White, colors.ToUniform(bg.Style.Fill.Color))
	assert.Equal(t, math32.B2(0, 0, 100, 80), bg.Path.FastBounds())

	pt.BackgroundColor = colors.Transparent
	pc = paint.NewPainter(100, 80)
	pt.Draw(pc, 100, 80)
	assert.NotEqual(t, math32.B2(0, 0, 100, 80), pc.Render[0].(*render.Path).Path.FastBounds())
}

func TestValueRange(t *testing.T) {
	c := &Chart{}
	c.Defaults()
	assert.Equal(t, float32(0), c.MinValue())
	assert.Equal(t, float32(0), c.MaxValue())

	c.SetSeries(values(3, -2, 7), values(10))
	assert.Equal(t, float32(-2), c.MinValue())
	assert.Equal(t, float32(10), c.MaxValue())

	c.SetMinValue(-5)
	assert.Equal(t, float32(-5), c.MinValue())
	assert.Equal(t, float32(10), c.MaxValue())

	c.SetMaxValue(20)
	assert.Equal(t, float32(20), c.MaxValue())

	// a max override below the min is raised to the min
	c.SetMaxValue(-10)
	assert.Equal(t, float32(-5), c.MaxValue())

	c.ClearMinValue().ClearMaxValue()
	assert.Equal(t, float32(-2), c.MinValue())
	assert.Equal(t, float32(10), c.MaxValue())
}

func TestOnChange(t *testing.T) {
	n := 0
	lc := NewLineChart()
	lc.OnChange = func() { n++ }
	lc.SetMargin(10).SetLabelTextSize(12).SetMinValue(0).SetMaxValue(1).SetBackgroundColor(colors.White)
	assert.Equal(t, 5, n)
	lc.SetLineMode(LineStraight).SetLineSize(2).SetLineAreaAlpha(0).SetPointSize(3).SetPointMode(PointSquare)
	assert.Equal(t, 10, n)
	assert.Equal(t, float32(10), lc.Margin)
	assert.Equal(t, LineStraight, lc.LineMode)

	bc := NewBarChart()
	bc.OnChange = func() { n++ }
	bc.SetBarAreaAlpha(0).SetPointSize(1).SetPointMode(PointNone)
	pt := NewPointChart()
	pt.OnChange = func() { n++ }
	pt.SetPointAreaAlpha(0).SetPointSize(1).SetPointMode(PointNone)
	assert.Equal(t, 16, n)
}

func TestDefaults(t *testing.T) {
	pt := NewPointChart()
	assert.Equal(t, float32(20), pt.Margin)
	assert.Equal(t, float32(16), pt.LabelTextSize)
	assert.Equal(t, float32(14), pt.PointSize)
	assert.Equal(t, PointCircle, pt.PointMode)
	assert.Equal(t, uint8(100), pt.PointAreaAlpha)

	bc := NewBarChart()
	assert.Equal(t, float32(0), bc.PointSize)
	assert.Equal(t, uint8(32), bc.BarAreaAlpha)

	lc := NewLineChart()
	assert.Equal(t, float32(10), lc.PointSize)
	assert.Equal(t, float32(3), lc.LineSize)
	assert.Equal(t, LineSpline, lc.LineMode)
	assert.Equal(t, uint8(32), lc.LineAreaAlpha)
}

func TestModes(t *testing.T) {
	var pm PointModes
	require.NoError(t, pm.UnmarshalText([]byte("Square")))
	assert.Equal(t, PointSquare, pm)
	assert.Error(t, pm.SetString("triangle"))
	b, err := PointCircle.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "circle", string(b))

	var lm LineModes
	require.NoError(t, lm.SetString("straight"))
	assert.Equal(t, LineStraight, lm)
	assert.Equal(t, "spline", LineSpline.String())
	assert.Equal(t, "LineModes(7)", LineModes(7).String())
}

func TestInteraction(t *testing.T) {
	in := &Interaction{}
	assert.False(t, in.SelectNearestPoint(math32.Vec2(1, 1)))
	assert.False(t, in.HasSelection)

	in.Points = []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	assert.True(t, in.SelectNearestPoint(math32.Vec2(9, 0)))
	assert.Equal(t, math32.Vec2(10, 0), in.Selected)
	assert.True(t, in.IsSelected(math32.Vec2(10.05, 0)))
	assert.False(t, in.IsSelected(math32.Vec2(10.2, 0)))

	// equidistant: first in order wins
	assert.True(t, in.SelectNearestPoint(math32.Vec2(5, 0)))
	assert.Equal(t, math32.Vec2(0, 0), in.Selected)
	assert.True(t, in.SelectNearestPoint(math32.Vec2(15, 3)))
	assert.Equal(t, math32.Vec2(10, 0), in.Selected)

	in.ClearSelection()
	assert.False(t, in.HasSelection)
	assert.False(t, in.IsSelected(math32.Vec2(0, 0)))

	var nilIn *Interaction
	assert.False(t, nilIn.IsSelected(math32.Vec2(0, 0)))
}

func TestInteractionPointsFromDraw(t *testing.T) {
	pt := NewPointChart(values(1, 2), Series{}, values(3))
	pc := paint.NewPainter(200, 100)
	pt.Draw(pc, 200, 100)
	require.Len(t, pt.Points, 3)

	// second series of one item is centered
	tolassert.Equal(t, 100, pt.Points[2].X)
	assert.True(t, pt.SelectNearestPoint(math32.Vec2(100, 0)))
	assert.Equal(t, pt.Points[2], pt.Selected)
}
