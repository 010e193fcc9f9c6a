// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"testing"

	"cogentcore.org/microcharts/base/tolassert"
	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/colors/gradient"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint"
	"cogentcore.org/microcharts/paint/ppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubicControls(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 100, Y: 50}}
	c1, c2 := CubicControls(pts, 0, 100)
	assert.Equal(t, math32.Vec2(80, 0), c1)
	assert.Equal(t, math32.Vec2(20, 50), c2)
}

func TestNewGradient(t *testing.T) {
	s := values(1, 2, 3)
	pts := []math32.Vector2{{X: 10, Y: 5}, {X: 60, Y: 5}, {X: 110, Y: 5}}
	g := NewGradient(s, pts, 51)
	assert.Equal(t, gradient.UserSpaceOnUse, g.Units)
	assert.Equal(t, math32.Vec2(10, 0), g.Start)
	assert.Equal(t, math32.Vec2(110, 0), g.End)
	require.Len(t, g.Stops, 3)
	for i, st := range g.Stops {
		tolassert.Equal(t, float32(i)/2, st.Pos)
		tolassert.Equal(t, 1, st.Opacity)
	}
	assert.Equal(t, color.Color(colors.WithA(green, 51)), g.Stops[1].Color)
}

func TestNewGradientAlpha(t *testing.T) {
	s := values(1, 2)
	for i := range s {
		s[i].Color = color.RGBA{128, 0, 0, 128}
	}
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 100, Y: 0}}
	box := math32.B2(0, 0, 100, 10)

	g := NewGradient(s, pts, 255)
	g.Update(1, box, math32.Identity2())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, colors.AsRGBA(g.At(50, 0)))

	g = NewGradient(s, pts, 32)
	g.Update(1, box, math32.Identity2())
	assert.Equal(t, uint8(32), colors.AsRGBA(g.At(50, 0)).A)
}

// lineChart draws a line chart of 0, 10, 5 on a 300x200 surface, where
// the points are at (56.67, 160), (150, 20), (243.33, 90).
func lineChart(t *testing.T, mode LineModes) (*LineChart, *paint.Painter) {
	lc := NewLineChart(values(0, 10, 5))
	lc.LineMode = mode
	pc := paint.NewPainter(300, 200)
	lc.Draw(pc, 300, 200)
	require.Len(t, lc.Points, 3)
	return lc, pc
}

func TestLineChartGeometry(t *testing.T) {
	lc, _ := lineChart(t, LineSpline)
	xs := []float32{170.0 / 3, 150, 730.0 / 3}
	ys := []float32{160, 20, 90}
	for i, p := range lc.Points {
		tolassert.EqualTol(t, xs[i], p.X, 0.001)
		tolassert.EqualTol(t, ys[i], p.Y, 0.001)
	}
}

func TestLineChartSpline(t *testing.T) {
	lc, pc := lineChart(t, LineSpline)
	paths := pc.Render.Paths()
	// area, line, three markers
	require.Len(t, paths, 5)

	area := paths[0]
	// the lift to the first point is empty at the zero line
	assert.Equal(t, []float32{ppath.MoveTo, ppath.CubeTo, ppath.CubeTo, ppath.LineTo, ppath.Close}, area.Path.Commands())
	g, ok := area.Style.Fill.Color.(*gradient.Linear)
	require.True(t, ok)
	assert.Equal(t, color.Color(colors.WithA(red, 32)), g.Stops[0].Color)
	tolassert.Equal(t, 1, g.Stops[0].Opacity)
	assert.False(t, area.Style.HasStroke())

	line := paths[1]
	assert.Equal(t, []float32{ppath.MoveTo, ppath.CubeTo, ppath.CubeTo}, line.Path.Commands())
	assert.Nil(t, line.Style.Fill.Color)
	tolassert.Equal(t, 3, line.Style.Stroke.Width)
	g, ok = line.Style.Stroke.Color.(*gradient.Linear)
	require.True(t, ok)
	assert.Equal(t, color.Color(blue), g.Stops[2].Color)
	tolassert.Equal(t, 1, g.Stops[2].Opacity)

	cp1, cp2, end := line.Path.CubeToPoints(4)
	off := lc.Points[1].X - lc.Points[0].X - 20
	tolassert.EqualTol(t, lc.Points[0].X+off*SplineControlFactor, cp1.X, 0.001)
	tolassert.EqualTol(t, lc.Points[1].X-off*SplineControlFactor, cp2.X, 0.001)
	assert.Equal(t, lc.Points[1], end)

	assert.Equal(t, []color.RGBA{red, green, blue}, fillColors(pc.Render))
}

func TestLineChartStraight(t *testing.T) {
	_, pc := lineChart(t, LineStraight)
	paths := pc.Render.Paths()
	require.Len(t, paths, 5)
	assert.Equal(t, []float32{ppath.MoveTo, ppath.LineTo, ppath.LineTo, ppath.LineTo, ppath.Close}, paths[0].Path.Commands())
	assert.Equal(t, []float32{ppath.MoveTo, ppath.LineTo, ppath.LineTo}, paths[1].Path.Commands())
}

func TestLineChartNone(t *testing.T) {
	_, pc := lineChart(t, LineNone)
	paths := pc.Render.Paths()
	// area with straight segments, no line, three markers
	require.Len(t, paths, 4)
	assert.Equal(t, []float32{ppath.MoveTo, ppath.LineTo, ppath.LineTo, ppath.LineTo, ppath.Close}, paths[0].Path.Commands())
	_, ok := paths[0].Style.Fill.Color.(*gradient.Linear)
	assert.True(t, ok)
}

func TestLineChartSinglePoint(t *testing.T) {
	lc := NewLineChart(values(5))
	pc := paint.NewPainter(300, 200)
	lc.Draw(pc, 300, 200)
	// just the marker
	assert.Equal(t, []color.RGBA{red}, fillColors(pc.Render))
	assert.Len(t, pc.Render.Paths(), 1)
}

func TestLineChartNoArea(t *testing.T) {
	lc := NewLineChart(values(0, 10, 5))
	lc.SetLineAreaAlpha(0).SetPointMode(PointNone)
	pc := paint.NewPainter(300, 200)
	lc.Draw(pc, 300, 200)
	paths := pc.Render.Paths()
	require.Len(t, paths, 1)
	assert.True(t, paths[0].Style.HasStroke())
}
