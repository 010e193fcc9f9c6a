// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides the drawing surface used by charts: a [Painter]
// that records vector paths and text as [render.Item]s, which a [Renderer]
// then turns into pixels or SVG.
package paint

import (
	"image"

	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/ppath"
	"cogentcore.org/microcharts/paint/render"
)

// Painter provides the rendering state, styling parameters, and methods for
// painting. Path construction methods add to the current [State.Path], and
// [Painter.Draw] records it as a [render.Path] using the current fill and
// stroke styles and the current transform.
type Painter struct {
	*State

	// PathStyle has the current fill and stroke used by Draw.
	render.PathStyle

	// Shaper measures text; it defaults to [MonoShaper].
	Shaper Shaper
}

// NewPainter returns a new [Painter] for a surface of the given size.
func NewPainter(width, height float32) *Painter {
	pc := &Painter{State: &State{}, Shaper: MonoShaper{}}
	pc.Init(width, height)
	pc.PathStyle.Defaults()
	return pc
}

// Draw records the current path with the current style and transform,
// and starts a new path. An empty path, or a style with neither fill nor
// stroke, records nothing.
func (pc *Painter) Draw() {
	pt := pc.Path
	pc.Path = nil
	if pt.Empty() || (!pc.HasFill() && !pc.HasStroke()) {
		return
	}
	pc.Render.Add(&render.Path{Path: pt, Style: pc.PathStyle, Transform: pc.Transform()})
}

// Clear discards the current path without drawing it.
func (pc *Painter) Clear() {
	pc.Path = nil
}

// MoveTo starts a new subpath at the given point.
func (pc *Painter) MoveTo(x, y float32) {
	pc.Path.MoveTo(x, y)
}

// LineTo adds a linear segment to the given point.
func (pc *Painter) LineTo(x, y float32) {
	pc.Path.LineTo(x, y)
}

// QuadTo adds a quadratic Bézier segment with control point (cpx, cpy).
func (pc *Painter) QuadTo(cpx, cpy, x, y float32) {
	pc.Path.QuadTo(cpx, cpy, x, y)
}

// CubeTo adds a cubic Bézier segment with control points
// (cp1x, cp1y) and (cp2x, cp2y).
func (pc *Painter) CubeTo(cp1x, cp1y, cp2x, cp2y, x, y float32) {
	pc.Path.CubeTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// Close closes the current subpath.
func (pc *Painter) Close() {
	pc.Path.Close()
}

// Rectangle adds a rectangle of width w and height h at position x, y
// to the current path.
func (pc *Painter) Rectangle(x, y, w, h float32) {
	pc.Path.Rectangle(x, y, w, h)
}

// Circle adds a circle at given center coordinates of radius r
// to the current path.
func (pc *Painter) Circle(cx, cy, r float32) {
	pc.Path.Circle(cx, cy, r)
}

// DrawRectangle draws a rectangle with the current style.
func (pc *Painter) DrawRectangle(x, y, w, h float32) {
	pc.Rectangle(x, y, w, h)
	pc.Draw()
}

// DrawCircle draws a circle with the current style.
func (pc *Painter) DrawCircle(cx, cy, r float32) {
	pc.Circle(cx, cy, r)
	pc.Draw()
}

// FillBox fills the box at the given position and size with the given
// paint source, independent of the current style. The current path
// is left untouched.
func (pc *Painter) FillBox(pos, size math32.Vector2, img image.Image) {
	if img == nil {
		return
	}
	sty := render.PathStyle{}
	sty.Defaults()
	sty.Fill.Color = img
	var pt ppath.Path
	pt.Rectangle(pos.X, pos.Y, size.X, size.Y)
	if pt.Empty() {
		return
	}
	pc.Render.Add(&render.Path{Path: pt, Style: sty, Transform: pc.Transform()})
}

// MeasureText returns the bounding box of the given text in the given
// style, relative to the left end of its baseline, using [Painter.Shaper].
func (pc *Painter) MeasureText(text string, sty *render.TextStyle) math32.Box2 {
	if pc.Shaper == nil {
		pc.Shaper = MonoShaper{}
	}
	return pc.Shaper.Measure(text, sty)
}

// DrawText records the given text with the given style, with the left end
// of its baseline at x, y under the current transform.
func (pc *Painter) DrawText(text string, x, y float32, sty *render.TextStyle) {
	if text == "" || sty.Color == nil {
		return
	}
	pc.Render.Add(&render.Text{Text: text, Position: math32.Vec2(x, y), Style: *sty, Transform: pc.Transform()})
}

// RenderTo renders the recorded items with the given renderer.
func (pc *Painter) RenderTo(r Renderer) {
	r.Render(pc.Render)
}
