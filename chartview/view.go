// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartview hosts a chart on a fixed size surface: it owns the
// size, forwards taps to hit testing, and asks its host for a redraw
// whenever the chart needs one.
package chartview

import (
	"log/slog"

	"cogentcore.org/microcharts/chart"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint"
	"cogentcore.org/microcharts/paint/render"
)

// Selecter is a chart that supports selecting the point nearest a tap.
// All of the chart types in package chart are Selecters.
type Selecter interface {
	SelectNearestPoint(tap math32.Vector2) bool
}

// View displays a [chart.Charter] at a given size.
type View struct {

	// Chart is the chart to display. Use [View.SetChart] to set it.
	Chart chart.Charter

	// Size is the size of the drawing surface.
	Size math32.Vector2

	// Shaper measures text for layout. If nil, [paint.MonoShaper] is used.
	Shaper paint.Shaper

	// Renderer, if set, receives the render items of each [View.Render].
	Renderer paint.Renderer

	// OnInvalidate is called whenever the view needs to be rendered again:
	// after a tap selects a point, a resize, or a change of the chart.
	OnInvalidate func()
}

// New returns a new [View] of the given size showing the given chart.
func New(c chart.Charter, width, height float32) *View {
	v := &View{Size: math32.Vec2(width, height)}
	v.SetChart(c)
	return v
}

// SetChart sets the chart to display, and arranges for the view to be
// invalidated whenever the chart configuration changes.
func (v *View) SetChart(c chart.Charter) *View {
	if v.Chart != nil && v.Chart != c {
		v.Chart.AsChart().OnChange = nil
	}
	v.Chart = c
	if c != nil {
		c.AsChart().OnChange = v.NeedsRender
	}
	v.NeedsRender()
	return v
}

// Resize sets the size of the drawing surface. A resize to the current
// size does nothing.
func (v *View) Resize(width, height float32) {
	sz := math32.Vec2(width, height)
	if sz == v.Size {
		return
	}
	v.Size = sz
	v.NeedsRender()
}

// Tap selects the point of the last render nearest to the given position,
// returning whether a point was selected. The selection shows on the next
// render, which is requested.
func (v *View) Tap(x, y float32) bool {
	sel, ok := v.Chart.(Selecter)
	if !ok {
		return false
	}
	if !sel.SelectNearestPoint(math32.Vec2(x, y)) {
		return false
	}
	slog.Debug("chartview: selected point", "x", x, "y", y)
	v.NeedsRender()
	return true
}

// NeedsRender calls [View.OnInvalidate] if it is set.
func (v *View) NeedsRender() {
	if v.OnInvalidate != nil {
		v.OnInvalidate()
	}
}

// Render draws the chart at the current size and returns the render
// items, which are also passed to [View.Renderer] if it is set.
// An empty size or a nil chart draws nothing.
func (v *View) Render() render.Render {
	if v.Chart == nil || v.Size.X <= 0 || v.Size.Y <= 0 {
		return nil
	}
	pc := paint.NewPainter(v.Size.X, v.Size.Y)
	if v.Shaper != nil {
		pc.Shaper = v.Shaper
	}
	chart.Draw(v.Chart, pc, v.Size.X, v.Size.Y)
	if v.Renderer != nil {
		pc.RenderTo(v.Renderer)
	}
	return pc.Render
}
