// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

package gradient

import (
	"image/color"

	"cogentcore.org/microcharts/math32"
)

// Linear represents a linear gradient. It implements the [image.Image] interface.
type Linear struct {
	Base

	// the starting point of the gradient (x1 and y1 in SVG)
	Start math32.Vector2

	// the ending point of the gradient (x2 and y2 in SVG)
	End math32.Vector2

	// current render version: transformed by object matrix
	rStart math32.Vector2

	// current render version: transformed by object matrix
	rEnd math32.Vector2
}

var _ Gradient = &Linear{}

// NewLinear returns a new left-to-right [Linear] gradient.
func NewLinear() *Linear {
	return &Linear{
		Base: NewBase(),
		// default in SVG is LTR
		End: math32.Vec2(1, 0),
	}
}

// NewUserLinear returns a new [Linear] gradient in [UserSpaceOnUse]
// units, running from start to end in canvas coordinates.
func NewUserLinear(start, end math32.Vector2) *Linear {
	l := NewLinear()
	l.Units = UserSpaceOnUse
	l.Start = start
	l.End = end
	return l
}

// AddStop adds a new stop with the given color, position, and
// optional opacity to the linear gradient.
func (l *Linear) AddStop(color color.RGBA, pos float32, opacity ...float32) *Linear {
	l.Base.AddStop(color, pos, opacity...)
	return l
}

// Update updates the computed fields of the gradient, using
// the given current bounding box and additional
// object-level transform (i.e., the current painting transform),
// which is applied in addition to the gradient's own Transform.
// This must be called before rendering the gradient, and it should only be called then.
func (l *Linear) Update(opacity float32, box math32.Box2, objTransform math32.Matrix2) {
	l.Box = box
	l.Opacity = opacity
	start, end := l.Start, l.End
	if l.Units == ObjectBoundingBox {
		sz := l.Box.Size()
		start = l.Box.Min.Add(sz.Mul(start))
		end = l.Box.Min.Add(sz.Mul(end))
	}
	m := objTransform.Mul(l.Transform)
	l.rStart = m.MulVector2AsPoint(start)
	l.rEnd = m.MulVector2AsPoint(end)
}

// RenderPoints returns the effective start and end points computed
// by the last call to [Linear.Update].
func (l *Linear) RenderPoints() (start, end math32.Vector2) {
	return l.rStart, l.rEnd
}

// At returns the color of the linear gradient at the given point
func (l *Linear) At(x, y int) color.Color {
	switch len(l.Stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return l.Stops[0].OpacityColor(l.Opacity)
	}
	return l.GetColor(l.Pos(math32.Vec2(float32(x)+0.5, float32(y)+0.5)))
}

// Pos returns the normalized position along the gradient of the given
// render-space point: 0 at the start, 1 at the end.
func (l *Linear) Pos(pt math32.Vector2) float32 {
	d := l.rEnd.Sub(l.rStart)
	dd := d.LengthSquared() // self inner prod
	if dd == 0 {
		return 0
	}
	return d.Dot(pt.Sub(l.rStart)) / dd
}
