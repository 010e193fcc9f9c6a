// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
)

// Fill contains the style properties for filling a path.
type Fill struct {

	// Color is the paint source used for filling; nil means no fill.
	// It is typically an [image.Uniform] or a gradient.
	Color image.Image

	// Opacity is the global alpha multiplier applied to Color.
	Opacity float32
}

// Stroke contains the style properties for stroking a path.
type Stroke struct {

	// Color is the paint source used for stroking; nil means no stroke.
	Color image.Image

	// Opacity is the global alpha multiplier applied to Color.
	Opacity float32

	// Width is the line width.
	Width float32
}

// PathStyle has the styling parameters for rendering a path.
type PathStyle struct {
	Fill   Fill
	Stroke Stroke
}

// Defaults sets default values: no fill, no stroke, full opacity, and
// a 1 unit stroke width.
func (ps *PathStyle) Defaults() {
	ps.Fill = Fill{Opacity: 1}
	ps.Stroke = Stroke{Opacity: 1, Width: 1}
}

// HasFill returns whether the style fills the path.
func (ps *PathStyle) HasFill() bool {
	return ps.Fill.Color != nil && ps.Fill.Opacity > 0
}

// HasStroke returns whether the style strokes the path.
func (ps *PathStyle) HasStroke() bool {
	return ps.Stroke.Color != nil && ps.Stroke.Opacity > 0 && ps.Stroke.Width > 0
}

// TextStyle has the styling parameters for rendering text.
type TextStyle struct {

	// Size is the font size in canvas units (the em size).
	Size float32

	// Bold is whether to use the bold weight.
	Bold bool

	// Color is the text color source; nil draws nothing.
	Color image.Image
}

// Defaults sets default values.
func (ts *TextStyle) Defaults() {
	ts.Size = 16
	ts.Bold = false
}
