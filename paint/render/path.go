// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/ppath"
)

// Path is a path drawing render [Item]: responsible for all vector graphics
// drawing functionality.
type Path struct {
	// Path specifies the shape(s) to be drawn, using commands:
	// MoveTo, LineTo, QuadTo, CubeTo, and Close.
	// Each command has the applicable coordinates appended after it,
	// like the SVG path element. The coordinates are in the original
	// units as specified in the Paint drawing commands, without any
	// transforms applied. See [Path.Transform].
	Path ppath.Path

	// Style has the fill and stroke parameters.
	Style PathStyle

	// Transform is the full accumulated transform in effect when the
	// path was drawn.
	Transform math32.Matrix2
}

// interface assertion.
func (p *Path) IsRenderItem() {}
