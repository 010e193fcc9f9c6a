// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/microcharts/math32"
)

// Text is a text rendering render item: a single line of text
// drawn with its baseline origin at Position.
type Text struct {
	// Text is the string to render.
	Text string

	// Position is the left end of the baseline, in the same
	// untransformed units as [Path.Path].
	Position math32.Vector2

	// Style has the font size, weight, and color.
	Style TextStyle

	// Transform is the full accumulated transform in effect when the
	// text was drawn.
	Transform math32.Matrix2
}

// interface assertion.
func (tx *Text) IsRenderItem() {}
