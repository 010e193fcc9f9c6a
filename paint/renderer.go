// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/render"
)

// Renderer is the interface for all backend rendering outputs.
type Renderer interface {
	// RenderSize returns the size of the render target.
	// Direct configuration of the Renderer happens outside of this interface.
	RenderSize() math32.Vector2

	// Render renders the list of render items.
	Render(r render.Render)
}

// Shaper measures text for layout. Boxes are relative to the left
// end of the baseline, so Min.Y is negative (the ascent).
type Shaper interface {
	Measure(text string, sty *render.TextStyle) math32.Box2
}

// MonoShaper is a [Shaper] with a fixed advance for every rune,
// which makes layouts independent of any font and is used for tests
// and headless runs.
type MonoShaper struct{}

// Mono text metrics, as proportions of the font size.
const (
	MonoAdvance = 0.6
	MonoAscent  = 0.8
	MonoDescent = 0.2
)

func (MonoShaper) Measure(text string, sty *render.TextStyle) math32.Box2 {
	if text == "" {
		return math32.Box2{}
	}
	n := float32(len([]rune(text)))
	sz := sty.Size
	return math32.B2(0, -MonoAscent*sz, n*MonoAdvance*sz, MonoDescent*sz)
}
