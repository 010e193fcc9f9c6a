// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"log/slog"

	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/ppath"
	"cogentcore.org/microcharts/paint/render"
)

// The State holds all the current rendering state information used
// while painting. The [Painter] embeds a pointer to this.
type State struct {

	// Size is the size of the drawing surface.
	Size math32.Vector2

	// Stack is the stack of accumulated transforms. There is always an
	// initial identity transform at the base.
	Stack []math32.Matrix2

	// Render is the current render state that we are building.
	Render render.Render

	// Path is the current path state we are adding to.
	Path ppath.Path
}

// Init initializes the [State] for a surface of the given size,
// discarding any recorded items.
func (rs *State) Init(width, height float32) {
	rs.Size = math32.Vec2(width, height)
	rs.Stack = []math32.Matrix2{math32.Identity2()}
	rs.Render.Reset()
	rs.Path = nil
}

// Transform returns the current accumulated transform (top of Stack).
func (rs *State) Transform() math32.Matrix2 {
	if len(rs.Stack) == 0 {
		return math32.Identity2()
	}
	return rs.Stack[len(rs.Stack)-1]
}

// PushTransform pushes the current transform multiplied by m onto
// the stack, so m applies to coordinates before the existing transform.
func (rs *State) PushTransform(m math32.Matrix2) {
	rs.Stack = append(rs.Stack, rs.Transform().Mul(m))
}

// PopTransform pops the current transform off of the Stack.
func (rs *State) PopTransform() {
	n := len(rs.Stack)
	if n <= 1 {
		slog.Error("programmer error: paint.State.PopTransform: stack is at base starting point")
		return
	}
	rs.Stack = rs.Stack[:n-1]
}
