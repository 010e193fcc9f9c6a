// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"testing"

	"cogentcore.org/microcharts/base/tolassert"
	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/ppath"
	"cogentcore.org/microcharts/paint/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	pc := NewPainter(100, 50)
	assert.Equal(t, math32.Vec2(100, 50), pc.Size)

	// no style: nothing recorded
	pc.DrawRectangle(0, 0, 10, 10)
	assert.Len(t, pc.Render, 0)
	assert.True(t, pc.Path.Empty())

	pc.Fill.Color = colors.Uniform(colors.Black)
	pc.DrawRectangle(1, 2, 10, 20)
	require.Len(t, pc.Render, 1)
	p := pc.Render[0].(*render.Path)
	assert.True(t, p.Style.HasFill())
	assert.False(t, p.Style.HasStroke())
	assert.Equal(t, math32.B2(1, 2, 11, 22), p.Path.FastBounds())
	assert.True(t, p.Transform.IsIdentity())

	pc.Fill.Color = nil
	pc.Stroke.Color = colors.Uniform(colors.White)
	pc.Stroke.Width = 3
	pc.MoveTo(0, 0)
	pc.LineTo(10, 0)
	pc.CubeTo(12, 0, 18, 5, 20, 5)
	pc.Draw()
	require.Len(t, pc.Render, 2)
	p = pc.Render[1].(*render.Path)
	assert.Equal(t, []float32{ppath.MoveTo, ppath.LineTo, ppath.CubeTo}, p.Path.Commands())
	assert.Equal(t, float32(3), p.Style.Stroke.Width)

	// recorded paths are not aliased by later drawing
	pc.MoveTo(50, 50)
	pc.LineTo(60, 60)
	pc.Clear()
	assert.Equal(t, []float32{ppath.MoveTo, ppath.LineTo, ppath.CubeTo}, p.Path.Commands())
}

func TestDrawCircle(t *testing.T) {
	pc := NewPainter(100, 100)
	pc.Fill.Color = colors.Uniform(colors.Black)
	pc.DrawCircle(50, 40, 7)
	require.Len(t, pc.Render, 1)
	b := pc.Render[0].(*render.Path).Path.Bounds()
	tolassert.EqualTol(t, 43, b.Min.X, 0.01)
	tolassert.EqualTol(t, 57, b.Max.X, 0.01)
	tolassert.EqualTol(t, 33, b.Min.Y, 0.01)
	tolassert.EqualTol(t, 47, b.Max.Y, 0.01)
}

func TestFillBox(t *testing.T) {
	pc := NewPainter(10, 10)
	pc.MoveTo(1, 1)
	pc.FillBox(math32.Vec2(0, 0), math32.Vec2(10, 10), colors.Uniform(colors.White))
	pc.FillBox(math32.Vec2(0, 0), math32.Vec2(10, 10), nil)
	require.Len(t, pc.Render, 1)
	p := pc.Render[0].(*render.Path)
	assert.True(t, p.Style.HasFill())
	assert.Equal(t, math32.B2(0, 0, 10, 10), p.Path.FastBounds())
	assert.Equal(t, math32.Vec2(1, 1), pc.Path.Pos())
}

func TestTransformStack(t *testing.T) {
	pc := NewPainter(10, 10)
	assert.True(t, pc.Transform().IsIdentity())
	pc.PushTransform(math32.Translate2D(5, 0))
	pc.PushTransform(math32.Scale2D(2, 2))
	pt := pc.Transform().MulVector2AsPoint(math32.Vec2(1, 1))
	assert.Equal(t, math32.Vec2(7, 2), pt)

	sty := &render.TextStyle{Size: 10, Color: colors.Uniform(colors.Black)}
	pc.DrawText("hi", 1, 2, sty)
	require.Len(t, pc.Render, 1)
	tx := pc.Render[0].(*render.Text)
	assert.Equal(t, "hi", tx.Text)
	assert.Equal(t, math32.Vec2(1, 2), tx.Position)
	assert.Equal(t, pc.Transform(), tx.Transform)

	pc.PopTransform()
	pc.PopTransform()
	pc.PopTransform() // logs an error, keeps the base
	assert.Len(t, pc.Stack, 1)
	assert.True(t, pc.Transform().IsIdentity())
}

func TestDrawTextSkips(t *testing.T) {
	pc := NewPainter(10, 10)
	pc.DrawText("", 0, 0, &render.TextStyle{Size: 10, Color: colors.Uniform(colors.Black)})
	pc.DrawText("x", 0, 0, &render.TextStyle{Size: 10})
	assert.Len(t, pc.Render, 0)
}

func TestMonoShaper(t *testing.T) {
	pc := NewPainter(10, 10)
	sty := &render.TextStyle{Size: 10}
	b := pc.MeasureText("abcd", sty)
	tolassert.Equal(t, 24, b.Size().X)
	tolassert.Equal(t, 10, b.Size().Y)
	tolassert.Equal(t, -8, b.Min.Y)
	assert.Equal(t, math32.Box2{}, pc.MeasureText("", sty))

	// runes, not bytes
	tolassert.Equal(t, 12, pc.MeasureText("éü", sty).Size().X)
}

type recordRenderer struct {
	items render.Render
}

func (r *recordRenderer) RenderSize() math32.Vector2 { return math32.Vec2(1, 1) }

func (r *recordRenderer) Render(items render.Render) { r.items = items }

func TestRenderTo(t *testing.T) {
	pc := NewPainter(10, 10)
	pc.FillBox(math32.Vec2(0, 0), math32.Vec2(1, 1), image.White)
	rr := &recordRenderer{}
	pc.RenderTo(rr)
	assert.Len(t, rr.items, 1)
}
