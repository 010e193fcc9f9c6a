// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterx renders paint render items onto an [image.RGBA],
// using golang.org/x/image/vector for path coverage.
package rasterx

import (
	"image"
	"image/draw"

	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/colors/gradient"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/ppath"
	"cogentcore.org/microcharts/paint/render"
	"golang.org/x/image/font"
	"golang.org/x/image/vector"
)

// Faces makes font faces for text rendering, for example
// a [ptext.Shaper]. The renderer caches the faces it makes.
type Faces interface {
	NewFace(sty *render.TextStyle) font.Face
}

// Renderer is the overall renderer for rasterx.
type Renderer struct {
	// Size is the size of the render target.
	Size math32.Vector2

	// Image is the image we are rendering to.
	Image *image.RGBA

	// Faces provides the font faces for text. If nil, a fixed
	// bitmap face is used for all text.
	Faces Faces

	// Raster is the coverage rasterizer, reused across paths.
	Raster *vector.Rasterizer

	// faces are the faces made by Faces, by size and weight.
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float32
	bold bool
}

// New returns a new rasterx Renderer, rendering to given image.
// If img is nil, a new image of the given size is made.
func New(size math32.Vector2, img *image.RGBA) *Renderer {
	psz := size.ToPointCeil()
	if img == nil {
		img = image.NewRGBA(image.Rectangle{Max: psz})
	}
	rs := &Renderer{Size: size, Image: img}
	rs.Raster = vector.NewRasterizer(psz.X, psz.Y)
	return rs
}

// RenderSize returns the size of the render target, in pixels.
func (rs *Renderer) RenderSize() math32.Vector2 {
	return rs.Size
}

// Render is the main rendering function.
func (rs *Renderer) Render(r render.Render) {
	for _, ri := range r {
		switch x := ri.(type) {
		case *render.Path:
			rs.RenderPath(x)
		case *render.Text:
			rs.RenderText(x)
		}
	}
}

// RenderPath fills and then strokes the given path.
// Open subpaths are implicitly closed when filling.
func (rs *Renderer) RenderPath(pt *render.Path) {
	p := pt.Path.Clone().Transform(pt.Transform)
	if pt.Style.HasFill() {
		rs.draw(p, pt.Style.Fill.Color, pt.Style.Fill.Opacity, pt.Transform)
	}
	if pt.Style.HasStroke() {
		sp := p.Stroke(rs.StrokeWidth(pt), ppath.PixelTolerance)
		rs.draw(sp, pt.Style.Stroke.Color, pt.Style.Stroke.Opacity, pt.Transform)
	}
}

// StrokeWidth returns the stroke width of the path, scaled by its transform.
func (rs *Renderer) StrokeWidth(pt *render.Path) float32 {
	dw := pt.Style.Stroke.Width
	if dw == 0 {
		return dw
	}
	scx, scy := pt.Transform.ExtractScale()
	sc := 0.5 * (math32.Abs(scx) + math32.Abs(scy))
	return sc * dw
}

// draw rasterizes the coverage of the given render-space path and
// composites the given paint source through it.
func (rs *Renderer) draw(p ppath.Path, clr image.Image, opacity float32, m math32.Matrix2) {
	if p.Empty() {
		return
	}
	bounds := rs.Image.Bounds()
	rs.Raster.Reset(bounds.Dx(), bounds.Dy())
	rs.Raster.DrawOp = draw.Over
	open := false
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case ppath.MoveTo:
			if open {
				rs.Raster.ClosePath()
			}
			rs.Raster.MoveTo(end.X, end.Y)
			open = true
		case ppath.LineTo:
			rs.Raster.LineTo(end.X, end.Y)
		case ppath.QuadTo:
			cp := s.CP1()
			rs.Raster.QuadTo(cp.X, cp.Y, end.X, end.Y)
		case ppath.CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			rs.Raster.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		case ppath.Close:
			rs.Raster.ClosePath()
			open = false
		}
	}
	if open {
		rs.Raster.ClosePath()
	}
	rs.Raster.Draw(rs.Image, bounds, rs.source(clr, opacity, p.FastBounds(), m), bounds.Min)
}

// source returns the paint source for the given color and opacity.
// Gradients are updated for the given render-space bounds and transform.
func (rs *Renderer) source(clr image.Image, opacity float32, bbox math32.Box2, m math32.Matrix2) image.Image {
	if g, ok := clr.(gradient.Gradient); ok {
		g.Update(opacity, bbox, m)
		return g
	}
	if opacity < 1 && colors.IsUniform(clr) {
		return colors.Uniform(colors.ApplyOpacity(colors.ToUniform(clr), opacity))
	}
	return clr
}
