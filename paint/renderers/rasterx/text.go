// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterx

import (
	"image"

	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/render"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// face returns the font face to use for the given style, making it
// with Faces on first use.
func (rs *Renderer) face(sty *render.TextStyle) font.Face {
	if rs.Faces == nil {
		return basicfont.Face7x13
	}
	key := faceKey{size: sty.Size, bold: sty.Bold}
	if f, ok := rs.faces[key]; ok {
		return f
	}
	f := rs.Faces.NewFace(sty)
	if f == nil {
		f = basicfont.Face7x13
	}
	if rs.faces == nil {
		rs.faces = map[faceKey]font.Face{}
	}
	rs.faces[key] = f
	return f
}

// isTranslation returns whether m only translates.
func isTranslation(m math32.Matrix2) bool {
	return m.XX == 1 && m.YY == 1 && m.XY == 0 && m.YX == 0
}

// RenderText rasterizes the given Text. Text under a transform that only
// translates is drawn directly; otherwise it is drawn into a temporary
// image in text space and composited through the transform.
func (rs *Renderer) RenderText(txt *render.Text) {
	if txt.Text == "" || txt.Style.Color == nil {
		return
	}
	face := rs.face(&txt.Style)
	m := txt.Transform
	if isTranslation(m) {
		pos := m.MulVector2AsPoint(txt.Position)
		d := &font.Drawer{Dst: rs.Image, Src: txt.Style.Color, Face: face, Dot: pos.ToFixed()}
		d.DrawString(txt.Text)
		return
	}
	bounds, _ := font.BoundString(face, txt.Text)
	r := image.Rect(bounds.Min.X.Floor()-1, bounds.Min.Y.Floor()-1, bounds.Max.X.Ceil()+1, bounds.Max.Y.Ceil()+1)
	if r.Empty() {
		return
	}
	tmp := image.NewRGBA(r)
	d := &font.Drawer{Dst: tmp, Src: txt.Style.Color, Face: face}
	d.DrawString(txt.Text)
	s2d := m.Mul(math32.Translate2D(txt.Position.X, txt.Position.Y))
	draw.BiLinear.Transform(rs.Image, s2d.ToAff3(), tmp, r, draw.Over, nil)
}
