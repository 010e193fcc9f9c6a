// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgrender renders paint render items as an SVG document.
package svgrender

import (
	"bytes"
	"fmt"
	"html"
	"image"
	"image/color"
	"strconv"

	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/colors/gradient"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/render"
	svg "github.com/ajstarks/svgo"
)

// Renderer is the SVG renderer.
type Renderer struct {
	size math32.Vector2

	// FontFamily is the font-family attribute used for all text.
	FontFamily string

	buf    bytes.Buffer
	canvas *svg.SVG
	nGrad  int
}

// New returns a new SVG renderer for a surface of the given size.
func New(size math32.Vector2) *Renderer {
	return &Renderer{size: size, FontFamily: "Latin Modern Sans,Helvetica,Arial,sans-serif"}
}

// RenderSize returns the size of the render target.
func (rs *Renderer) RenderSize() math32.Vector2 {
	return rs.size
}

// Source returns the SVG document produced by the last [Renderer.Render].
func (rs *Renderer) Source() []byte {
	return rs.buf.Bytes()
}

// Render is the main rendering function. It replaces any
// previously rendered document.
func (rs *Renderer) Render(r render.Render) {
	rs.buf.Reset()
	rs.nGrad = 0
	rs.canvas = svg.New(&rs.buf)
	sz := rs.size.ToPointCeil()
	rs.canvas.Start(sz.X, sz.Y)
	for _, ri := range r {
		switch x := ri.(type) {
		case *render.Path:
			rs.RenderPath(x)
		case *render.Text:
			rs.RenderText(x)
		}
	}
	rs.canvas.End()
}

// RenderPath writes the given path as a path element, wrapped in a
// transform group when the path has a transform.
func (rs *Renderer) RenderPath(pt *render.Path) {
	if pt.Path.Empty() {
		return
	}
	sty := &pt.Style
	var attrs []string
	if sty.HasFill() {
		attrs = append(attrs, rs.paintAttrs("fill", sty.Fill.Color, sty.Fill.Opacity)...)
	} else {
		attrs = append(attrs, `fill="none"`)
	}
	if sty.HasStroke() {
		attrs = append(attrs, rs.paintAttrs("stroke", sty.Stroke.Color, sty.Stroke.Opacity)...)
		attrs = append(attrs, fmt.Sprintf(`stroke-width="%s"`, num(sty.Stroke.Width)),
			`stroke-linecap="round"`, `stroke-linejoin="round"`)
	}
	identity := pt.Transform.IsIdentity()
	if !identity {
		rs.canvas.Gtransform(pt.Transform.String())
	}
	rs.canvas.Path(pt.Path.ToSVG(), attrs...)
	if !identity {
		rs.canvas.Gend()
	}
}

// RenderText writes the given text as a text element at the origin of a
// group that carries the text's transform and position.
func (rs *Renderer) RenderText(txt *render.Text) {
	if txt.Text == "" || txt.Style.Color == nil {
		return
	}
	m := txt.Transform.Mul(math32.Translate2D(txt.Position.X, txt.Position.Y))
	attrs := rs.paintAttrs("fill", txt.Style.Color, 1)
	attrs = append(attrs, fmt.Sprintf(`font-size="%s"`, num(txt.Style.Size)),
		fmt.Sprintf(`font-family="%s"`, html.EscapeString(rs.FontFamily)))
	if txt.Style.Bold {
		attrs = append(attrs, `font-weight="bold"`)
	}
	rs.canvas.Gtransform(m.String())
	rs.canvas.Text(0, 0, txt.Text, attrs...)
	rs.canvas.Gend()
}

// paintAttrs returns the attributes for painting with the given source,
// as fill or stroke. Gradients are written as definitions and referenced.
func (rs *Renderer) paintAttrs(kind string, clr image.Image, opacity float32) []string {
	if g, ok := clr.(*gradient.Linear); ok {
		id := rs.writeLinear(g, opacity)
		return []string{fmt.Sprintf(`%s="url(#%s)"`, kind, id)}
	}
	c := colors.ToUniform(clr)
	attrs := []string{fmt.Sprintf(`%s="%s"`, kind, colorHex(c))}
	op := opacity * float32(c.A) / 255
	if op < 1 {
		attrs = append(attrs, fmt.Sprintf(`%s-opacity="%s"`, kind, num(op)))
	}
	return attrs
}

// writeLinear writes the given gradient as a linearGradient definition
// in user space coordinates, returning its id.
func (rs *Renderer) writeLinear(g *gradient.Linear, opacity float32) string {
	rs.nGrad++
	id := "grad" + strconv.Itoa(rs.nGrad)
	units := "userSpaceOnUse"
	if g.Units == gradient.ObjectBoundingBox {
		units = "objectBoundingBox"
	}
	w := rs.canvas.Writer
	rs.canvas.Def()
	fmt.Fprintf(w, `<linearGradient id="%s" gradientUnits="%s" x1="%s" y1="%s" x2="%s" y2="%s"`,
		id, units, num(g.Start.X), num(g.Start.Y), num(g.End.X), num(g.End.Y))
	if !g.Transform.IsIdentity() {
		fmt.Fprintf(w, ` gradientTransform="%s"`, g.Transform.String())
	}
	fmt.Fprintln(w, ">")
	for _, st := range g.Stops {
		c := colors.AsRGBA(st.Color)
		op := opacity * st.Opacity * float32(c.A) / 255
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			num(st.Pos), colorHex(c), num(op))
	}
	fmt.Fprintln(w, "</linearGradient>")
	rs.canvas.DefEnd()
	return id
}

// colorHex returns the opaque hex form of c, un-premultiplying its channels.
func colorHex(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return colors.AsHex(n)
}

func num(x float32) string {
	return strconv.FormatFloat(float64(x), 'g', 7, 32)
}
