// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"log/slog"

	"cogentcore.org/microcharts/colors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/math32/minmax"
	"cogentcore.org/microcharts/paint"
	"cogentcore.org/microcharts/paint/render"
)

// Layout is the geometry of one series for one draw.
type Layout struct {

	// Entries are the entries of the series.
	Entries Series

	// Range is the effective value range.
	Range minmax.F32

	// ValueLabelBoxes are the measured value label boxes, one per entry.
	ValueLabelBoxes []math32.Box2

	// FooterHeight is the height reserved for axis labels.
	FooterHeight float32

	// HeaderHeight is the height reserved for value labels.
	HeaderHeight float32

	// ItemSize is the column width and plot area height.
	ItemSize math32.Vector2

	// Origin is the y coordinate of the zero line.
	Origin float32

	// Points are the entry positions, one per entry.
	Points []math32.Vector2
}

// NewLayout computes the layout of the given non-empty series for
// a surface of the given size.
func (c *Chart) NewLayout(pc *paint.Painter, series Series, rng minmax.F32, width, height float32) *Layout {
	ly := &Layout{Entries: series, Range: rng}
	ly.ValueLabelBoxes = c.MeasureValueLabels(pc, series)
	ly.FooterHeight = c.CalculateFooterHeight(series, ly.ValueLabelBoxes)
	ly.HeaderHeight = c.CalculateHeaderHeight(ly.ValueLabelBoxes)
	ly.ItemSize = c.CalculateItemSize(series, width, height, ly.FooterHeight, ly.HeaderHeight)
	ly.Origin = yOrigin(rng, ly.ItemSize.Y, ly.HeaderHeight)
	ly.Points = c.points(rng, ly.ItemSize, ly.HeaderHeight, series)
	return ly
}

// valueLabelStyle returns the text style for value labels.
func (c *Chart) valueLabelStyle(e *Entry) *render.TextStyle {
	return &render.TextStyle{Size: c.LabelTextSize, Bold: true, Color: colors.Uniform(e.Color)}
}

// labelStyle returns the text style for axis labels.
func (c *Chart) labelStyle(e *Entry) *render.TextStyle {
	return &render.TextStyle{Size: c.LabelTextSize, Color: colors.Uniform(e.TextColor)}
}

// MeasureValueLabels returns the bounding box of each entry's value label,
// with an empty box for an empty value label.
func (c *Chart) MeasureValueLabels(pc *paint.Painter, series Series) []math32.Box2 {
	boxes := make([]math32.Box2, len(series))
	for i := range series {
		e := &series[i]
		if e.ValueLabel == "" {
			continue
		}
		boxes[i] = pc.MeasureText(e.ValueLabel, c.valueLabelStyle(e))
	}
	return boxes
}

// CalculateFooterHeight returns the height reserved below the plot area:
// the margin, plus a label line and another margin if any entry has a label.
func (c *Chart) CalculateFooterHeight(series Series, valueLabelBoxes []math32.Box2) float32 {
	h := c.Margin
	if series.HasLabels() {
		h += c.LabelTextSize + c.Margin
	}
	return h
}

// CalculateHeaderHeight returns the height reserved above the plot area:
// the margin, plus the widest value label and another margin if any
// value label has a positive width.
func (c *Chart) CalculateHeaderHeight(valueLabelBoxes []math32.Box2) float32 {
	h := c.Margin
	if len(valueLabelBoxes) == 0 {
		return h
	}
	var mw float32
	for _, b := range valueLabelBoxes {
		mw = max(mw, b.Size().X)
	}
	if mw > 0 {
		h += mw + c.Margin
	}
	return h
}

// CalculateItemSize returns the column width and plot area height for
// the given series. An empty series has a zero size.
func (c *Chart) CalculateItemSize(series Series, width, height, footerHeight, headerHeight float32) math32.Vector2 {
	n := float32(len(series))
	if n == 0 {
		return math32.Vector2{}
	}
	w := (width - (n+1)*c.Margin) / n
	h := height - c.Margin - footerHeight - headerHeight
	return math32.Vec2(w, h)
}

// CalculateYOrigin returns the y coordinate of the zero line: the top of
// the plot area when all values are at most zero, the bottom when all are
// above zero, and otherwise the proportional zero crossing.
func (c *Chart) CalculateYOrigin(itemHeight, headerHeight float32) float32 {
	return yOrigin(c.ValueRange(), itemHeight, headerHeight)
}

func yOrigin(rng minmax.F32, itemHeight, headerHeight float32) float32 {
	if rng.Max <= 0 {
		return headerHeight
	}
	if rng.Min > 0 {
		return headerHeight + itemHeight
	}
	return headerHeight + (rng.Max/valueSpan(rng))*itemHeight
}

// valueSpan returns the range of values, or 1 if it is zero,
// so that mapping a flat series stays finite.
func valueSpan(rng minmax.F32) float32 {
	r := rng.Range()
	if r == 0 {
		return 1
	}
	return r
}

// CalculatePoints returns the position of each entry: centered in its
// column horizontally, and mapped from the value range onto the plot
// area vertically. The origin does not affect the positions.
func (c *Chart) CalculatePoints(itemSize math32.Vector2, origin, headerHeight float32, series Series) []math32.Vector2 {
	return c.points(c.ValueRange(), itemSize, headerHeight, series)
}

func (c *Chart) points(rng minmax.F32, itemSize math32.Vector2, headerHeight float32, series Series) []math32.Vector2 {
	pts := make([]math32.Vector2, len(series))
	span := valueSpan(rng)
	for i := range series {
		x := c.Margin + itemSize.X/2 + float32(i)*(itemSize.X+c.Margin)
		y := headerHeight + ((rng.Max-series[i].Value)/span)*itemSize.Y
		pts[i] = math32.Vec2(x, y)
	}
	return pts
}

// truncateLabel returns the label, shortened to its first 3 and then its
// first rune while its measured width exceeds width, with its box.
func (c *Chart) truncateLabel(pc *paint.Painter, label string, sty *render.TextStyle, width float32) (string, math32.Box2) {
	b := pc.MeasureText(label, sty)
	for _, n := range []int{3, 1} {
		if b.Size().X <= width {
			break
		}
		rs := []rune(label)
		label = string(rs[:min(n, len(rs))])
		b = pc.MeasureText(label, sty)
	}
	return label, b
}

// DrawLabels draws the axis label of each entry, centered under its point
// near the bottom of the surface, truncated to fit the column width.
func (c *Chart) DrawLabels(pc *paint.Painter, ly *Layout, height float32) {
	y := height - (c.Margin + c.LabelTextSize/2)
	for i := range ly.Entries {
		e := &ly.Entries[i]
		if e.Label == "" {
			continue
		}
		sty := c.labelStyle(e)
		text, b := c.truncateLabel(pc, e.Label, sty, ly.ItemSize.X)
		pc.DrawText(text, ly.Points[i].X-b.Size().X/2, y, sty)
	}
}

// DrawValueLabels draws the value label of each entry in bold, rotated
// 90 degrees so that it reads downward from the top margin, with its
// vertical center on the point's x.
func (c *Chart) DrawValueLabels(pc *paint.Painter, ly *Layout) {
	for i := range ly.Entries {
		e := &ly.Entries[i]
		if e.ValueLabel == "" {
			continue
		}
		h := ly.ValueLabelBoxes[i].Size().Y
		pc.PushTransform(ValueLabelTransform(c.Margin, ly.Points[i].X, h))
		pc.DrawText(e.ValueLabel, 0, 0, c.valueLabelStyle(e))
		pc.PopTransform()
	}
}

// ValueLabelTransform returns the transform for a value label of the given
// box height at x: a translation by (margin, -x + boxHeight/2) followed by
// a 90 degree rotation.
func ValueLabelTransform(margin, x, boxHeight float32) math32.Matrix2 {
	return math32.Rotate2D(math32.DegToRad(90)).Translate(margin, -x+boxHeight/2)
}

// LayoutSeries computes the layout of each non-empty series in order and
// calls draw with it, returning the points of all series in draw order.
func (c *Chart) LayoutSeries(pc *paint.Painter, width, height float32, draw func(ly *Layout)) []math32.Vector2 {
	rng := c.ValueRange()
	var all []math32.Vector2
	for si, s := range c.Series {
		if len(s) == 0 {
			slog.Debug("chart: skipping empty series", "series", si)
			continue
		}
		ly := c.NewLayout(pc, s, rng, width, height)
		draw(ly)
		all = append(all, ly.Points...)
	}
	return all
}
