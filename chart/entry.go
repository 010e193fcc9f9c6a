// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"cogentcore.org/microcharts/colors"
)

// Entry is one labeled value in a [Series].
type Entry struct {

	// Value is the plotted value.
	Value float32

	// Label is the axis label drawn under the entry; empty means none.
	Label string

	// ValueLabel is the display text for the value, drawn rotated
	// above the plot area; empty means none.
	ValueLabel string

	// Color is the color of the entry marker, bar, and line segment.
	Color color.RGBA

	// TextColor is the color of the axis label.
	TextColor color.RGBA
}

// DefaultTextColor is the label color used by [NewEntry].
var DefaultTextColor = color.RGBA{128, 128, 128, 255}

// NewEntry returns a new [Entry] with the given value, drawn in black
// with gray label text.
func NewEntry(value float32) Entry {
	return Entry{Value: value, Color: colors.Black, TextColor: DefaultTextColor}
}

// Series is an ordered sequence of entries, drawn left to right.
type Series []Entry

// HasLabels returns whether any entry has a non-empty label.
func (s Series) HasLabels() bool {
	for i := range s {
		if s[i].Label != "" {
			return true
		}
	}
	return false
}
