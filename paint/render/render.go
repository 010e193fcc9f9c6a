// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render holds the render items recorded by a painter:
// a renderer-independent list of paths and text to be drawn.
package render

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Item is a union interface for render items: [Path] or [Text].
type Item interface {
	IsRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Paths returns all of the [Path] items in the render list.
func (r Render) Paths() []*Path {
	var ps []*Path
	for _, it := range r {
		if p, ok := it.(*Path); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

// Texts returns all of the [Text] items in the render list.
func (r Render) Texts() []*Text {
	var ts []*Text
	for _, it := range r {
		if t, ok := it.(*Text); ok {
			ts = append(ts, t)
		}
	}
	return ts
}
