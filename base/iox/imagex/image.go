// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(src)
}

// Opaque returns an RGBA copy of src composited over white, with every
// pixel fully opaque. Charts with no background color render onto a
// transparent image.
func Opaque(src image.Image) *image.RGBA {
	dst := clone.AsRGBA(src)
	for i := 0; i < len(dst.Pix); i += 4 {
		// premultiplied, so over white adds the uncovered part
		t := 255 - dst.Pix[i+3]
		dst.Pix[i] += t
		dst.Pix[i+1] += t
		dst.Pix[i+2] += t
		dst.Pix[i+3] = 255
	}
	return dst
}
