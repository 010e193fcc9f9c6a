// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
		err  bool
	}{
		{"#fff", White, false},
		{"f00", color.RGBA{255, 0, 0, 255}, false},
		{"#266EF1", color.RGBA{0x26, 0x6E, 0xF1, 255}, false},
		{"#FF000080", color.RGBA{128, 0, 0, 128}, false},
		{"#12345", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tt := range tests {
		c, err := FromHex(tt.hex)
		if tt.err {
			assert.Error(t, err, tt.hex)
			continue
		}
		assert.NoError(t, err, tt.hex)
		assert.Equal(t, tt.want, c, tt.hex)
	}
}

func TestFromString(t *testing.T) {
	c, err := FromString("CornflowerBlue")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0x64, 0x95, 0xed, 0xff}, c)

	c, err = FromString("#00ff00")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, c)

	c, err = FromString("none")
	assert.NoError(t, err)
	assert.Equal(t, Transparent, c)

	c, err = FromString("")
	assert.NoError(t, err)
	assert.True(t, IsNil(c))

	_, err = FromString("notacolor")
	assert.Error(t, err)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#266EF1", AsHex(color.RGBA{0x26, 0x6E, 0xF1, 255}))
	assert.Equal(t, "#FF000080", AsHex(color.RGBA{128, 0, 0, 128}))
	assert.Equal(t, "nil", AsHex(nil))
}

func TestWithA(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	assert.Equal(t, color.RGBA{32, 0, 0, 32}, WithA(red, 32))
	assert.Equal(t, color.RGBA{}, WithA(red, 0))
	assert.Equal(t, red, WithA(WithA(red, 128), 255))
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, WithAF32(red, 0.5))
}

func TestApplyOpacity(t *testing.T) {
	c := color.RGBA{200, 100, 50, 200}
	assert.Equal(t, c, ApplyOpacity(c, 1))
	assert.Equal(t, color.RGBA{}, ApplyOpacity(c, 0))
	assert.Equal(t, color.RGBA{100, 50, 25, 100}, ApplyOpacity(c, 0.5))
}

func TestBlendRGB(t *testing.T) {
	assert.Equal(t, White, BlendRGB(0, Black, White))
	assert.Equal(t, Black, BlendRGB(100, Black, White))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, BlendRGB(50, Black, White))
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, spacedColors[0], Spaced(0))
	assert.Equal(t, spacedColors[3], Spaced(3))
	assert.NotEqual(t, Spaced(0), Spaced(8))
	for i := 0; i < 40; i++ {
		assert.Equal(t, uint8(255), Spaced(i).A)
	}
}

func TestUniform(t *testing.T) {
	u := Uniform(White)
	assert.True(t, IsUniform(u))
	assert.Equal(t, White, ToUniform(u))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
}
