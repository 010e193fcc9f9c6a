// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ptext provides a text shaper backed by the embedded
// Latin Modern sans fonts, for measuring and drawing chart labels.
package ptext

import (
	"fmt"
	"sync"

	"cogentcore.org/microcharts/base/errors"
	"cogentcore.org/microcharts/math32"
	"cogentcore.org/microcharts/paint/render"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Shaper measures text and makes font faces using the Latin Modern
// sans regular and bold fonts. It is safe for concurrent use: the faces
// it measures with are only used under its lock, and [Shaper.NewFace]
// returns a face owned by the caller.
type Shaper struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float32
	bold bool
}

// NewShaper returns a new [Shaper], parsing the embedded fonts.
func NewShaper() (*Shaper, error) {
	reg, err := opentype.Parse(lmsans10regular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ptext: parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(lmsans10bold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ptext: parsing bold font: %w", err)
	}
	return &Shaper{regular: reg, bold: bold, faces: map[faceKey]font.Face{}}, nil
}

var (
	defaultShaper     *Shaper
	defaultShaperOnce sync.Once
)

// DefaultShaper returns a shared [Shaper], creating it on first use.
// The embedded fonts are always valid, so errors here are programmer errors.
func DefaultShaper() *Shaper {
	defaultShaperOnce.Do(func() {
		defaultShaper = errors.Must1(NewShaper())
	})
	return defaultShaper
}

// NewFace returns a new font face for the given style, or nil if it
// cannot be made. A face is not safe for concurrent use, so each
// renderer drawing text makes and caches its own.
func (sh *Shaper) NewFace(sty *render.TextStyle) font.Face {
	fnt := sh.regular
	if sty.Bold {
		fnt = sh.bold
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(sty.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if errors.Log(err) != nil {
		return nil
	}
	return face
}

// face returns the measuring face for the given style, caching faces
// by size and weight. It must be called with sh.mu held.
func (sh *Shaper) face(sty *render.TextStyle) font.Face {
	key := faceKey{size: sty.Size, bold: sty.Bold}
	if f, ok := sh.faces[key]; ok {
		return f
	}
	face := sh.NewFace(sty)
	if face != nil {
		sh.faces[key] = face
	}
	return face
}

// Measure returns the ink bounds of the given text relative to the left
// end of its baseline. Empty text has an empty box.
func (sh *Shaper) Measure(text string, sty *render.TextStyle) math32.Box2 {
	if text == "" {
		return math32.Box2{}
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	face := sh.face(sty)
	if face == nil {
		return math32.Box2{}
	}
	bounds, _ := font.BoundString(face, text)
	return math32.B2FromFixed(bounds)
}
