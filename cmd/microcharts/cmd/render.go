// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/microcharts/base/iox/imagex"
	"cogentcore.org/microcharts/chartfile"
	"cogentcore.org/microcharts/chartview"
	"cogentcore.org/microcharts/paint/ptext"
	"cogentcore.org/microcharts/paint/renderers/rasterx"
	"cogentcore.org/microcharts/paint/renderers/svgrender"
)

// Render renders the chart file of the given config to its output file.
func Render(cfg *Config) error {
	in, err := cfg.InputPath()
	if err != nil {
		return err
	}
	out, err := cfg.OutputPath()
	if err != nil {
		return err
	}
	f, err := chartfile.Open(in)
	if err != nil {
		return err
	}
	c, err := f.Chart()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	w, h := f.Size()
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	v := chartview.New(c, w, h)

	var faces rasterx.Faces
	family := "monospace"
	switch strings.ToLower(cfg.Font) {
	case "", "mono":
	case "sans":
		sh := ptext.DefaultShaper()
		v.Shaper = sh
		faces = sh
		family = ""
	default:
		return fmt.Errorf("unknown font %q: must be mono or sans", cfg.Font)
	}

	tap, hasTap, err := cfg.TapPoint()
	if err != nil {
		return err
	}
	if hasTap {
		// points come from a render
		v.Render()
		if !v.Tap(tap.X, tap.Y) {
			slog.Warn("tap selected no point", "tap", tap)
		}
	}

	if strings.EqualFold(filepath.Ext(out), ".svg") {
		sr := svgrender.New(v.Size)
		if family != "" {
			sr.FontFamily = family
		}
		v.Renderer = sr
		v.Render()
		if err := os.WriteFile(out, sr.Source(), 0666); err != nil {
			return err
		}
	} else {
		if _, err := imagex.ExtToFormat(filepath.Ext(out)); err != nil {
			return fmt.Errorf("output %q: %w", out, err)
		}
		rr := rasterx.New(v.Size, nil)
		rr.Faces = faces
		v.Renderer = rr
		v.Render()
		if err := imagex.Save(rr.Image, out); err != nil {
			return err
		}
	}
	slog.Info("rendered chart", "input", in, "output", out, "size", v.Size)
	return nil
}
