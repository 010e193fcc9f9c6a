// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the microcharts commands.
package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/microcharts/math32"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of the microcharts commands,
// set from command line flags.
type Config struct {

	// Input is the chart description file.
	Input string

	// Output is the image file to write; the format is given by its
	// extension. It defaults to the input file name with a .png extension.
	Output string

	// Width and Height override the size in the chart file.
	Width  float32
	Height float32

	// Tap, if set, is an "x,y" position whose nearest point is
	// selected before rendering.
	Tap string

	// Font is the font used for text: mono or sans.
	Font string

	// Verbose, VeryVerbose, and Quiet select the log level.
	Verbose     bool
	VeryVerbose bool
	Quiet       bool
}

// InputPath returns the input file name with ~ expanded.
func (cfg *Config) InputPath() (string, error) {
	fn, err := homedir.Expand(cfg.Input)
	if err != nil {
		return "", fmt.Errorf("input %q: %w", cfg.Input, err)
	}
	return fn, nil
}

// OutputPath returns the output file name with ~ expanded, defaulting
// to the input file name with a .png extension.
func (cfg *Config) OutputPath() (string, error) {
	out := cfg.Output
	if out == "" {
		out = strings.TrimSuffix(cfg.Input, filepath.Ext(cfg.Input)) + ".png"
	}
	fn, err := homedir.Expand(out)
	if err != nil {
		return "", fmt.Errorf("output %q: %w", out, err)
	}
	return fn, nil
}

// TapPoint parses [Config.Tap], returning false if it is not set.
func (cfg *Config) TapPoint() (math32.Vector2, bool, error) {
	if cfg.Tap == "" {
		return math32.Vector2{}, false, nil
	}
	xs, ys, ok := strings.Cut(cfg.Tap, ",")
	if !ok {
		return math32.Vector2{}, false, fmt.Errorf("tap %q: expected x,y", cfg.Tap)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return math32.Vector2{}, false, fmt.Errorf("tap %q: %w", cfg.Tap, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return math32.Vector2{}, false, fmt.Errorf("tap %q: %w", cfg.Tap, err)
	}
	return math32.Vec2(float32(x), float32(y)), true, nil
}
