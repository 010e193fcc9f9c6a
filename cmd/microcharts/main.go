// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command microcharts renders chart description files
// to PNG, JPEG, GIF, TIFF, BMP, or SVG images.
package main

import (
	"context"
	"os"

	"cogentcore.org/microcharts/cmd/microcharts/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
