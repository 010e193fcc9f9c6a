// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/microcharts/base/iox/imagex"
	"cogentcore.org/microcharts/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const barFile = `
type = "bar"
width = 120.0
height = 100.0
margin = 10.0
background = "white"
area_alpha = 0

[[series]]
[[series.entries]]
value = 10.0
color = "#ff0000"
value_label = "10"
label = "A"

[[series.entries]]
value = 5.0
color = "#0000ff"
label = "B"
`

func writeChart(t *testing.T, src string) string {
	fn := filepath.Join(t.TempDir(), "bars.toml")
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	return fn
}

// decode decodes the image file fn, returning its format name.
func decode(t *testing.T, fn string) (image.Image, string) {
	file, err := os.Open(fn)
	require.NoError(t, err)
	defer file.Close()
	img, name, err := image.Decode(file)
	require.NoError(t, err)
	return img, name
}

func TestConfigPaths(t *testing.T) {
	cfg := &Config{Input: "charts/sales.toml"}
	out, err := cfg.OutputPath()
	require.NoError(t, err)
	assert.Equal(t, "charts/sales.png", out)

	home, err := homedir.Dir()
	require.NoError(t, err)
	cfg.Output = "~/sales.svg"
	out, err = cfg.OutputPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sales.svg"), out)
}

func TestTapPoint(t *testing.T) {
	cfg := &Config{}
	_, ok, err := cfg.TapPoint()
	assert.NoError(t, err)
	assert.False(t, ok)

	cfg.Tap = "12.5, 40"
	p, ok, err := cfg.TapPoint()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(12.5, 40), p)

	for _, tap := range []string{"12", "x,1", "1,y"} {
		cfg.Tap = tap
		_, _, err = cfg.TapPoint()
		assert.Error(t, err, tap)
	}
}

func TestRenderPNG(t *testing.T) {
	in := writeChart(t, barFile)
	cfg := &Config{Input: in, Font: "mono"}
	require.NoError(t, Render(cfg))

	img, name := decode(t, filepath.Join(filepath.Dir(in), "bars.png"))
	assert.Equal(t, "png", name)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	rgba := imagex.AsRGBA(img)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, rgba.RGBAAt(2, 2))
	// the plot area runs from y 39.2, below the value label, to 54
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(30, 47))
}

func TestRenderJPEG(t *testing.T) {
	in := writeChart(t, strings.Replace(barFile, `background = "white"`, "", 1))
	out := filepath.Join(t.TempDir(), "bars.jpg")
	require.NoError(t, Render(&Config{Input: in, Output: out, Font: "mono"}))

	img, name := decode(t, out)
	assert.Equal(t, "jpeg", name)
	// no background, so the corner is flattened to white
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Greater(t, r>>8, uint32(245))
	assert.Greater(t, g>>8, uint32(245))
	assert.Greater(t, b>>8, uint32(245))
}

func TestRenderSVG(t *testing.T) {
	in := writeChart(t, barFile)
	out := filepath.Join(t.TempDir(), "bars.svg")
	cfg := &Config{Input: in, Output: out, Width: 300, Height: 200, Tap: "50,50"}
	require.NoError(t, Render(cfg))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `width="300" height="200"`)
	assert.Contains(t, s, `fill="#FF0000"`)
	assert.Contains(t, s, `fill="#0000FF"`)
	assert.Contains(t, s, `font-family="monospace"`)
	assert.Contains(t, s, ">A</text>")
}

func TestRenderSans(t *testing.T) {
	in := writeChart(t, barFile)
	out := filepath.Join(t.TempDir(), "bars.svg")
	require.NoError(t, Render(&Config{Input: in, Output: out, Font: "sans"}))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Latin Modern Sans")
}

func TestRenderErrors(t *testing.T) {
	in := writeChart(t, barFile)
	assert.Error(t, Render(&Config{Input: in, Font: "serif"}))
	assert.Error(t, Render(&Config{Input: in, Output: filepath.Join(t.TempDir(), "out.pdf")}))
	assert.Error(t, Render(&Config{Input: in, Tap: "1"}))
	assert.Error(t, Render(&Config{Input: filepath.Join(t.TempDir(), "none.toml")}))
	assert.Error(t, Render(&Config{Input: writeChart(t, `type = "pie"`)}))
}

func TestRootCmd(t *testing.T) {
	in := writeChart(t, barFile)
	out := filepath.Join(t.TempDir(), "bars.gif")
	root := NewRootCmd()
	root.SetArgs([]string{"render", in, "-o", out, "--font", "mono", "-q"})
	require.NoError(t, root.Execute())
	_, name := decode(t, out)
	assert.Equal(t, "gif", name)

	root = NewRootCmd()
	root.SetArgs([]string{"render"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	assert.Error(t, root.Execute())
}

func TestWatch(t *testing.T) {
	in := writeChart(t, barFile)
	out := filepath.Join(t.TempDir(), "bars.svg")
	cfg := &Config{Input: in, Output: out}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	renders := make(chan error, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, cfg, func(err error) { renders <- err })
	}()

	wait := func() error {
		select {
		case err := <-renders:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for render")
			return nil
		}
	}
	require.NoError(t, wait())

	// let the watcher start before changing the file
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(in, []byte(barFile+"\n[[series.entries]]\nvalue = 7.0\ncolor = \"#00ff00\"\n"), 0666))
	// the file may be seen partly written first
	for {
		if wait() != nil {
			continue
		}
		b, err := os.ReadFile(out)
		require.NoError(t, err)
		if strings.Contains(string(b), `fill="#00FF00"`) {
			break
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
