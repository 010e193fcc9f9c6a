// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfile

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/microcharts/chart"
	"cogentcore.org/microcharts/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlSrc = `
type = "bar"
width = 300.0
height = 200.0
margin = 10.0
max = 20.0
background = "white"
point_size = 6.0
point_mode = "square"
area_alpha = 0

[[series]]
[[series.entries]]
value = 4.0
label = "Mon"
value_label = "4"
color = "#ff0000"

[[series.entries]]
value = 8.0
label = "Tue"
text_color = "navy"
`

const yamlSrc = `
type: bar
width: 300
height: 200
margin: 10
max: 20
background: white
point_size: 6
point_mode: square
area_alpha: 0
series:
  - entries:
      - value: 4
        label: Mon
        value_label: "4"
        color: "#ff0000"
      - value: 8
        label: Tue
        text_color: navy
`

const jsonSrc = `{
  "type": "bar",
  "width": 300,
  "height": 200,
  "margin": 10,
  "max": 20,
  "background": "white",
  "point_size": 6,
  "point_mode": "square",
  "area_alpha": 0,
  "series": [
    {"entries": [
      {"value": 4, "label": "Mon", "value_label": "4", "color": "#ff0000"},
      {"value": 8, "label": "Tue", "text_color": "navy"}
    ]}
  ]
}`

func checkBarChart(t *testing.T, f *File) {
	w, h := f.Size()
	assert.Equal(t, float32(300), w)
	assert.Equal(t, float32(200), h)

	c, err := f.Chart()
	require.NoError(t, err)
	bc, ok := c.(*chart.BarChart)
	require.True(t, ok)
	assert.Equal(t, float32(10), bc.Margin)
	assert.Equal(t, float32(16), bc.LabelTextSize)
	assert.Equal(t, float32(20), bc.MaxValue())
	assert.Equal(t, float32(4), bc.MinValue())
	assert.Equal(t, colors.White, bc.BackgroundColor)
	assert.Equal(t, float32(6), bc.PointSize)
	assert.Equal(t, chart.PointSquare, bc.PointMode)
	assert.Equal(t, uint8(0), bc.BarAreaAlpha)

	require.Len(t, bc.Series, 1)
	s := bc.Series[0]
	require.Len(t, s, 2)
	assert.Equal(t, "Mon", s[0].Label)
	assert.Equal(t, "4", s[0].ValueLabel)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, s[0].Color)
	assert.Equal(t, chart.DefaultTextColor, s[0].TextColor)
	assert.Equal(t, colors.Spaced(1), s[1].Color)
	assert.Equal(t, color.RGBA{0, 0, 128, 255}, s[1].TextColor)
}

func TestReadFormats(t *testing.T) {
	for _, tc := range []struct {
		format Formats
		src    string
	}{
		{TOML, tomlSrc},
		{YAML, yamlSrc},
		{JSON, jsonSrc},
	} {
		t.Run(tc.format.String(), func(t *testing.T) {
			f, err := Read(strings.NewReader(tc.src), tc.format)
			require.NoError(t, err)
			assert.Equal(t, "bar", f.Type)
			checkBarChart(t, f)
		})
	}
}

func TestSaveOpen(t *testing.T) {
	f, err := Read(strings.NewReader(tomlSrc), TOML)
	require.NoError(t, err)
	dir := t.TempDir()
	for _, ext := range []string{".toml", ".yaml", ".json"} {
		fn := filepath.Join(dir, "chart"+ext)
		require.NoError(t, f.Save(fn))
		g, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, f, g, ext)
		checkBarChart(t, g)
	}
}

func TestDefaults(t *testing.T) {
	f, err := Read(strings.NewReader("[[series]]\n[[series.entries]]\nvalue = 1.0\n"), TOML)
	require.NoError(t, err)
	w, h := f.Size()
	assert.Equal(t, float32(DefaultWidth), w)
	assert.Equal(t, float32(DefaultHeight), h)

	c, err := f.Chart()
	require.NoError(t, err)
	lc, ok := c.(*chart.LineChart)
	require.True(t, ok)
	def := chart.NewLineChart()
	assert.Equal(t, def.LineSize, lc.LineSize)
	assert.Equal(t, def.LineMode, lc.LineMode)
	assert.Equal(t, def.LineAreaAlpha, lc.LineAreaAlpha)
	assert.Equal(t, def.PointSize, lc.PointSize)
	assert.Equal(t, colors.Spaced(0), lc.Series[0][0].Color)
	assert.Equal(t, color.RGBA{}, lc.BackgroundColor)
}

func TestChartTypes(t *testing.T) {
	alpha := uint8(7)
	size := float32(5)
	mode := chart.LineStraight
	f := &File{AreaAlpha: &alpha, LineSize: &size, LineMode: &mode}

	f.Type = "Point"
	c, err := f.Chart()
	require.NoError(t, err)
	assert.Equal(t, alpha, c.(*chart.PointChart).PointAreaAlpha)

	f.Type = "line"
	c, err = f.Chart()
	require.NoError(t, err)
	lc := c.(*chart.LineChart)
	assert.Equal(t, alpha, lc.LineAreaAlpha)
	assert.Equal(t, size, lc.LineSize)
	assert.Equal(t, chart.LineStraight, lc.LineMode)
}

func TestErrors(t *testing.T) {
	_, err := (&File{Type: "pie"}).Chart()
	assert.ErrorContains(t, err, `unknown chart type "pie"`)

	_, err = (&File{Background: "notacolor"}).Chart()
	assert.Error(t, err)

	f := &File{Series: []Series{{Entries: []Entry{{Value: 1, Color: "#12"}}}}}
	_, err = f.Chart()
	assert.ErrorContains(t, err, "series 0 entry 0 color")

	_, err = Read(strings.NewReader(`{"point_mode": "triangle"}`), JSON)
	assert.Error(t, err)

	_, err = Read(strings.NewReader(""), None)
	assert.Error(t, err)

	_, err = Open("chart.xml")
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".toml": TOML, "YML": YAML, "yaml": YAML, ".JSON": JSON} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	assert.Equal(t, "Formats(9)", Formats(9).String())
}
