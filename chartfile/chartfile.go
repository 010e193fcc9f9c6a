// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartfile reads and writes chart descriptions in TOML, YAML,
// or JSON, and builds the described charts.
package chartfile

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/microcharts/base/iox/jsonx"
	"cogentcore.org/microcharts/base/iox/tomlx"
	"cogentcore.org/microcharts/base/iox/yamlx"
	"cogentcore.org/microcharts/chart"
	"cogentcore.org/microcharts/colors"
)

// Default surface size for files that do not set one.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// File is a chart description. Unset optional values keep the
// defaults of the chart type.
type File struct {

	// Type is the chart type: point, bar, or line (the default).
	Type string `toml:"type" yaml:"type" json:"type"`

	// Width and Height are the surface size for rendering the chart.
	Width  float32 `toml:"width,omitempty" yaml:"width,omitempty" json:"width,omitempty"`
	Height float32 `toml:"height,omitempty" yaml:"height,omitempty" json:"height,omitempty"`

	Margin        *float32 `toml:"margin,omitempty" yaml:"margin,omitempty" json:"margin,omitempty"`
	LabelTextSize *float32 `toml:"label_text_size,omitempty" yaml:"label_text_size,omitempty" json:"label_text_size,omitempty"`

	// Min and Max override the value range computed from the entries.
	Min *float32 `toml:"min,omitempty" yaml:"min,omitempty" json:"min,omitempty"`
	Max *float32 `toml:"max,omitempty" yaml:"max,omitempty" json:"max,omitempty"`

	// Background is a hex color or CSS color name.
	Background string `toml:"background,omitempty" yaml:"background,omitempty" json:"background,omitempty"`

	PointSize *float32          `toml:"point_size,omitempty" yaml:"point_size,omitempty" json:"point_size,omitempty"`
	PointMode *chart.PointModes `toml:"point_mode,omitempty" yaml:"point_mode,omitempty" json:"point_mode,omitempty"`
	LineSize  *float32          `toml:"line_size,omitempty" yaml:"line_size,omitempty" json:"line_size,omitempty"`
	LineMode  *chart.LineModes  `toml:"line_mode,omitempty" yaml:"line_mode,omitempty" json:"line_mode,omitempty"`

	// AreaAlpha is the alpha of the point columns, bar tints, or line
	// area, depending on the chart type.
	AreaAlpha *uint8 `toml:"area_alpha,omitempty" yaml:"area_alpha,omitempty" json:"area_alpha,omitempty"`

	Series []Series `toml:"series" yaml:"series" json:"series"`
}

// Series is a series of entries.
type Series struct {
	Entries []Entry `toml:"entries" yaml:"entries" json:"entries"`
}

// Entry is a chart entry. An empty Color is assigned a widely spaced
// color by position in the series; an empty TextColor keeps
// [chart.DefaultTextColor].
type Entry struct {
	Value      float32 `toml:"value" yaml:"value" json:"value"`
	Label      string  `toml:"label,omitempty" yaml:"label,omitempty" json:"label,omitempty"`
	ValueLabel string  `toml:"value_label,omitempty" yaml:"value_label,omitempty" json:"value_label,omitempty"`
	Color      string  `toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	TextColor  string  `toml:"text_color,omitempty" yaml:"text_color,omitempty" json:"text_color,omitempty"`
}

// Open reads a [File] from the given filename, in the format
// given by its extension.
func Open(filename string) (*File, error) {
	f := &File{}
	ft, err := FilenameFormat(filename)
	if err != nil {
		return nil, err
	}
	switch ft {
	case TOML:
		err = tomlx.Open(f, filename)
	case YAML:
		err = yamlx.Open(f, filename)
	case JSON:
		err = jsonx.Open(f, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("chartfile.Open: %w", err)
	}
	return f, nil
}

// Read reads a [File] from the given reader in the given format.
func Read(r io.Reader, format Formats) (*File, error) {
	f := &File{}
	var err error
	switch format {
	case TOML:
		err = tomlx.Read(f, r)
	case YAML:
		err = yamlx.Read(f, r)
	case JSON:
		err = jsonx.Read(f, r)
	default:
		return nil, fmt.Errorf("chartfile.Read: unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("chartfile.Read: %w", err)
	}
	return f, nil
}

// Save writes the file to the given filename, in the format
// given by its extension.
func (f *File) Save(filename string) error {
	ft, err := FilenameFormat(filename)
	if err != nil {
		return err
	}
	switch ft {
	case TOML:
		err = tomlx.Save(f, filename)
	case YAML:
		err = yamlx.Save(f, filename)
	case JSON:
		err = jsonx.Save(f, filename)
	}
	if err != nil {
		return fmt.Errorf("chartfile.Save: %w", err)
	}
	return nil
}

// Size returns the surface size, using the defaults for unset values.
func (f *File) Size() (width, height float32) {
	width, height = f.Width, f.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return
}

// Chart builds the described chart.
func (f *File) Chart() (chart.Charter, error) {
	series, err := f.chartSeries()
	if err != nil {
		return nil, err
	}
	var c chart.Charter
	switch strings.ToLower(strings.TrimSpace(f.Type)) {
	case "point":
		pt := chart.NewPointChart(series...)
		f.setMarkers(&pt.Markers)
		if f.AreaAlpha != nil {
			pt.PointAreaAlpha = *f.AreaAlpha
		}
		c = pt
	case "bar":
		bc := chart.NewBarChart(series...)
		f.setMarkers(&bc.Markers)
		if f.AreaAlpha != nil {
			bc.BarAreaAlpha = *f.AreaAlpha
		}
		c = bc
	case "line", "":
		lc := chart.NewLineChart(series...)
		f.setMarkers(&lc.Markers)
		if f.LineSize != nil {
			lc.LineSize = *f.LineSize
		}
		if f.LineMode != nil {
			lc.LineMode = *f.LineMode
		}
		if f.AreaAlpha != nil {
			lc.LineAreaAlpha = *f.AreaAlpha
		}
		c = lc
	default:
		return nil, fmt.Errorf("chartfile: unknown chart type %q", f.Type)
	}
	if err := f.setChart(c.AsChart()); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *File) setMarkers(mk *chart.Markers) {
	if f.PointSize != nil {
		mk.PointSize = *f.PointSize
	}
	if f.PointMode != nil {
		mk.PointMode = *f.PointMode
	}
}

func (f *File) setChart(c *chart.Chart) error {
	if f.Margin != nil {
		c.Margin = *f.Margin
	}
	if f.LabelTextSize != nil {
		c.LabelTextSize = *f.LabelTextSize
	}
	if f.Min != nil {
		c.Range.SetMin(*f.Min)
	}
	if f.Max != nil {
		c.Range.SetMax(*f.Max)
	}
	if f.Background != "" {
		bg, err := colors.FromString(f.Background)
		if err != nil {
			return fmt.Errorf("chartfile: background: %w", err)
		}
		c.BackgroundColor = bg
	}
	return nil
}

func (f *File) chartSeries() ([]chart.Series, error) {
	all := make([]chart.Series, len(f.Series))
	for si, fs := range f.Series {
		s := make(chart.Series, len(fs.Entries))
		for i, fe := range fs.Entries {
			e := chart.NewEntry(fe.Value)
			e.Label = fe.Label
			e.ValueLabel = fe.ValueLabel
			var err error
			e.Color, err = entryColor(fe.Color, colors.Spaced(i))
			if err != nil {
				return nil, fmt.Errorf("chartfile: series %d entry %d color: %w", si, i, err)
			}
			e.TextColor, err = entryColor(fe.TextColor, chart.DefaultTextColor)
			if err != nil {
				return nil, fmt.Errorf("chartfile: series %d entry %d text color: %w", si, i, err)
			}
			s[i] = e
		}
		all[si] = s
	}
	return all, nil
}

// entryColor parses the given color string, returning def if it is empty.
func entryColor(s string, def color.RGBA) (color.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return colors.FromString(s)
}
