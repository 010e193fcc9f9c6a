// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"strings"
)

// PointModes are the shapes used to draw point markers.
type PointModes int32

const (
	// PointNone draws no markers.
	PointNone PointModes = iota

	// PointCircle draws filled circles of diameter PointSize.
	PointCircle

	// PointSquare draws filled squares of side PointSize.
	PointSquare
)

var pointModeNames = []string{"none", "circle", "square"}

func (m PointModes) String() string {
	if m >= 0 && int(m) < len(pointModeNames) {
		return pointModeNames[m]
	}
	return fmt.Sprintf("PointModes(%d)", int32(m))
}

// SetString sets the mode from its case-insensitive name.
func (m *PointModes) SetString(s string) error {
	for i, nm := range pointModeNames {
		if strings.EqualFold(s, nm) {
			*m = PointModes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type PointModes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m PointModes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *PointModes) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}

// LineModes are the ways a line chart connects its points.
type LineModes int32

const (
	// LineNone draws no line.
	LineNone LineModes = iota

	// LineStraight draws straight segments between points.
	LineStraight

	// LineSpline draws cubic curves between points, with control
	// points offset horizontally from each point.
	LineSpline
)

var lineModeNames = []string{"none", "straight", "spline"}

func (m LineModes) String() string {
	if m >= 0 && int(m) < len(lineModeNames) {
		return lineModeNames[m]
	}
	return fmt.Sprintf("LineModes(%d)", int32(m))
}

// SetString sets the mode from its case-insensitive name.
func (m *LineModes) SetString(s string) error {
	for i, nm := range lineModeNames {
		if strings.EqualFold(s, nm) {
			*m = LineModes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type LineModes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m LineModes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *LineModes) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}
