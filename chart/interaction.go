// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"cogentcore.org/microcharts/math32"
)

// SelectionTolerance is the distance within which a point is
// considered to be the selected point.
const SelectionTolerance = 0.1

// Interaction is the hit testing state of a chart: the points of the
// last draw, for all series in draw order, and the selected point.
// It is written at the end of a draw and by hit testing; callers must
// serialize the two.
type Interaction struct {

	// Points are the points computed by the last draw.
	Points []math32.Vector2

	// Selected is the selected point, valid if HasSelection.
	Selected math32.Vector2

	// HasSelection is whether a point is selected.
	HasSelection bool
}

// Interactor is a chart with [Interaction] state.
type Interactor interface {
	AsInteraction() *Interaction
}

// AsInteraction returns the interaction state.
func (in *Interaction) AsInteraction() *Interaction {
	return in
}

// SelectNearestPoint selects the point of the last draw nearest to tap.
// Ties go to the first such point in draw order. It returns false and
// leaves the selection unchanged if there are no points.
func (in *Interaction) SelectNearestPoint(tap math32.Vector2) bool {
	if len(in.Points) == 0 {
		return false
	}
	best := 0
	bestDist := in.Points[0].DistanceTo(tap)
	for i := 1; i < len(in.Points); i++ {
		if d := in.Points[i].DistanceTo(tap); d < bestDist {
			best, bestDist = i, d
		}
	}
	in.Selected = in.Points[best]
	in.HasSelection = true
	return true
}

// ClearSelection removes any selection.
func (in *Interaction) ClearSelection() {
	in.Selected = math32.Vector2{}
	in.HasSelection = false
}

// IsSelected returns whether pt is the selected point. It is nil safe.
func (in *Interaction) IsSelected(pt math32.Vector2) bool {
	if in == nil || !in.HasSelection {
		return false
	}
	return pt.DistanceTo(in.Selected) < SelectionTolerance
}
