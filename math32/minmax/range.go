// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

// Range32 represents a range of values for plotting, where the min or max
// can optionally be fixed to a given value, overriding whatever is
// computed from the data.
type Range32 struct {
	// Min is the fixed minimum value, used when FixMin is set.
	Min float32

	// Max is the fixed maximum value, used when FixMax is set.
	Max float32

	// FixMin fixes the minimum end of the range to Min.
	FixMin bool

	// FixMax fixes the maximum end of the range to Max.
	FixMax bool
}

// SetMin sets a fixed min value.
func (rr *Range32) SetMin(mn float32) *Range32 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax sets a fixed max value.
func (rr *Range32) SetMax(mx float32) *Range32 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// Range returns Max - Min.
func (rr *Range32) Range() float32 {
	return rr.Max - rr.Min
}

// Clip clips the given value to the fixed ends of the range.
func (rr *Range32) Clip(val float32) float32 {
	if rr.FixMin && val < rr.Min {
		return rr.Min
	}
	if rr.FixMax && val > rr.Max {
		return rr.Max
	}
	return val
}

// Apply returns the range that results from applying the fixed ends
// to the given data range. The returned range always has Max >= Min:
// if a fixed end would invert it, Max is raised to Min.
func (rr *Range32) Apply(data F32) F32 {
	if rr.FixMin {
		data.Min = rr.Min
	}
	if rr.FixMax {
		data.Max = rr.Max
	}
	if data.Max < data.Min {
		data.Max = data.Min
	}
	return data
}
