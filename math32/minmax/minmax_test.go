// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	var mr F32
	mr.SetInfinity()
	assert.False(t, mr.IsValid())

	for _, v := range []float32{3, -2, 7, 0} {
		mr.FitValInRange(v)
	}
	assert.Equal(t, F32{-2, 7}, mr)
	assert.Equal(t, float32(9), mr.Range())
	assert.Equal(t, float32(2.5), mr.Midpoint())
	assert.True(t, mr.InRange(0))
	assert.False(t, mr.InRange(8))
	assert.Equal(t, float32(7), mr.ClipValue(100))
	assert.Equal(t, float32(0), mr.NormValue(-5))
	assert.InDelta(t, 1, mr.NormValue(7), 1e-6)
	assert.Equal(t, float32(7), mr.ProjValue(1))

	flat := F32{4, 4}
	assert.Equal(t, float32(0), flat.Scale())
}

func TestRange32(t *testing.T) {
	data := F32{-5, 10}

	var rr Range32
	assert.Equal(t, data, rr.Apply(data))

	rr.SetMax(20)
	assert.Equal(t, F32{-5, 20}, rr.Apply(data))
	assert.Equal(t, float32(20), rr.Clip(30))

	rr.SetMin(0)
	assert.Equal(t, F32{0, 20}, rr.Apply(data))
	assert.Equal(t, float32(0), rr.Clip(-3))

	rr = Range32{}
	rr.SetMin(50)
	assert.Equal(t, F32{50, 50}, rr.Apply(data))
}
