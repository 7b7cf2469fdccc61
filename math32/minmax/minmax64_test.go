// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var r F64
	r.SetInfinity()
	assert.False(t, r.IsValid())

	assert.True(t, r.FitValInRange(3))
	assert.True(t, r.IsValid())
	assert.Equal(t, F64{3, 3}, r)

	r.FitValInRange(-1)
	r.FitValInRange(7)
	assert.False(t, r.FitValInRange(2))
	assert.Equal(t, F64{-1, 7}, r)
	assert.Equal(t, 8.0, r.Range())
	assert.True(t, r.InRange(0))
	assert.False(t, r.InRange(8))
	assert.Equal(t, 0.5, r.NormValue(3))

	r.Set(2, 2)
	assert.Equal(t, 0.0, r.NormValue(5))
}
