// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"cogentcore.org/chart/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	assert.True(t, IsMissing(Missing))
	assert.False(t, IsMissing(0))
	assert.True(t, IsInvalid(math.NaN()))
	assert.True(t, IsInvalid(math.Inf(-1)))
	assert.True(t, IsInvalid(Missing))
	assert.False(t, IsInvalid(-5))
	assert.True(t, IsLogInvalid(0, true))
	assert.True(t, IsLogInvalid(-1, true))
	assert.False(t, IsLogInvalid(-1, false))
	assert.False(t, IsLogInvalid(0.001, true))

	assert.True(t, NewPointPair(1, Missing).IsMissing())
	assert.True(t, NewPointPair(math.NaN(), 1).IsInvalid())
	assert.False(t, NewPointPair(math.NaN(), 1).IsMissing())
	assert.Equal(t, "(1.5, ?)", NewPointPair(1.5, Missing).String())
}

func TestAddArrays(t *testing.T) {
	pl := NewPointPairList([]float64{1, 2, 3}, []float64{10, 20, 30, 40, 50})
	assert.Equal(t, 5, pl.Len())
	assert.Equal(t, PointPair{3, 30}, pl.At(2))
	assert.True(t, IsMissing(pl.At(3).X))
	assert.True(t, IsMissing(pl.At(4).X))
	assert.Equal(t, 50.0, pl.At(4).Y)

	pl = NewPointPairList(nil, []float64{5, 6})
	assert.Equal(t, PointPair{1, 5}, pl.At(0))
	assert.Equal(t, PointPair{2, 6}, pl.At(1))
}

func TestSortedCleared(t *testing.T) {
	pl := &PointPairList{}
	mutations := []func(){
		func() { pl.Add(PointPair{1, 1}) },
		func() { pl.AddXY(0, 1) },
		func() { pl.AddList(XYs{{5, 5}}) },
		func() { pl.AddArrays([]float64{1}, []float64{2}) },
		func() { pl.Insert(0, PointPair{9, 9}) },
		func() { pl.SetAt(0, PointPair{8, 8}) },
	}
	for i, mut := range mutations {
		pl.Sort()
		assert.True(t, pl.Sorted(), "%d", i)
		mut()
		assert.False(t, pl.Sorted(), "%d", i)
	}
}

func TestSort(t *testing.T) {
	pl := &PointPairList{}
	pl.AddXY(3, 0)
	pl.AddXY(1, 0)
	pl.AddXY(2, 0)
	assert.False(t, pl.Sort())
	assert.True(t, pl.Sorted())
	for i := range 3 {
		assert.Equal(t, float64(i+1), pl.At(i).X)
	}
	assert.True(t, pl.Sort())

	pl = &PointPairList{}
	pl.AddXY(Missing, 1)
	pl.AddXY(2, 1)
	pl.AddXY(1, 2)
	pl.AddXY(1, 3)
	pl.Sort()
	assert.Equal(t, XYs{{1, 2}, {1, 3}, {2, 1}, {Missing, 1}}, XYs(pl.points))
}

func TestSortNaN(t *testing.T) {
	nan := math.NaN()
	pl := NewPointPairList([]float64{5, nan, 1, 4, nan, 2, 3}, []float64{1, 2, 3, 4, 5, 6, 7})
	assert.False(t, pl.Sort())
	assert.True(t, pl.Sorted())
	for i, x := range []float64{1, 2, 3, 4, 5} {
		assert.Equal(t, x, pl.At(i).X)
	}
	assert.True(t, math.IsNaN(pl.At(5).X))
	assert.True(t, math.IsNaN(pl.At(6).X))
	// equal keys keep their order
	assert.Equal(t, 2.0, pl.At(5).Y)
	assert.Equal(t, 5.0, pl.At(6).Y)

	pl = &PointPairList{}
	pl.AddXY(math.Inf(1), 1)
	pl.AddXY(Missing, 2)
	pl.AddXY(math.Inf(-1), 3)
	pl.AddXY(0, 4)
	pl.Sort()
	assert.Equal(t, 0.0, pl.At(0).X)
	assert.Equal(t, []float64{1, 2, 3}, []float64{pl.At(1).Y, pl.At(2).Y, pl.At(3).Y})
}

func TestGetRange(t *testing.T) {
	pl := &PointPairList{}
	xMin, xMax, yMin, yMax := pl.GetRange(false)
	assert.Equal(t, minmax.MaxFloat64, xMin)
	assert.Equal(t, -minmax.MaxFloat64, xMax)
	assert.Greater(t, yMin, yMax)

	pl.AddXY(1, 0)
	pl.AddXY(2, Missing)
	pl.AddXY(3, 5)
	pl.AddXY(Missing, 100)
	pl.AddXY(4, -2)
	xMin, xMax, yMin, yMax = pl.GetRange(false)
	assert.Equal(t, 1.0, xMin)
	assert.Equal(t, 4.0, xMax)
	assert.Equal(t, -2.0, yMin)
	assert.Equal(t, 5.0, yMax)

	xMin, xMax, yMin, yMax = pl.GetRange(true)
	assert.Equal(t, 3.0, xMin)
	assert.Equal(t, 4.0, xMax)
	assert.Equal(t, -2.0, yMin)
	assert.Equal(t, 5.0, yMax)

	x, y := pl.Range(true)
	assert.True(t, x.IsValid())
	assert.Equal(t, 7.0, y.Range())
}

func TestListEdit(t *testing.T) {
	pl := NewPointPairList([]float64{1, 2, 3}, []float64{1, 2, 3})
	pl.Sort()
	cp := pl.Clone()
	pl.RemoveAt(1)
	assert.True(t, pl.Sorted())
	assert.Equal(t, 2, pl.Len())
	assert.Equal(t, 3, cp.Len())
	pl.Insert(1, PointPair{7, 7})
	assert.Equal(t, PointPair{7, 7}, pl.At(1))
	n := 0
	for i, pt := range pl.All() {
		assert.Equal(t, pl.At(i), pt)
		n++
	}
	assert.Equal(t, 3, n)
	pl.Clear()
	assert.Equal(t, 0, pl.Len())
	assert.Equal(t, PointPair{2, 2}, cp.At(1))
}
