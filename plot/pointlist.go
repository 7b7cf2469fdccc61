// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"iter"
	"slices"

	"cogentcore.org/chart/math32/minmax"
)

// PointPairList is an ordered, mutable list of points that tracks
// whether it is currently sorted by X. Insertion order is preserved
// unless [PointPairList.Sort] is called.
type PointPairList struct {
	points []PointPair
	sorted bool
}

var _ PointList = &PointPairList{}

// NewPointPairList returns a new list from the given x and y arrays,
// as in [PointPairList.AddArrays].
func NewPointPairList(x, y []float64) *PointPairList {
	pl := &PointPairList{}
	pl.AddArrays(x, y)
	return pl
}

// Len returns the number of points.
func (pl *PointPairList) Len() int {
	return len(pl.points)
}

// At returns the point at the given index.
func (pl *PointPairList) At(i int) PointPair {
	return pl.points[i]
}

// SetAt replaces the point at the given index.
func (pl *PointPairList) SetAt(i int, pt PointPair) {
	pl.points[i] = pt
	pl.sorted = false
}

// Sorted returns whether the list is known to be sorted by X.
// Any mutation clears it.
func (pl *PointPairList) Sorted() bool {
	return pl.sorted
}

// All returns an iterator over the index and point of each entry.
func (pl *PointPairList) All() iter.Seq2[int, PointPair] {
	return slices.All(pl.points)
}

// Add appends the given point.
func (pl *PointPairList) Add(pt PointPair) {
	pl.points = append(pl.points, pt)
	pl.sorted = false
}

// AddXY appends a point with the given coordinates.
func (pl *PointPairList) AddXY(x, y float64) {
	pl.Add(PointPair{x, y})
}

// AddList appends all of the points in the given list.
func (pl *PointPairList) AddList(list PointList) {
	if list == nil {
		return
	}
	n := list.Len()
	pl.points = slices.Grow(pl.points, n)
	for i := range n {
		pl.points = append(pl.points, list.At(i))
	}
	pl.sorted = false
}

// AddArrays appends one point per index of the longer of the two arrays.
// Entries beyond the end of the shorter array are [Missing]. A nil
// array is replaced by the ordinals 1, 2, 3 ...
func (pl *PointPairList) AddArrays(x, y []float64) {
	n := max(len(x), len(y))
	pl.points = slices.Grow(pl.points, n)
	for i := range n {
		pl.points = append(pl.points, PointPair{arrayValue(x, i), arrayValue(y, i)})
	}
	pl.sorted = false
}

func arrayValue(vals []float64, i int) float64 {
	switch {
	case vals == nil:
		return float64(i + 1)
	case i < len(vals):
		return vals[i]
	}
	return Missing
}

// Insert inserts the given point at the given index.
func (pl *PointPairList) Insert(i int, pt PointPair) {
	pl.points = slices.Insert(pl.points, i, pt)
	pl.sorted = false
}

// RemoveAt removes the point at the given index.
// Removal keeps the remaining order, so it does not clear [PointPairList.Sorted].
func (pl *PointPairList) RemoveAt(i int) {
	pl.points = slices.Delete(pl.points, i, i+1)
}

// Clear removes all of the points.
func (pl *PointPairList) Clear() {
	pl.points = pl.points[:0]
	pl.sorted = false
}

// Clone returns a deep copy of the list.
func (pl *PointPairList) Clone() *PointPairList {
	return &PointPairList{points: slices.Clone(pl.points), sorted: pl.sorted}
}

// Sort sorts the list in ascending order of X, keeping the order of
// points with equal X, and placing points with an invalid X
// (missing, NaN or infinite) last.
// It returns true without doing anything if the list was already
// sorted, and false otherwise, in which case the list is now sorted.
func (pl *PointPairList) Sort() bool {
	if pl.sorted {
		return true
	}
	slices.SortStableFunc(pl.points, func(a, b PointPair) int {
		am, bm := IsInvalid(a.X), IsInvalid(b.X)
		switch {
		case am && bm:
			return 0
		case am:
			return 1
		case bm:
			return -1
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	pl.sorted = true
	return false
}

// GetRange returns the minimum and maximum X and Y values over the
// points without a [Missing] coordinate. If ignoreInitial is true,
// leading points are skipped until the first one with a Y that is
// neither zero nor Missing. With no qualifying points, each minimum is
// [minmax.MaxFloat64] and each maximum is its negative.
func (pl *PointPairList) GetRange(ignoreInitial bool) (xMin, xMax, yMin, yMax float64) {
	x, y := pl.Range(ignoreInitial)
	return x.Min, x.Max, y.Min, y.Max
}

// Range is the structured form of [PointPairList.GetRange].
func (pl *PointPairList) Range(ignoreInitial bool) (x, y minmax.F64) {
	x.SetInfinity()
	y.SetInfinity()
	started := !ignoreInitial
	for _, pt := range pl.points {
		if !started {
			if pt.Y == 0 || IsMissing(pt.Y) {
				continue
			}
			started = true
		}
		if pt.IsMissing() {
			continue
		}
		x.FitValInRange(pt.X)
		y.FitValInRange(pt.Y)
	}
	return
}
