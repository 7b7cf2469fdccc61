// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"
)

// Missing is the value used to mark a coordinate that has no data.
// Points with a Missing coordinate are not plotted, and break the
// curve they are part of unless [Pane.IgnoreMissing] is set.
const Missing = math.MaxFloat64

// IsMissing returns whether the value is the [Missing] sentinel.
func IsMissing(v float64) bool {
	return v == Missing
}

// IsInvalid returns whether the value cannot be plotted:
// it is [Missing], NaN, or infinite.
func IsInvalid(v float64) bool {
	return v == Missing || math.IsNaN(v) || math.IsInf(v, 0)
}

// IsLogInvalid returns whether the value cannot be plotted on
// a log axis, which is only the case for values <= 0.
func IsLogInvalid(v float64, isLog bool) bool {
	return isLog && v <= 0
}

// PointPair is one data point.
type PointPair struct {
	X, Y float64
}

// NewPointPair returns a new point with the given coordinates.
func NewPointPair(x, y float64) PointPair {
	return PointPair{X: x, Y: y}
}

// IsMissing returns whether either coordinate is [Missing].
func (pp PointPair) IsMissing() bool {
	return IsMissing(pp.X) || IsMissing(pp.Y)
}

// IsInvalid returns whether either coordinate is invalid, see [IsInvalid].
func (pp PointPair) IsInvalid() bool {
	return IsInvalid(pp.X) || IsInvalid(pp.Y)
}

// String returns the point as "(x, y)", with missing coordinates as ?.
func (pp PointPair) String() string {
	return "(" + coordString(pp.X) + ", " + coordString(pp.Y) + ")"
}

func coordString(v float64) string {
	if IsMissing(v) {
		return "?"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// PointList is the read-only interface to an ordered list of points
// that the renderers draw from.
type PointList interface {
	// Len returns the number of points.
	Len() int

	// At returns the point at the given index.
	At(i int) PointPair
}

// XYs is a minimal [PointList] on a slice of points.
type XYs []PointPair

func (xy XYs) Len() int {
	return len(xy)
}

func (xy XYs) At(i int) PointPair {
	return xy[i]
}
