// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/math32/minmax"
)

var (
	ErrInfinity = errors.New("plot: infinite axis range")
	ErrLogRange = errors.New("plot: log axis range must be positive")
)

// Scaler maps data values along one axis onto screen pixels.
type Scaler interface {
	// Transform returns the pixel coordinate for the given data value.
	// The result is not finite for values that the axis cannot map,
	// such as values <= 0 on a log axis.
	Transform(v float64) float32

	// IsLog returns whether the axis uses a logarithmic scale.
	IsLog() bool

	// Min returns the minimum data value shown on the axis.
	Min() float64
}

// Axis is a [Scaler] that maps the data Range linearly, or
// logarithmically when Log is set, onto the pixel span from Start
// to End. End may be less than Start, as is usual for Y axes where
// pixel values grow downward.
type Axis struct {

	// Range is the data range shown on the axis.
	Range minmax.F64

	// Start is the pixel coordinate of Range.Min.
	Start float32

	// End is the pixel coordinate of Range.Max.
	End float32

	// Log selects a base 10 logarithmic scale.
	Log bool
}

var _ Scaler = &Axis{}

// NewAxis returns a new linear [Axis] mapping [lo, hi] onto [start, end] pixels.
func NewAxis(lo, hi float64, start, end float32) *Axis {
	ax := &Axis{Start: start, End: end}
	ax.Range.Set(lo, hi)
	return ax
}

// NewLogAxis returns a new logarithmic [Axis] mapping [lo, hi] onto [start, end] pixels.
func NewLogAxis(lo, hi float64, start, end float32) *Axis {
	ax := NewAxis(lo, hi, start, end)
	ax.Log = true
	return ax
}

func (ax *Axis) IsLog() bool { return ax.Log }

func (ax *Axis) Min() float64 { return ax.Range.Min }

func (ax *Axis) Transform(v float64) float32 {
	lo, hi := ax.Range.Min, ax.Range.Max
	if ax.Log {
		lo, hi, v = math.Log10(lo), math.Log10(hi), math.Log10(v)
	}
	if hi == lo {
		return ax.Start
	}
	return float32(float64(ax.Start) + (v-lo)/(hi-lo)*float64(ax.End-ax.Start))
}

// Validate returns an error if the axis cannot map values:
// an infinite or NaN range, or a log range that is not positive.
func (ax *Axis) Validate() error {
	lo, hi := ax.Range.Min, ax.Range.Max
	if IsInvalid(lo) || IsInvalid(hi) {
		return ErrInfinity
	}
	if ax.Log && (lo <= 0 || hi <= 0) {
		return ErrLogRange
	}
	return nil
}
