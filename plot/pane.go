// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/chart/math32"

// DefaultScreenLimit is the largest magnitude, in pixels, that a
// transformed coordinate may have and still be drawn. Points beyond
// it are treated like invalid points.
const DefaultScreenLimit = 100000

// Pane holds the axes and drawing options that a series is drawn with.
type Pane struct {

	// X is the horizontal axis.
	X Scaler

	// Y is the primary vertical axis.
	Y Scaler

	// Y2 is the secondary vertical axis, used for series drawn
	// with isY2 set. If nil, Y is used instead.
	Y2 Scaler

	// IgnoreMissing connects the points on either side of a missing
	// or invalid point instead of breaking the curve there.
	IgnoreMissing bool

	// ScreenLimit is the largest magnitude of a transformed coordinate
	// that is drawn. Zero means [DefaultScreenLimit].
	ScreenLimit float32

	// ScaleFactor multiplies pen widths given in points to get pixels.
	// Zero means 1.
	ScaleFactor float32
}

// NewPane returns a new [Pane] with the given axes and defaults applied.
func NewPane(x, y Scaler) *Pane {
	pn := &Pane{X: x, Y: y}
	pn.Defaults()
	return pn
}

// Defaults sets the options from [CurrentSettings].
func (pn *Pane) Defaults() {
	pn.IgnoreMissing = CurrentSettings.IgnoreMissing
	pn.ScreenLimit = CurrentSettings.ScreenLimit
}

// YAxis returns the Y2 axis if isY2 is set and there is one,
// and the Y axis otherwise.
func (pn *Pane) YAxis(isY2 bool) Scaler {
	if isY2 && pn.Y2 != nil {
		return pn.Y2
	}
	return pn.Y
}

// Limit returns the effective screen limit.
func (pn *Pane) Limit() float32 {
	if pn.ScreenLimit <= 0 {
		return DefaultScreenLimit
	}
	return pn.ScreenLimit
}

// Scale returns the effective scale factor.
func (pn *Pane) Scale() float32 {
	if pn.ScaleFactor <= 0 {
		return 1
	}
	return pn.ScaleFactor
}

// OnScreen returns whether the transformed coordinate can be drawn:
// it is not NaN and its magnitude is within [Pane.Limit].
func (pn *Pane) OnScreen(v float32) bool {
	return !math32.IsNaN(v) && math32.Abs(v) <= pn.Limit()
}

// Baseline returns the data value that area fills and bars extend to
// on the given Y axis: the axis minimum, but never below zero.
func (pn *Pane) Baseline(isY2 bool) float64 {
	return max(pn.YAxis(isY2).Min(), 0)
}
