// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/math32"
	"cogentcore.org/chart/paint"
	"cogentcore.org/chart/plot"
)

// Bar draws filled, framed rectangles, one per bar.
type Bar struct {

	// Color is the frame color. A nil or transparent color draws no frame.
	Color color.Color

	// Width is the frame width in points.
	Width float32

	// On turns the frame on.
	On bool

	// Fill is the fill of the bar interior.
	Fill plot.Fill `copier:"-"`
}

// NewBar returns a new [Bar] with defaults applied.
func NewBar() *Bar {
	br := &Bar{}
	br.Defaults()
	return br
}

// Defaults sets the style from [plot.CurrentSettings].
func (br *Bar) Defaults() {
	st := plot.CurrentSettings
	br.Color = st.Color(st.BarFrameColor)
	br.Width = st.BarFrameWidth
	br.On = true
	br.Fill = plot.NewFill(st.Color(st.BarFillColor))
}

// SetSeries sets the fill color to the given series color from [colors.Spaced].
func (br *Bar) SetSeries(idx int) *Bar {
	br.Fill = plot.NewFill(colors.Spaced(idx))
	return br
}

// Clone returns a deep copy of the bar style.
func (br *Bar) Clone() *Bar {
	cp := &Bar{}
	clone(cp, br)
	cp.Fill = br.Fill.Clone()
	return cp
}

// Pen returns the frame pen for the given scale factor.
func (br *Bar) Pen(scaleFactor float32) paint.Pen {
	return paint.NewPen(br.Color, br.Width*scaleFactor)
}

// Draw draws one bar with the given screen edges. Top and bottom may be
// given in either order. The fill covers the whole rectangle; the frame
// is drawn on the left, top and right edges, and on the bottom edge
// only if fullFrame is set.
func (br *Bar) Draw(sf paint.Surface, left, right, top, bottom, scaleFactor float32, fullFrame bool) {
	if top > bottom {
		top, bottom = bottom, top
	}
	box := math32.B2(left, top, right, bottom).Canon()
	if br.Fill.IsFilled() {
		if brush := br.Fill.MakeBrush(box); brush != nil {
			sf.FillRect(box, brush)
		}
	}
	if !br.On || colors.IsTransparent(br.Color) {
		return
	}
	pen := br.Pen(scaleFactor)
	sf.StrokeLine(math32.Vec2(left, bottom), math32.Vec2(left, top), pen)
	sf.StrokeLine(math32.Vec2(left, top), math32.Vec2(right, top), pen)
	sf.StrokeLine(math32.Vec2(right, top), math32.Vec2(right, bottom), pen)
	if fullFrame {
		sf.StrokeLine(math32.Vec2(right, bottom), math32.Vec2(left, bottom), pen)
	}
}

// DrawBars draws one vertical bar per plottable point, centered on its
// X pixel and barWidth pixels wide, running from the pane baseline to
// the point value on the Y axis selected by isY2. Points that are
// invalid, log invalid, or off screen are skipped.
func (br *Bar) DrawBars(sf paint.Surface, pane *plot.Pane, pts plot.PointList, isY2 bool, barWidth, scaleFactor float32) {
	if pane == nil || isNilList(pts) {
		return
	}
	xax, yax := pane.X, pane.YAxis(isY2)
	base := yax.Transform(pane.Baseline(isY2))
	if !pane.OnScreen(base) {
		return
	}
	hw := barWidth / 2
	for i := range pts.Len() {
		pt := pts.At(i)
		if pt.IsInvalid() || plot.IsLogInvalid(pt.X, xax.IsLog()) || plot.IsLogInvalid(pt.Y, yax.IsLog()) {
			continue
		}
		x, y := xax.Transform(pt.X), yax.Transform(pt.Y)
		if !pane.OnScreen(x) || !pane.OnScreen(y) {
			continue
		}
		br.Draw(sf, x-hw, x+hw, y, base, scaleFactor, true)
	}
}

// isNilList returns whether the list is nil, including a
// nil [plot.PointPairList] pointer.
func isNilList(pts plot.PointList) bool {
	if pts == nil {
		return true
	}
	if pl, ok := pts.(*plot.PointPairList); ok && pl == nil {
		return true
	}
	return false
}
