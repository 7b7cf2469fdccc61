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

// StepKind specifies a form of a connection of two consecutive points.
type StepKind int32

const (
	// NoStep connects two points by simple line
	NoStep StepKind = iota

	// ForwardStep connects two points by following lines: horizontal, vertical.
	// The previous Y value is held until the new X.
	ForwardStep

	// RearwardStep connects two points by following lines: vertical, horizontal.
	// The new Y value is taken at the previous X.
	RearwardStep
)

// String returns the name of the step kind.
func (sk StepKind) String() string {
	switch sk {
	case ForwardStep:
		return "ForwardStep"
	case RearwardStep:
		return "RearwardStep"
	}
	return "NoStep"
}

// Line draws a series of points as connected segments, stair steps,
// or a smoothed curve, optionally filling the area down to the baseline.
type Line struct {

	// Color is the line color. A nil or transparent color draws nothing.
	Color color.Color

	// Width is the line width in points.
	Width float32

	// Dashes is the dash style of the line.
	Dashes paint.Dashes

	// On turns the line on.
	On bool

	// StepStyle is the kind of the step line. It is ignored when Smooth is set.
	StepStyle StepKind

	// Smooth draws a cardinal spline through the points.
	Smooth bool

	// Tension is the smoothing tension: 0 is none, and around 1 is
	// pronounced. Larger values give odd looking curves.
	Tension float32

	// Fill is the fill of the area between the line and the baseline.
	Fill plot.Fill `copier:"-"`
}

// NewLine returns a new [Line] with defaults applied.
func NewLine() *Line {
	ln := &Line{}
	ln.Defaults()
	return ln
}

// Defaults sets the style from [plot.CurrentSettings].
func (ln *Line) Defaults() {
	st := plot.CurrentSettings
	ln.Color = st.Color(st.LineColor)
	ln.Width = st.LineWidth
	ln.Dashes = paint.Solid
	ln.On = true
	ln.StepStyle = NoStep
	ln.Smooth = false
	ln.Tension = st.Tension
	ln.Fill = plot.Fill{}
}

// SetSeries sets the line color to the given series color from [colors.Spaced].
func (ln *Line) SetSeries(idx int) *Line {
	ln.Color = colors.Spaced(idx)
	return ln
}

// Clone returns a deep copy of the line style.
func (ln *Line) Clone() *Line {
	cp := &Line{}
	clone(cp, ln)
	cp.Fill = ln.Fill.Clone()
	return cp
}

// Pen returns the line pen for the given scale factor.
func (ln *Line) Pen(scaleFactor float32) paint.Pen {
	return paint.Pen{Color: ln.Color, Width: ln.Width * scaleFactor, Dashes: ln.Dashes}
}

// visible returns whether the line is turned on with a color.
func (ln *Line) visible() bool {
	return ln.On && !colors.IsTransparent(ln.Color)
}

// stepStyle returns the step kind in effect, which is NoStep when smoothing.
func (ln *Line) stepStyle() StepKind {
	if ln.Smooth {
		return NoStep
	}
	return ln.StepStyle
}

// Draw draws the points, as a smoothed or filled curve if Smooth is set
// or the fill is visible, and as individual segments otherwise.
func (ln *Line) Draw(sf paint.Surface, pane *plot.Pane, pts plot.PointList, isY2 bool) {
	if ln.Smooth || ln.Fill.IsVisible() {
		ln.DrawSmoothFilledCurve(sf, pane, pts, isY2)
		return
	}
	ln.DrawCurve(sf, pane, pts, isY2)
}

// DrawSegment strokes one segment with the line pen.
func (ln *Line) DrawSegment(sf paint.Surface, x1, y1, x2, y2, scaleFactor float32) {
	if !ln.visible() {
		return
	}
	sf.StrokeLine(math32.Vec2(x1, y1), math32.Vec2(x2, y2), ln.Pen(scaleFactor))
}

// DrawCurve draws the points as connected segments, or stair steps
// according to StepStyle. Points that are invalid, log invalid, or
// transform off screen break the curve, unless the pane ignores
// missing points, in which case the points on either side are joined.
// A single bad point between two good ones therefore draws no
// connector at all when missing points are not ignored.
func (ln *Line) DrawCurve(sf paint.Surface, pane *plot.Pane, pts plot.PointList, isY2 bool) {
	if !ln.visible() || pane == nil || isNilList(pts) {
		return
	}
	xax, yax := pane.X, pane.YAxis(isY2)
	xLog, yLog := xax.IsLog(), yax.IsLog()
	pen := ln.Pen(pane.Scale())
	step := ln.stepStyle()

	var last math32.Vector2
	lastBad := true
	for i := range pts.Len() {
		pt := pts.At(i)
		if pt.IsInvalid() || plot.IsLogInvalid(pt.X, xLog) || plot.IsLogInvalid(pt.Y, yLog) {
			lastBad = lastBad || !pane.IgnoreMissing
			continue
		}
		cur := math32.Vec2(xax.Transform(pt.X), yax.Transform(pt.Y))
		if !pane.OnScreen(cur.X) || !pane.OnScreen(cur.Y) {
			lastBad = lastBad || !pane.IgnoreMissing
			continue
		}
		if !lastBad {
			switch step {
			case ForwardStep:
				corner := math32.Vec2(cur.X, last.Y)
				sf.StrokeLine(last, corner, pen)
				sf.StrokeLine(corner, cur, pen)
			case RearwardStep:
				corner := math32.Vec2(last.X, cur.Y)
				sf.StrokeLine(last, corner, pen)
				sf.StrokeLine(corner, cur, pen)
			default:
				sf.StrokeLine(last, cur, pen)
			}
		}
		last = cur
		lastBad = false
	}
}

// BuildPointsArray returns the screen points for the valid points of
// the list, with the step corners inserted for step styles, along with
// their bounding box. It returns false if the line is not drawn or
// there is no list. Only missing, NaN and infinite points are skipped.
func (ln *Line) BuildPointsArray(pane *plot.Pane, pts plot.PointList, isY2 bool) ([]math32.Vector2, math32.Box2, bool) {
	box := math32.B2Empty()
	if !ln.visible() || pane == nil || isNilList(pts) {
		return nil, box, false
	}
	xax, yax := pane.X, pane.YAxis(isY2)
	step := ln.stepStyle()
	var res []math32.Vector2
	for i := range pts.Len() {
		pt := pts.At(i)
		if pt.IsInvalid() {
			continue
		}
		cur := math32.Vec2(xax.Transform(pt.X), yax.Transform(pt.Y))
		if n := len(res); n > 0 && step != NoStep {
			prev := res[n-1]
			var corner math32.Vector2
			if step == ForwardStep {
				corner = math32.Vec2(cur.X, prev.Y)
			} else {
				corner = math32.Vec2(prev.X, cur.Y)
			}
			res = append(res, corner)
		}
		res = append(res, cur)
		box.ExpandByPoint(cur)
	}
	return res, box, true
}

// CloseCurve returns the screen points with three points appended that
// close them down to the baseline value yMin on the Y axis selected by
// isY2: below the last point, below the first point, and the first
// point itself. The points are returned unchanged without a pane.
func (ln *Line) CloseCurve(pane *plot.Pane, pts []math32.Vector2, isY2 bool, yMin float64) []math32.Vector2 {
	if len(pts) == 0 || pane == nil {
		return pts
	}
	base := pane.YAxis(isY2).Transform(yMin)
	first, last := pts[0], pts[len(pts)-1]
	return append(pts, math32.Vec2(last.X, base), math32.Vec2(first.X, base), first)
}

// DrawSmoothFilledCurve draws the points as one curve, smoothed with
// Tension if Smooth is set. If the fill is visible, the area between
// the curve and the pane baseline is filled first.
func (ln *Line) DrawSmoothFilledCurve(sf paint.Surface, pane *plot.Pane, pts plot.PointList, isY2 bool) {
	spts, _, ok := ln.BuildPointsArray(pane, pts, isY2)
	if !ok || len(spts) < 2 {
		return
	}
	tension := float32(0)
	if ln.Smooth {
		tension = ln.Tension
	}
	n := len(spts)
	if ln.Fill.IsVisible() {
		closed := ln.CloseCurve(pane, spts[:n:n], isY2, pane.Baseline(isY2))
		if brush := ln.Fill.MakeBrush(math32.B2FromPoints(closed...)); brush != nil {
			path := paint.NewPath().Curve(closed[:n], tension)
			for _, p := range closed[n:] {
				path.LineTo(p.X, p.Y)
			}
			path.Close()
			sf.FillPath(path, brush, paint.NonZero)
		}
	}
	sf.StrokeCurve(spts, tension, ln.Pen(pane.Scale()))
}
