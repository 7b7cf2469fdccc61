// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/math32"
	"honnef.co/go/curve"
)

// Surface is a 2D drawing target in screen (pixel) coordinates.
// Coordinates increase to the right and downward.
type Surface interface {
	// FillRect fills the given rectangle with the given brush.
	FillRect(box math32.Box2, brush image.Image)

	// FillPath fills the closed areas of the given path with the
	// given brush, using the given fill rule.
	FillPath(path *Path, brush image.Image, rule FillRules)

	// StrokeLine strokes a single straight segment with the given pen.
	StrokeLine(from, to math32.Vector2, pen Pen)

	// StrokeCurve strokes a curve through the given points, using a
	// cardinal spline with the given tension. A tension of 0 draws
	// straight segments between the points.
	StrokeCurve(pts []math32.Vector2, tension float32, pen Pen)

	// PushClip restricts drawing to the intersection of the given box
	// and the current clip region until the matching PopClip.
	PushClip(box math32.Box2)

	// PopClip restores the clip region in effect before the last PushClip.
	PopClip()
}

// FillRules specifies the rule used to decide which areas of
// a self-intersecting path are inside.
type FillRules int32

const (
	// NonZero fills areas with a non-zero winding number.
	NonZero FillRules = iota

	// EvenOdd fills areas with an odd winding number.
	EvenOdd
)

// String returns the name of the fill rule.
func (fr FillRules) String() string {
	if fr == EvenOdd {
		return "EvenOdd"
	}
	return "NonZero"
}

// Dashes are the named dash styles for stroking lines.
type Dashes int32

const (
	// Solid draws a continuous line.
	Solid Dashes = iota

	// Dash draws dashes three widths long.
	Dash

	// Dot draws dots one width long.
	Dot

	// DashDot alternates dashes and dots.
	DashDot

	// DashDotDot alternates a dash and two dots.
	DashDotDot

	// Custom uses the DashOn and DashOff lengths of the [Pen].
	Custom
)

var dashNames = [...]string{"Solid", "Dash", "Dot", "DashDot", "DashDotDot", "Custom"}

// String returns the name of the dash style.
func (d Dashes) String() string {
	if d < 0 || int(d) >= len(dashNames) {
		return "Solid"
	}
	return dashNames[d]
}

// Pen specifies how lines are stroked.
type Pen struct {
	// Color is the stroke color. A nil or transparent color draws nothing.
	Color color.Color

	// Width is the stroke width in pixels.
	Width float32

	// Dashes is the dash style.
	Dashes Dashes

	// DashOn and DashOff are the dash and gap lengths, in pixels,
	// for the [Custom] dash style.
	DashOn, DashOff float32
}

// NewPen returns a solid pen with the given color and width.
func NewPen(clr color.Color, width float32) Pen {
	return Pen{Color: clr, Width: width}
}

// IsVisible returns whether strokes with this pen would mark the surface.
func (pn *Pen) IsVisible() bool {
	return !colors.IsTransparent(pn.Color) && pn.Width > 0
}

// DashPattern returns the on/off lengths in pixels for the dash style,
// scaled by the pen width. It returns nil for solid lines.
func (pn *Pen) DashPattern() []float64 {
	w := float64(max(pn.Width, 1))
	switch pn.Dashes {
	case Dash:
		return []float64{3 * w, w}
	case Dot:
		return []float64{w, w}
	case DashDot:
		return []float64{3 * w, w, w, w}
	case DashDotDot:
		return []float64{3 * w, w, w, w, w, w}
	case Custom:
		if pn.DashOn <= 0 || pn.DashOff <= 0 {
			return nil
		}
		return []float64{float64(pn.DashOn), float64(pn.DashOff)}
	}
	return nil
}

// Stroke returns the stroke style for expanding paths drawn with this pen.
func (pn *Pen) Stroke() curve.Stroke {
	return curve.Stroke{
		Width:       float64(pn.Width),
		Join:        curve.MiterJoin,
		MiterLimit:  4,
		StartCap:    curve.ButtCap,
		EndCap:      curve.ButtCap,
		DashPattern: pn.DashPattern(),
	}
}
