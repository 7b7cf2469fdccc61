// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"testing"

	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/math32"
	"github.com/stretchr/testify/assert"
	"honnef.co/go/curve"
)

func TestPenDashes(t *testing.T) {
	pn := NewPen(colors.Black, 2)
	assert.True(t, pn.IsVisible())
	assert.Nil(t, pn.DashPattern())
	assert.Nil(t, pn.Stroke().DashPattern)

	pn.Dashes = Dash
	assert.Equal(t, []float64{6, 2}, pn.DashPattern())
	pn.Dashes = DashDotDot
	assert.Len(t, pn.DashPattern(), 6)
	pn.Dashes = Custom
	assert.Nil(t, pn.DashPattern())
	pn.DashOn, pn.DashOff = 5, 3
	assert.Equal(t, []float64{5, 3}, pn.DashPattern())
	assert.Equal(t, 2.0, pn.Stroke().Width)
	assert.Equal(t, "Custom", pn.Dashes.String())

	assert.False(t, (&Pen{Color: color.RGBA{}, Width: 1}).IsVisible())
	assert.False(t, (&Pen{Color: colors.Black}).IsVisible())
}

func TestCardinalControls(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}}
	c1, c2 := CardinalControls(pts, 0, 0)
	assert.Equal(t, pts[0], c1)
	assert.Equal(t, pts[1], c2)

	c1, c2 = CardinalControls(pts, 0, 1.5)
	// the first neighbor is clamped to the end point
	assert.InDelta(t, 5, c1.X, 1e-5)
	assert.InDelta(t, 0, c1.Y, 1e-5)
	assert.InDelta(t, 0, c2.X, 1e-5)
	assert.InDelta(t, -5, c2.Y, 1e-5)
}

func TestPathCurve(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}
	p := NewPath().Curve(pts, 0)
	assert.Len(t, p.BezPath, 3)
	for _, el := range p.BezPath[1:] {
		assert.Equal(t, curve.LineToKind, el.Kind)
	}

	p = NewPath().Curve(pts, 0.5)
	assert.Len(t, p.BezPath, 3)
	assert.Equal(t, curve.MoveToKind, p.BezPath[0].Kind)
	assert.Equal(t, curve.CubicToKind, p.BezPath[1].Kind)

	// appending to a non-empty path connects with a line
	p.Curve([]math32.Vector2{{X: 20, Y: 20}}, 0.5)
	assert.Equal(t, curve.LineToKind, p.BezPath[3].Kind)
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	assert.True(t, p.Bounds().IsEmpty())
	p.Polygon([]math32.Vector2{{X: 10, Y: 20}, {X: 30, Y: 5}, {X: 15, Y: 40}})
	assert.Equal(t, math32.B2(10, 5, 30, 40), p.Bounds())
	assert.True(t, p.IsFinite())
	p.LineTo(math32.Inf(1), 0)
	assert.False(t, p.IsFinite())
}

func TestRecorder(t *testing.T) {
	rc := &Recorder{}
	next := &Recorder{}
	rc.Next = next
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 1}}
	rc.PushClip(math32.B2(0, 0, 10, 10))
	rc.StrokeLine(pts[0], pts[1], NewPen(colors.Red, 1))
	rc.StrokeCurve(pts, 0.5, NewPen(colors.Red, 1))
	rc.FillRect(math32.B2(0, 0, 1, 1), colors.Uniform(colors.Blue))
	rc.FillPath(NewPath().Polygon(pts), colors.Uniform(colors.Blue), NonZero)
	rc.PopClip()

	assert.Len(t, rc.Items, 6)
	assert.Len(t, next.Items, 6)
	assert.Len(t, rc.Lines(), 1)
	assert.Len(t, rc.Curves(), 1)
	assert.Len(t, rc.Rects(), 1)
	assert.Len(t, rc.Paths(), 1)

	// recorded points do not alias the caller's slice
	pts[1].X = 99
	assert.Equal(t, float32(1), rc.Curves()[0].Points[1].X)

	rc.Reset()
	assert.Empty(t, rc.Items)
}
