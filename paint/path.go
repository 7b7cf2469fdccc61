// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"cogentcore.org/chart/math32"
	"honnef.co/go/curve"
)

// Path is a vector path in screen coordinates, built from
// MoveTo, LineTo, CubeTo and Close commands.
type Path struct {
	curve.BezPath
}

// NewPath returns a new empty path.
func NewPath() *Path {
	return &Path{}
}

func pt(x, y float32) curve.Point {
	return curve.Pt(float64(x), float64(y))
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.BezPath.MoveTo(pt(x, y))
	return p
}

// LineTo adds a straight segment to the given point.
func (p *Path) LineTo(x, y float32) *Path {
	p.BezPath.LineTo(pt(x, y))
	return p
}

// CubeTo adds a cubic Bézier segment with the given control points
// ending at (x, y).
func (p *Path) CubeTo(cx1, cy1, cx2, cy2, x, y float32) *Path {
	p.BezPath.CubicTo(pt(cx1, cy1), pt(cx2, cy2), pt(x, y))
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.BezPath.ClosePath()
	return p
}

// IsEmpty returns whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.BezPath) == 0
}

// IsFinite returns whether all of the path coordinates are finite.
func (p *Path) IsFinite() bool {
	return !p.BezPath.IsNaN() && !p.BezPath.IsInf()
}

// Polygon adds a closed subpath through the given points.
func (p *Path) Polygon(pts []math32.Vector2) *Path {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, v := range pts[1:] {
		p.LineTo(v.X, v.Y)
	}
	return p.Close()
}

// Polyline adds straight segments through the given points. If the
// path is empty a subpath is started at the first point, otherwise a
// line is drawn to it from the current point.
func (p *Path) Polyline(pts []math32.Vector2) *Path {
	return p.Curve(pts, 0)
}

// Curve adds a cardinal spline through the given points with the given
// tension. If the path is empty a subpath is started at the first point,
// otherwise a line is drawn to it from the current point.
func (p *Path) Curve(pts []math32.Vector2, tension float32) *Path {
	if len(pts) == 0 {
		return p
	}
	if p.IsEmpty() {
		p.MoveTo(pts[0].X, pts[0].Y)
	} else {
		p.LineTo(pts[0].X, pts[0].Y)
	}
	if tension == 0 {
		for _, v := range pts[1:] {
			p.LineTo(v.X, v.Y)
		}
		return p
	}
	for i := range len(pts) - 1 {
		c1, c2 := CardinalControls(pts, i, tension)
		e := pts[i+1]
		p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
	}
	return p
}

// Bounds returns the bounding box of the path, including the
// curve extrema. It returns an empty box for an empty path.
func (p *Path) Bounds() math32.Box2 {
	if p.IsEmpty() {
		return math32.B2Empty()
	}
	r := p.BezPath.BoundingBox()
	return math32.B2(float32(r.X0), float32(r.Y0), float32(r.X1), float32(r.Y1)).Canon()
}
