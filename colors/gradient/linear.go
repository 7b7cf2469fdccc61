// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

package gradient

import (
	"image/color"

	"cogentcore.org/chart/math32"
)

// Linear represents a linear gradient. It implements the [image.Image] interface.
type Linear struct {
	Base

	// the starting point of the gradient (x1 and y1 in SVG)
	Start math32.Vector2

	// the ending point of the gradient (x2 and y2 in SVG)
	End math32.Vector2

	// EffStart is the computed effective starting point of the gradient.
	// It should not be set by end users.
	EffStart math32.Vector2

	// EffEnd is the computed effective ending point of the gradient.
	// It should not be set by end users.
	EffEnd math32.Vector2
}

var _ Gradient = &Linear{}

// NewLinear returns a new left-to-right [Linear] gradient.
func NewLinear() *Linear {
	return &Linear{
		Base: NewBase(),
		// default in SVG is LTR
		End: math32.Vec2(1, 0),
	}
}

// NewLinearAngle returns a two-stop [Linear] gradient running from c1 to c2
// along the given angle in degrees, measured clockwise from the +X axis
// in screen coordinates. The gradient spans the object bounding box and
// passes through its center.
func NewLinearAngle(c1, c2 color.Color, angle float32) *Linear {
	l := NewLinear()
	rad := math32.DegToRad(angle)
	dx, dy := math32.Cos(rad), math32.Sin(rad)
	// scale so that the projection of the unit square onto the
	// direction is covered exactly
	ext := (math32.Abs(dx) + math32.Abs(dy)) / 2
	l.Start = math32.Vec2(0.5-dx*ext, 0.5-dy*ext)
	l.End = math32.Vec2(0.5+dx*ext, 0.5+dy*ext)
	l.AddStop(c1, 0)
	l.AddStop(c2, 1)
	return l
}

// AddStop adds a new stop with the given color and position to the linear gradient.
func (l *Linear) AddStop(color color.Color, pos float32, opacity ...float32) *Linear {
	l.Base.AddStop(color, pos, opacity...)
	return l
}

// Update updates the computed fields of the gradient for the
// given object bounding box. It must be called before rendering.
func (l *Linear) Update(box math32.Box2) {
	l.Box = box
	if l.Units == ObjectBoundingBox {
		sz := l.Box.Size()
		l.EffStart = l.Box.Min.Add(sz.Mul(l.Start))
		l.EffEnd = l.Box.Min.Add(sz.Mul(l.End))
	} else {
		l.EffStart = l.Start
		l.EffEnd = l.End
	}
}

// At returns the color of the linear gradient at the given point
func (l *Linear) At(x, y int) color.Color {
	switch len(l.Stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return l.Stops[0].OpacityColor()
	}

	d := l.EffEnd.Sub(l.EffStart)
	dd := d.X*d.X + d.Y*d.Y // self inner prod
	if dd == 0 {
		return l.Stops[0].OpacityColor()
	}

	pt := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
	df := pt.Sub(l.EffStart)
	pos := (d.X*df.X + d.Y*df.Y) / dd
	return l.GetColor(pos)
}
