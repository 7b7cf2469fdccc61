// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"
	"image/color"

	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/colors/gradient"
	"cogentcore.org/chart/math32"
)

// FillTypes are the ways an area can be filled.
type FillTypes int32

const (
	// FillNone does not fill.
	FillNone FillTypes = iota

	// FillSolid fills with the Color.
	FillSolid

	// FillBrush fills with the Brush, or the Color if there is no Brush.
	FillBrush
)

// String returns the name of the fill type.
func (ft FillTypes) String() string {
	switch ft {
	case FillSolid:
		return "Solid"
	case FillBrush:
		return "Brush"
	}
	return "None"
}

// Fill describes how an area is filled. It is a value type:
// use [Fill.Clone] to copy one without sharing its Brush.
type Fill struct {

	// Type is the kind of fill.
	Type FillTypes

	// Color is the fill color for [FillSolid], and the fallback
	// for [FillBrush] without a Brush.
	Color color.Color

	// Brush is a custom brush for [FillBrush]. A [gradient.Gradient]
	// brush is refit to the bounds of each filled area.
	Brush image.Image
}

// NewFill returns a solid [Fill] with the given color.
func NewFill(c color.Color) Fill {
	return Fill{Type: FillSolid, Color: c}
}

// NewFillBrush returns a [Fill] with the given custom brush.
func NewFillBrush(brush image.Image) Fill {
	return Fill{Type: FillBrush, Brush: brush}
}

// NewFillGradient returns a [Fill] with a linear gradient from c1 to c2
// along the given angle in degrees, clockwise from the +X axis.
func NewFillGradient(c1, c2 color.Color, angle float32) Fill {
	return Fill{Type: FillBrush, Color: c1, Brush: gradient.NewLinearAngle(c1, c2, angle)}
}

// IsVisible returns whether the fill is turned on.
func (fl *Fill) IsVisible() bool {
	return fl.Type != FillNone
}

// IsFilled returns whether the fill is turned on and has
// a color or brush to fill with.
func (fl *Fill) IsFilled() bool {
	switch fl.Type {
	case FillSolid:
		return !colors.IsTransparent(fl.Color)
	case FillBrush:
		return fl.Brush != nil || !colors.IsTransparent(fl.Color)
	}
	return false
}

// MakeBrush returns the brush to fill the given box with, or nil if
// there is nothing to fill with. Gradient brushes are copied and fit
// to the box, so the gradient spans it exactly.
func (fl *Fill) MakeBrush(box math32.Box2) image.Image {
	if !fl.IsFilled() {
		return nil
	}
	if fl.Type == FillBrush && fl.Brush != nil {
		if g, ok := fl.Brush.(gradient.Gradient); ok {
			if cp := gradient.CopyOf(g); cp != nil {
				g = cp
			}
			g.Update(box)
			return g
		}
		return fl.Brush
	}
	return colors.Uniform(fl.Color)
}

// Clone returns a copy of the fill that does not share
// a gradient brush with the original.
func (fl *Fill) Clone() Fill {
	res := *fl
	if g, ok := fl.Brush.(gradient.Gradient); ok {
		if cp := gradient.CopyOf(g); cp != nil {
			res.Brush = cp
		}
	}
	return res
}
