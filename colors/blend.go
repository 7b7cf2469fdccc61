// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/chart/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendTypes are different algorithms (colorspaces) to use for blending
// the color stop values in generating the gradients.
type BlendTypes int32

const (
	// RGB uses raw sRGB component values for blending.
	RGB BlendTypes = iota

	// LinearRGB blends in linear light, which keeps
	// mid-points of bright colors from going muddy.
	LinearRGB

	// Lab blends in the perceptually uniform CIE L*a*b* space.
	Lab
)

// String returns the name of the blend type.
func (bt BlendTypes) String() string {
	switch bt {
	case LinearRGB:
		return "LinearRGB"
	case Lab:
		return "Lab"
	}
	return "RGB"
}

// makeColor converts c to a colorful.Color, reporting false for a nil
// or fully transparent color.
func makeColor(c color.Color) (colorful.Color, bool) {
	if c == nil {
		return colorful.Color{}, false
	}
	return colorful.MakeColor(c)
}

// Blend returns a color that is the given proportion between the first
// and second color. For example, 0.1 indicates to blend 10% of the first
// color and 90% of the second. Blending is done using the given
// blending algorithm on the non-premultiplied colors; opacity is
// always blended linearly. A nil color blends as transparent.
func Blend(bt BlendTypes, p float32, x, y color.Color) color.RGBA {
	p = math32.Clamp(p, 0, 1)
	xa := float32(AsRGBA(x).A)
	ya := float32(AsRGBA(y).A)
	xc, xok := makeColor(x)
	yc, yok := makeColor(y)
	switch {
	case !xok && !yok:
		return color.RGBA{}
	case !xok:
		xc = yc
	case !yok:
		yc = xc
	}
	t := float64(1 - p)
	var bc colorful.Color
	switch bt {
	case LinearRGB:
		bc = xc.BlendLinearRgb(yc, t)
	case Lab:
		bc = xc.BlendLab(yc, t)
	default:
		bc = xc.BlendRgb(yc, t)
	}
	r, g, b := bc.Clamped().RGB255()
	a := p*xa + (1-p)*ya
	return AsRGBA(color.NRGBA{r, g, b, uint8(a + 0.5)})
}
