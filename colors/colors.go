// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color helpers: emptiness tests,
// parsing of names and hex codes, opacity and blending.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is the fully transparent color, which is also
// the nil initial default color.
var Transparent = color.RGBA{}

// Commonly used named colors.
var (
	Black = colornames.Black
	White = colornames.White
	Red   = colornames.Red
	Green = colornames.Green
	Blue  = colornames.Blue
)

// IsNil returns whether the color is nil or
// the nil initial default color.
func IsNil(c color.Color) bool {
	return c == nil || AsRGBA(c) == color.RGBA{}
}

// IsTransparent returns whether the color is nil or
// has zero opacity, in which case drawing it has no effect.
func IsTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the given color as a hex string, in the form
// #rrggbb, or #rrggbbaa if it is not fully opaque.
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(AsRGBA(c)).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given non-alpha-premultiplied hex color string
// and returns the resulting alpha-premultiplied color. It supports
// the forms #rgb, #rgba, #rrggbb and #rrggbbaa, with the # optional.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	n := color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	return AsRGBA(n), nil
}

// FromString returns a color value from the given string, which can be
// a hex code (starting with #), a CSS color name, or "none" / "transparent"
// for the nil color.
func FromString(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "transparent":
		return color.RGBA{}, nil
	}
	if strings.HasPrefix(s, "#") {
		return FromHex(s)
	}
	return FromName(s)
}

// ApplyOpacity applies the given opacity (0-1) to the given color
// and returns the result. It is different from WithAF32 in that it
// sets the transparency (A) value of the color to the current value
// times the given value instead of just directly overriding it.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	if opacity >= 1 {
		return r
	}
	if opacity <= 0 {
		return color.RGBA{}
	}
	r.R = uint8(float32(r.R) * opacity)
	r.G = uint8(float32(r.G) * opacity)
	r.B = uint8(float32(r.B) * opacity)
	r.A = uint8(float32(r.A) * opacity)
	return r
}
