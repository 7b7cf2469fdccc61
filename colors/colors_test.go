// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(color.RGBA{}))
	assert.True(t, IsNil(color.NRGBA{}))
	assert.False(t, IsNil(Black))
	assert.False(t, IsNil(color.RGBA{0, 0, 0, 1}))
}

func TestIsTransparent(t *testing.T) {
	assert.True(t, IsTransparent(nil))
	assert.True(t, IsTransparent(color.NRGBA{255, 0, 0, 0}))
	assert.False(t, IsTransparent(Red))
}

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"Blue", color.RGBA{0, 0, 255, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"#0f0", color.RGBA{0, 255, 0, 255}},
		{"#ff000000", color.RGBA{}},
		{"none", color.RGBA{}},
		{"transparent", color.RGBA{}},
	}
	for _, test := range tests {
		have, err := FromString(test.in)
		assert.NoError(t, err, test.in)
		assert.Equal(t, test.want, have, test.in)
	}
	_, err := FromString("notacolor")
	assert.Error(t, err)
	_, err = FromHex("#12345")
	assert.Error(t, err)
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff0000", AsHex(Red))
	assert.Equal(t, "#00000000", AsHex(nil))
	c, err := FromHex(AsHex(color.RGBA{10, 20, 30, 255}))
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, c)
}

func TestApplyOpacity(t *testing.T) {
	assert.Equal(t, AsRGBA(White), ApplyOpacity(White, 1))
	assert.Equal(t, color.RGBA{}, ApplyOpacity(White, 0))
	assert.Equal(t, color.RGBA{127, 127, 127, 127}, ApplyOpacity(White, 0.5))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, AsRGBA(White), Blend(RGB, 1, White, Black))
	assert.Equal(t, AsRGBA(Black), Blend(RGB, 0, White, Black))
	mid := Blend(RGB, 0.5, White, Black)
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, uint8(255), mid.A)

	for _, bt := range []BlendTypes{RGB, LinearRGB, Lab} {
		assert.Equal(t, AsRGBA(Red), Blend(bt, 1, Red, Blue), bt.String())
		assert.Equal(t, AsRGBA(Blue), Blend(bt, 0, Red, Blue), bt.String())
	}
	assert.Equal(t, color.RGBA{}, Blend(RGB, 0.5, nil, nil))
	half := Blend(RGB, 0.5, White, nil)
	assert.InDelta(t, 128, int(half.A), 1)
	assert.Equal(t, half.A, half.R)
	assert.Equal(t, AsRGBA(White), Blend(Lab, 1, White, nil))
}

func TestUniform(t *testing.T) {
	img := Uniform(Red)
	assert.True(t, IsUniform(img))
	assert.Equal(t, AsRGBA(Red), ToUniform(img))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
	assert.False(t, IsUniform(image.NewRGBA(image.Rect(0, 0, 1, 1))))
}

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for i := range 8 {
		c := Spaced(i)
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "duplicate color at %d", i)
		seen[c] = true
	}
	assert.Equal(t, Spaced(3), Spaced(-3))
}
