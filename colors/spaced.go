// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCL space.
// This is useful, for example, for assigning colors to curves.
func Spaced(idx int) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	// blue, red, green, yellow, violet, aqua, orange, blueviolet
	hues := []float64{255, 25, 150, 105, 340, 210, 60, 300}
	loffs := []float64{0, -0.1, 0, 0.05, 0, 0, 0.05, 0}
	lums := []float64{0.55, 0.7, 0.4, 0.6, 0.75}
	chromas := []float64{0.6, 0.6, 0.6, 0.2, 0.2}
	ncats := len(hues)
	ntc := len(lums)
	hi := idx % ncats
	tci := (idx / ncats) % ntc
	c := colorful.Hcl(hues[hi], chromas[tci], loffs[hi]+lums[tci]).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
