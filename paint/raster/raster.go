// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [paint.Surface] that renders onto an
// [image.RGBA], using golang.org/x/image/vector for scan conversion
// and honnef.co/go/curve for stroke expansion, dashing and flattening.
package raster

import (
	"image"
	"image/color"
	"iter"
	"log/slog"

	"cogentcore.org/chart/base/iox/imagex"
	"cogentcore.org/chart/colors"
	"cogentcore.org/chart/math32"
	"cogentcore.org/chart/paint"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// DefaultTolerance is the default maximum distance, in pixels, between
// a curve and the line segments used to approximate it.
const DefaultTolerance = 0.1

// Surface is a [paint.Surface] that draws onto an [image.RGBA].
// It is not safe for concurrent use.
type Surface struct {

	// Tolerance is the curve flattening and stroking accuracy in pixels.
	Tolerance float64

	image *image.RGBA
	ras   vector.Rasterizer
	mask  *image.Alpha
	clips []image.Rectangle
}

var _ paint.Surface = &Surface{}

// New returns a new [Surface] drawing onto a new transparent
// [image.RGBA] of the given size.
func New(width, height int) *Surface {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage returns a new [Surface] that draws directly onto the given image.
func NewFromImage(img *image.RGBA) *Surface {
	return &Surface{Tolerance: DefaultTolerance, image: img}
}

// Image returns the image being drawn onto.
func (s *Surface) Image() *image.RGBA {
	return s.image
}

// Clip returns the current clip rectangle, in image pixels.
func (s *Surface) Clip() image.Rectangle {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.image.Bounds()
}

// Clear fills the whole image with the given color, ignoring the clip.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.image, s.image.Bounds(), colors.Uniform(c), image.Point{}, draw.Src)
}

// SavePNG saves the current image to the given filename.
func (s *Surface) SavePNG(filename string) error {
	return imagex.Save(s.image, filename)
}

func (s *Surface) PushClip(box math32.Box2) {
	s.clips = append(s.clips, box.ToRect().Intersect(s.Clip()))
}

func (s *Surface) PopClip() {
	n := len(s.clips)
	if n == 0 {
		slog.Debug("raster.Surface.PopClip: clip stack is empty")
		return
	}
	s.clips = s.clips[:n-1]
}

func (s *Surface) FillRect(box math32.Box2, brush image.Image) {
	if box.IsEmpty() {
		return
	}
	s.FillPath(paint.NewPath().Polygon([]math32.Vector2{
		box.Min, {X: box.Max.X, Y: box.Min.Y}, box.Max, {X: box.Min.X, Y: box.Max.Y},
	}), brush, paint.NonZero)
}

func (s *Surface) FillPath(path *paint.Path, brush image.Image, rule paint.FillRules) {
	if path == nil || path.IsEmpty() || !visible(brush) {
		return
	}
	if !path.IsFinite() {
		slog.Debug("raster.Surface.FillPath: dropping path with non-finite coordinates")
		return
	}
	if rule == paint.EvenOdd {
		slog.Debug("raster.Surface.FillPath: EvenOdd fill rule not supported, using NonZero")
	}
	s.fill(path.Elements(), brush)
}

func (s *Surface) StrokeLine(from, to math32.Vector2, pen paint.Pen) {
	s.StrokeCurve([]math32.Vector2{from, to}, 0, pen)
}

func (s *Surface) StrokeCurve(pts []math32.Vector2, tension float32, pen paint.Pen) {
	if len(pts) < 2 || !pen.IsVisible() {
		return
	}
	path := paint.NewPath().Curve(pts, tension)
	if !path.IsFinite() {
		slog.Debug("raster.Surface.StrokeCurve: dropping curve with non-finite coordinates")
		return
	}
	outline := curve.StrokePath(path.Elements(), pen.Stroke(), curve.StrokeOpts{}, s.Tolerance)
	s.fill(outline, colors.Uniform(pen.Color))
}

// visible returns whether drawing with the given brush can mark the image.
func visible(brush image.Image) bool {
	if brush == nil {
		return false
	}
	if u, ok := brush.(*image.Uniform); ok {
		return !colors.IsTransparent(u.C)
	}
	return true
}

// fill rasterizes the given path elements into the coverage mask
// and composites the brush through it onto the image, within the clip.
func (s *Surface) fill(els iter.Seq[curve.PathElement], brush image.Image) {
	clip := s.Clip()
	if clip.Empty() {
		return
	}
	b := s.image.Bounds()
	w, h := b.Dx(), b.Dy()
	s.ras.Reset(w, h)
	s.ras.DrawOp = draw.Src
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	open := false
	for el := range curve.Flatten(els, s.Tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				s.ras.ClosePath()
			}
			s.ras.MoveTo(float32(el.P0.X-ox), float32(el.P0.Y-oy))
			open = true
		case curve.LineToKind:
			s.ras.LineTo(float32(el.P0.X-ox), float32(el.P0.Y-oy))
		case curve.ClosePathKind:
			s.ras.ClosePath()
			open = false
		}
	}
	if open {
		s.ras.ClosePath()
	}
	if s.mask == nil || s.mask.Rect.Dx() != w || s.mask.Rect.Dy() != h {
		s.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	s.ras.Draw(s.mask, s.mask.Rect, image.Opaque, image.Point{})
	draw.DrawMask(s.image, clip, brush, clip.Min, s.mask, clip.Min.Sub(b.Min), draw.Over)
}
