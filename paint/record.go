// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"slices"

	"cogentcore.org/chart/math32"
)

// Item is a union interface for the drawing calls kept by a [Recorder].
type Item interface {
	IsRecordItem()
}

// FillRectItem records a [Surface.FillRect] call.
type FillRectItem struct {
	Box   math32.Box2
	Brush image.Image
}

// FillPathItem records a [Surface.FillPath] call.
type FillPathItem struct {
	Path  *Path
	Brush image.Image
	Rule  FillRules
}

// StrokeLineItem records a [Surface.StrokeLine] call.
type StrokeLineItem struct {
	From, To math32.Vector2
	Pen      Pen
}

// StrokeCurveItem records a [Surface.StrokeCurve] call.
type StrokeCurveItem struct {
	Points  []math32.Vector2
	Tension float32
	Pen     Pen
}

// ClipPushItem records a [Surface.PushClip] call.
type ClipPushItem struct {
	Box math32.Box2
}

// ClipPopItem records a [Surface.PopClip] call.
type ClipPopItem struct{}

func (*FillRectItem) IsRecordItem()    {}
func (*FillPathItem) IsRecordItem()    {}
func (*StrokeLineItem) IsRecordItem()  {}
func (*StrokeCurveItem) IsRecordItem() {}
func (*ClipPushItem) IsRecordItem()    {}
func (*ClipPopItem) IsRecordItem()     {}

// Recorder is a [Surface] that keeps the calls made on it as a list
// of [Item]s instead of drawing them. If Next is set, each call is
// also forwarded to it.
type Recorder struct {
	Items []Item

	// Next is an optional surface that receives every call after it is recorded.
	Next Surface
}

var _ Surface = &Recorder{}

// Reset removes all recorded items.
// It preserves the existing slice memory for re-use.
func (rc *Recorder) Reset() {
	rc.Items = rc.Items[:0]
}

func (rc *Recorder) add(it Item) {
	rc.Items = append(rc.Items, it)
}

func (rc *Recorder) FillRect(box math32.Box2, brush image.Image) {
	rc.add(&FillRectItem{Box: box, Brush: brush})
	if rc.Next != nil {
		rc.Next.FillRect(box, brush)
	}
}

func (rc *Recorder) FillPath(path *Path, brush image.Image, rule FillRules) {
	cp := &Path{BezPath: slices.Clone(path.BezPath)}
	rc.add(&FillPathItem{Path: cp, Brush: brush, Rule: rule})
	if rc.Next != nil {
		rc.Next.FillPath(path, brush, rule)
	}
}

func (rc *Recorder) StrokeLine(from, to math32.Vector2, pen Pen) {
	rc.add(&StrokeLineItem{From: from, To: to, Pen: pen})
	if rc.Next != nil {
		rc.Next.StrokeLine(from, to, pen)
	}
}

func (rc *Recorder) StrokeCurve(pts []math32.Vector2, tension float32, pen Pen) {
	rc.add(&StrokeCurveItem{Points: slices.Clone(pts), Tension: tension, Pen: pen})
	if rc.Next != nil {
		rc.Next.StrokeCurve(pts, tension, pen)
	}
}

func (rc *Recorder) PushClip(box math32.Box2) {
	rc.add(&ClipPushItem{Box: box})
	if rc.Next != nil {
		rc.Next.PushClip(box)
	}
}

func (rc *Recorder) PopClip() {
	rc.add(&ClipPopItem{})
	if rc.Next != nil {
		rc.Next.PopClip()
	}
}

// Lines returns the recorded [StrokeLineItem]s in order.
func (rc *Recorder) Lines() []*StrokeLineItem {
	return itemsOf[*StrokeLineItem](rc.Items)
}

// Curves returns the recorded [StrokeCurveItem]s in order.
func (rc *Recorder) Curves() []*StrokeCurveItem {
	return itemsOf[*StrokeCurveItem](rc.Items)
}

// Rects returns the recorded [FillRectItem]s in order.
func (rc *Recorder) Rects() []*FillRectItem {
	return itemsOf[*FillRectItem](rc.Items)
}

// Paths returns the recorded [FillPathItem]s in order.
func (rc *Recorder) Paths() []*FillPathItem {
	return itemsOf[*FillPathItem](rc.Items)
}

func itemsOf[T Item](items []Item) []T {
	var res []T
	for _, it := range items {
		if x, ok := it.(T); ok {
			res = append(res, x)
		}
	}
	return res
}
