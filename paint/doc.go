// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package paint provides the drawing surface contract used by the chart
renderers, along with the pens, fill rules and path construction that
go with it.

A [Surface] receives a small set of drawing calls: filled rectangles and
paths, stroked lines and cardinal-spline curves, and a clip stack.
The paint/raster package renders these onto an [image.RGBA], and
[Recorder] keeps them as a list of [Item]s for inspection.

Paths are stored as [curve.BezPath] values from honnef.co/go/curve,
so that stroking, dashing and flattening can be done there.
*/
package paint
