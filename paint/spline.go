// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "cogentcore.org/chart/math32"

// CardinalControls returns the two cubic Bézier control points of the
// cardinal spline segment running from pts[i] to pts[i+1] with the given
// tension. The neighbors beyond the ends of pts are taken to be the end
// points themselves. A tension of 0 puts the control points on the
// segment ends, giving a straight line.
func CardinalControls(pts []math32.Vector2, i int, tension float32) (c1, c2 math32.Vector2) {
	n := len(pts)
	p0 := pts[max(i-1, 0)]
	p1 := pts[i]
	p2 := pts[i+1]
	p3 := pts[min(i+2, n-1)]
	t := tension / 3
	c1 = p1.Add(p2.Sub(p0).MulScalar(t))
	c2 = p2.Sub(p3.Sub(p1).MulScalar(t))
	return
}
