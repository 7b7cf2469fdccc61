// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots provides the Bar and Line renderers, which draw a
// series of points onto a [paint.Surface] through the axes of a
// [plot.Pane].
package plots

import (
	"cogentcore.org/chart/base/errors"
	"github.com/jinzhu/copier"
)

// clone deep copies src into dst, logging any error.
func clone[T any](dst, src *T) {
	errors.Log(copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}))
}
