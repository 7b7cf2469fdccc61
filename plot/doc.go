// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package plot provides the data model and collaborators shared by the
chart renderers in plot/plots: points and point lists with the Missing
sentinel, axes that map data values to pixels, the Pane that groups
them for drawing, Fill descriptors, and library-wide Settings.
*/
package plot
