// seehuhn.de/go/scribble - scribble strokes between glyph contours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package weave braids two polylines into a zigzag stroke.
package weave

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Weave interleaves the vertices of a and b.
//
// For every index i of a, the points b[i+offset] and a[i] are appended in
// this order.  Indices outside of b are skipped individually, so that a
// shorter b leaves gaps instead of ending the stroke.  If swap is set, the
// roles of a and b are exchanged before weaving.
func Weave(a, b []vec.Vec2, offset int, swap bool) []vec.Vec2 {
	if swap {
		a, b = b, a
	}

	var out []vec.Vec2
	for i, p := range a {
		j := i + offset
		if j < 0 || j >= len(b) {
			continue
		}
		out = append(out, b[j], p)
	}
	return out
}

// Path returns the points as one open subpath.
func Path(points []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range points {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, points[i:i+1]) {
				return
			}
		}
	}
}
