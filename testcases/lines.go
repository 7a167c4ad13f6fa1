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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble/contour"
)

var lineCases = []TestCase{
	{
		Name:   "nested_squares",
		A:      rectangle("outer", 0, 0, 500, 500),
		B:      rectangle("inner", 120, 120, 380, 380),
		Params: params(nil),
	},
	{
		Name:   "letter_o_rect",
		A:      rectangle("outer", 0, 0, 420, 700),
		B:      rectangle("counter", 110, 110, 310, 590),
		Params: params(nil),
	},
	{
		Name:   "nested_triangles",
		A:      polygon("outer", pt(0, 0), pt(600, 0), pt(300, 520)),
		B:      polygon("inner", pt(150, 90), pt(450, 90), pt(300, 350)),
		Params: params(nil),
	},
	{
		Name:   "hexagon_ring",
		A:      regular("outer", 300, 300, 280, 6),
		B:      regular("inner", 300, 300, 160, 6),
		Params: params(nil),
	},
	{
		// segment lengths differ a lot between the two contours
		Name:   "offset_squares",
		A:      rectangle("big", 0, 0, 600, 600),
		B:      rectangle("small", 380, 380, 520, 520),
		Params: params(nil),
	},
	{
		// short edges are sampled with a single step
		Name:   "thin_frame",
		A:      rectangle("outer", 0, 0, 700, 40),
		B:      rectangle("inner", 10, 10, 690, 30),
		Params: params(nil),
	},
}

// regular builds a closed regular polygon with n vertices.
func regular(id string, cx, cy, r float64, n int) *contour.Contour {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return polygon(id, pts...)
}
