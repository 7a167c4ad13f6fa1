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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble/contour"
)

// Open contours, as found in stems and strokes drawn in a single sweep.
var openCases = []TestCase{
	{
		Name:   "stem",
		A:      open("left", pt(0, 0), pt(0, 700)),
		B:      open("right", pt(90, 0), pt(90, 700)),
		Params: params(nil),
	},
	{
		Name:   "slanted_stem",
		A:      open("left", pt(0, 0), pt(200, 700)),
		B:      open("right", pt(90, 0), pt(290, 700)),
		Params: params(nil),
	},
	{
		Name:   "chevron",
		A:      open("outer", pt(0, 0), pt(300, 600), pt(600, 0)),
		B:      open("inner", pt(100, 0), pt(300, 420), pt(500, 0)),
		Params: params(nil),
	},
	{
		Name: "arch",
		A: contour.New("outer").
			MoveTo(pt(0, 0)).
			CurveTo(pt(0, 400), pt(600, 400), pt(600, 0)).
			End(),
		B: contour.New("inner").
			MoveTo(pt(100, 0)).
			CurveTo(pt(100, 260), pt(500, 260), pt(500, 0)).
			End(),
		Params: params(nil),
	},
}

func open(id string, pts ...vec.Vec2) *contour.Contour {
	return contour.FromPolyline(id, pts, false)
}
