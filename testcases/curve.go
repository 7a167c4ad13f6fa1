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
	"seehuhn.de/go/scribble/contour"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "letter_o",
		A:      ellipse("outer", 300, 350, 280, 350),
		B:      ellipse("counter", 300, 350, 170, 250),
		Params: params(nil),
	},
	{
		Name:   "circles",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 200, 200),
		Params: params(nil),
	},
	{
		// the counter of the o is off-centre, as in a stressed letterform
		Name:   "letter_o_stressed",
		A:      ellipse("outer", 300, 350, 280, 350),
		B:      ellipse("counter", 330, 370, 150, 240),
		Params: params(nil),
	},
	{
		// straight edges written as cubic curves with control points on
		// the end points
		Name:   "fake_curves",
		A:      fakeCurveRect("outer", 0, 0, 500, 500),
		B:      fakeCurveRect("inner", 100, 100, 400, 400),
		Params: params(nil),
	},
	{
		Name:   "rounded_square",
		A:      rounded("outer", 0, 0, 600, 600, 150),
		B:      rounded("inner", 120, 120, 480, 480, 60),
		Params: params(nil),
	},
}

// ellipse builds a closed ellipse from four cubic arcs, starting at the
// rightmost point and running counter-clockwise.
func ellipse(id string, cx, cy, rx, ry float64) *contour.Contour {
	kx, ky := kappa*rx, kappa*ry
	return contour.New(id).
		MoveTo(pt(cx+rx, cy)).
		CurveTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CurveTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CurveTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CurveTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}

// fakeCurveRect builds a rectangle whose edges are degenerate cubic curves.
func fakeCurveRect(id string, x0, y0, x1, y1 float64) *contour.Contour {
	c := contour.New(id).MoveTo(pt(x0, y0))
	corners := []struct{ x, y float64 }{{x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
	prev := pt(x0, y0)
	for _, q := range corners {
		p := pt(q.x, q.y)
		c.CurveTo(prev, p, p)
		prev = p
	}
	return c.Close()
}

// rounded builds a rectangle with corners rounded to radius r.  Straight
// edges and corner arcs alternate.
func rounded(id string, x0, y0, x1, y1, r float64) *contour.Contour {
	k := kappa * r
	return contour.New(id).
		MoveTo(pt(x0+r, y0)).
		LineTo(pt(x1-r, y0)).
		CurveTo(pt(x1-r+k, y0), pt(x1, y0+r-k), pt(x1, y0+r)).
		LineTo(pt(x1, y1-r)).
		CurveTo(pt(x1, y1-r+k), pt(x1-r+k, y1), pt(x1-r, y1)).
		LineTo(pt(x0+r, y1)).
		CurveTo(pt(x0+r-k, y1), pt(x0, y1-r+k), pt(x0, y1-r)).
		LineTo(pt(x0, y0+r)).
		CurveTo(pt(x0, y0+r-k), pt(x0+r-k, y0), pt(x0+r, y0)).
		Close()
}
