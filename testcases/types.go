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

// Package testcases provides contour pairs for testing and demonstrating
// the scribble generator.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/contour"
	"seehuhn.de/go/scribble/glyph"
)

// TestCase is a pair of compatible contours with stroke parameters.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	A, B   *contour.Contour
	Params scribble.Params
}

// Glyph returns a glyph which holds the two contours, together with a
// registry containing the single group.
func (tc TestCase) Glyph() (*glyph.Glyph, *glyph.Registry, error) {
	g := &glyph.Glyph{
		Name:     tc.Name,
		Contours: []*contour.Contour{tc.A, tc.B},
	}
	reg := &glyph.Registry{}
	if _, err := reg.Add(g, tc.A.ID, tc.B.ID, tc.Params); err != nil {
		return nil, nil, err
	}
	return g, reg, nil
}

// All contains the test cases, grouped by category.
var All = map[string][]TestCase{
	"lines":  lineCases,
	"curves": curveCases,
	"open":   openCases,
	"params": paramCases,
}

// params returns the default parameters with the changes made by edit.
func params(edit func(p *scribble.Params)) scribble.Params {
	p := scribble.DefaultParams()
	if edit != nil {
		edit(&p)
	}
	return p
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed contour through the given vertices.
func polygon(id string, pts ...vec.Vec2) *contour.Contour {
	return contour.FromPolyline(id, pts, true)
}

// rectangle builds a closed axis-parallel rectangle, starting at the
// lower left corner and running counter-clockwise.
func rectangle(id string, x0, y0, x1, y1 float64) *contour.Contour {
	return polygon(id, pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}
