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

import "seehuhn.de/go/scribble"

// The same ring, drawn with different stroke parameters.
var paramCases = []TestCase{
	{
		Name:   "side_b",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Side = scribble.SideB }),
	},
	{
		Name:   "offset_two",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Offset = 2 }),
	},
	{
		Name:   "offset_max",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Offset = scribble.MaxOffset }),
	},
	{
		Name:   "dense",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Distance = 8; p.Width = 1 }),
	},
	{
		Name:   "sparse_wide",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Distance = 90; p.Width = scribble.MaxWidth }),
	},
	{
		Name:   "noise_low",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Noise = 1 }),
	},
	{
		Name:   "noise_high",
		A:      ellipse("outer", 300, 300, 280, 280),
		B:      ellipse("inner", 300, 300, 180, 180),
		Params: params(func(p *scribble.Params) { p.Noise = scribble.MaxNoise }),
	},
	{
		Name: "noise_open",
		A:    open("left", pt(0, 0), pt(0, 700)),
		B:    open("right", pt(90, 0), pt(90, 700)),
		Params: params(func(p *scribble.Params) {
			p.Noise = 3
			p.Side = scribble.SideB
		}),
	},
}
