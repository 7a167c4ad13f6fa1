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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// canvas collects coverage values for a w×h pixel grid.
type canvas struct {
	w, h int
	pix  []float32
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, pix: make([]float32, w*h)}
}

func (c *canvas) emit(y, xMin int, coverage []float32) {
	copy(c.pix[y*c.w+xMin:], coverage)
}

func (c *canvas) at(x, y int) float32 {
	return c.pix[y*c.w+x]
}

func (c *canvas) sum() float64 {
	var s float64
	for _, v := range c.pix {
		s += float64(v)
	}
	return s
}

// approaches runs f once with each of the two scan strategies.
func approaches(t *testing.T, f func(t *testing.T, r *Rasteriser)) {
	cases := []struct {
		name      string
		threshold int
	}{
		{"buffered", 1 << 30},
		{"active", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
			r.smallArea = tc.threshold
			f(t, r)
		})
	}
}

func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
	}
}

// TestTriangleCoverage checks exact coverage values for the triangle
// (0,0), (10,0), (10,1).  The diagonal edge is y = x/10, so pixel X has
// coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	approaches(t, func(t *testing.T, r *Rasteriser) {
		r.Clip = rect.Rect{URx: 10, URy: 1}
		c := newCanvas(10, 1)
		r.FillNonZero(triangle.Iter(), c.emit)

		for x := range 10 {
			want := float32(2*x+1) / 20
			if got := c.at(x, 0); math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel %d: got %.4f, want %.4f", x, got, want)
			}
		}
	})
}

func TestImplicitClose(t *testing.T) {
	open := polyline(vec.Vec2{X: 4, Y: 4}, vec.Vec2{X: 40, Y: 10}, vec.Vec2{X: 20, Y: 50})
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 40, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 50}).
		Close()

	approaches(t, func(t *testing.T, r *Rasteriser) {
		a, b := newCanvas(64, 64), newCanvas(64, 64)
		r.FillNonZero(open, a.emit)
		r.FillNonZero(closed.Iter(), b.emit)
		for i := range a.pix {
			if a.pix[i] != b.pix[i] {
				t.Fatalf("pixel %d: %g != %g", i, a.pix[i], b.pix[i])
			}
		}
		// area of the triangle is 684
		if s := a.sum(); math.Abs(s-684) > 0.01 {
			t.Errorf("total coverage %g, want 684", s)
		}
	})
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	ring := rectangle(10, 10, 54, 54)
	inner := rectangle(20, 20, 44, 44)
	ring.Cmds = append(ring.Cmds, inner.Cmds...)
	ring.Coords = append(ring.Coords, inner.Coords...)

	approaches(t, func(t *testing.T, r *Rasteriser) {
		nz, eo := newCanvas(64, 64), newCanvas(64, 64)
		r.FillNonZero(ring.Iter(), nz.emit)
		r.FillEvenOdd(ring.Iter(), eo.emit)

		if got := nz.at(32, 32); got != 1 {
			t.Errorf("nonzero: centre coverage %g, want 1", got)
		}
		if got := eo.at(32, 32); got != 0 {
			t.Errorf("even-odd: centre coverage %g, want 0", got)
		}
		for _, c := range []*canvas{nz, eo} {
			if got := c.at(15, 32); got != 1 {
				t.Errorf("ring coverage %g, want 1", got)
			}
			if got := c.at(5, 5); got != 0 {
				t.Errorf("outside coverage %g, want 0", got)
			}
		}
		if s := eo.sum(); math.Abs(s-(44*44-24*24)) > 1e-3 {
			t.Errorf("even-odd area %g", s)
		}
	})
}

func TestCTM(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.CTM = matrix.Matrix{1, 0, 0, -1, 0, 64} // y axis pointing up
	c := newCanvas(64, 64)
	r.FillNonZero(rectangle(0, 0, 10, 5).Iter(), c.emit)

	if got := c.at(5, 61); got != 1 {
		t.Errorf("got %g at the bottom, want 1", got)
	}
	if got := c.at(5, 2); got != 0 {
		t.Errorf("got %g at the top, want 0", got)
	}
	if s := c.sum(); math.Abs(s-50) > 1e-3 {
		t.Errorf("total coverage %g, want 50", s)
	}
}

func TestClip(t *testing.T) {
	r := NewRasteriser(rect.Rect{LLx: 8, LLy: 8, URx: 16, URy: 16})
	rows := 0
	r.FillNonZero(rectangle(-100, -100, 100, 100).Iter(), func(y, xMin int, coverage []float32) {
		rows++
		if y < 8 || y >= 16 || xMin != 8 || len(coverage) != 8 {
			t.Errorf("row %d: span %d+%d outside of the clip", y, xMin, len(coverage))
		}
	})
	if rows != 8 {
		t.Errorf("got %d rows, want 8", rows)
	}
}

func TestRoundCapLine(t *testing.T) {
	approaches(t, func(t *testing.T, r *Rasteriser) {
		r.Width = 8
		r.Cap = graphics.LineCapRound
		r.Flatness = 0.01
		c := newCanvas(64, 64)
		r.Stroke(polyline(vec.Vec2{X: 10, Y: 32}, vec.Vec2{X: 54, Y: 32}), c.emit)

		if got := c.at(30, 31); got != 1 {
			t.Errorf("centre coverage %g, want 1", got)
		}
		if got := c.at(30, 40); got != 0 {
			t.Errorf("coverage %g above the line, want 0", got)
		}
		if got := c.at(7, 31); got != 1 {
			t.Errorf("cap coverage %g, want 1", got)
		}
		if got := c.at(3, 31); got != 0 {
			t.Errorf("coverage %g beyond the cap, want 0", got)
		}
		want := 44*8 + math.Pi*16
		if s := c.sum(); math.Abs(s-want) > 0.5 {
			t.Errorf("total coverage %g, want %g", s, want)
		}
	})
}

func TestSquareCap(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.Width = 8
	r.Cap = graphics.LineCapSquare
	c := newCanvas(64, 64)
	r.Stroke(polyline(vec.Vec2{X: 10, Y: 32}, vec.Vec2{X: 54, Y: 32}), c.emit)
	if s := c.sum(); math.Abs(s-52*8) > 1e-3 {
		t.Errorf("total coverage %g, want %d", s, 52*8)
	}
}

func TestJoins(t *testing.T) {
	corner := polyline(vec.Vec2{X: 10, Y: 50}, vec.Vec2{X: 40, Y: 50}, vec.Vec2{X: 40, Y: 10})
	area := func(join graphics.LineJoinStyle) float64 {
		r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
		r.Width = 6
		r.Join = join
		c := newCanvas(64, 64)
		r.Stroke(corner, c.emit)
		return c.sum()
	}

	// two 6 pixel wide bars, overlapping in a 3×3 square
	const bars = 30*6 + 40*6 - 9
	miter := area(graphics.LineJoinMiter)
	round := area(graphics.LineJoinRound)
	bevel := area(graphics.LineJoinBevel)
	if math.Abs(miter-(bars+9)) > 1e-3 {
		t.Errorf("miter: got %g, want %d", miter, bars+9)
	}
	if math.Abs(bevel-(bars+4.5)) > 1e-3 {
		t.Errorf("bevel: got %g, want %g", bevel, bars+4.5)
	}
	if !(round > bevel && round < miter) {
		t.Errorf("round join area %g not between %g and %g", round, bevel, miter)
	}
}

func TestMiterLimit(t *testing.T) {
	// a very sharp corner exceeds the miter limit and is bevelled
	spike := polyline(vec.Vec2{X: 5, Y: 30}, vec.Vec2{X: 60, Y: 32}, vec.Vec2{X: 5, Y: 34})
	area := func(join graphics.LineJoinStyle) float64 {
		r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
		r.Width = 2
		r.Join = join
		c := newCanvas(64, 64)
		r.Stroke(spike, c.emit)
		return c.sum()
	}
	if m, b := area(graphics.LineJoinMiter), area(graphics.LineJoinBevel); m != b {
		t.Errorf("miter %g differs from bevel %g", m, b)
	}
}

func TestClosedStroke(t *testing.T) {
	approaches(t, func(t *testing.T, r *Rasteriser) {
		r.Width = 4
		c := newCanvas(64, 64)
		r.Stroke(rectangle(10, 10, 54, 54).Iter(), c.emit)

		if got := c.at(32, 32); got != 0 {
			t.Errorf("centre coverage %g, want 0", got)
		}
		if got := c.at(10, 32); got != 1 {
			t.Errorf("edge coverage %g, want 1", got)
		}
		if s := c.sum(); math.Abs(s-(48*48-40*40)) > 1e-3 {
			t.Errorf("total coverage %g, want %d", s, 48*48-40*40)
		}
	})
}

func TestZigzagStroke(t *testing.T) {
	var pts []vec.Vec2
	for i := range 12 {
		y := 20.0
		if i%2 == 1 {
			y = 44
		}
		pts = append(pts, vec.Vec2{X: 6 + 4.5*float64(i), Y: y})
	}
	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.Width = 3
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	c := newCanvas(64, 64)
	r.Stroke(polyline(pts...), c.emit)

	for i, v := range c.pix {
		if v < 0 || v > 1 {
			t.Fatalf("pixel %d has coverage %g", i, v)
		}
	}
	if got := c.at(int(pts[1].X), int(pts[1].Y)); got != 1 {
		t.Errorf("vertex coverage %g, want 1", got)
	}
	if got := c.at(32, 4); got != 0 {
		t.Errorf("coverage %g far from the stroke", got)
	}
}

func TestDot(t *testing.T) {
	dot := (&path.Data{}).MoveTo(vec.Vec2{X: 32, Y: 32}).LineTo(vec.Vec2{X: 32, Y: 32})
	for _, tc := range []struct {
		cap  graphics.LineCapStyle
		want float64
	}{
		{graphics.LineCapButt, 0},
		{graphics.LineCapSquare, 36},
	} {
		r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
		r.Width = 6
		r.Cap = tc.cap
		c := newCanvas(64, 64)
		r.Stroke(dot.Iter(), c.emit)
		if s := c.sum(); math.Abs(s-tc.want) > 1e-3 {
			t.Errorf("cap %v: got %g, want %g", tc.cap, s, tc.want)
		}
	}
}
