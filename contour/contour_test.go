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

package contour

import (
	"errors"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestNewAllocatesID(t *testing.T) {
	a := New("")
	b := New("")
	if a.ID == "" || b.ID == "" {
		t.Fatal("empty id")
	}
	if a.ID == b.ID {
		t.Errorf("ids not unique: %q", a.ID)
	}
	if c := New("stem"); c.ID != "stem" {
		t.Errorf("got id %q, want %q", c.ID, "stem")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		c    *Contour
		ok   bool
	}{
		{"empty", New("x"), true},
		{"closed", New("x").MoveTo(pt(0, 0)).LineTo(pt(1, 0)).Close(), true},
		{"open", New("x").MoveTo(pt(0, 0)).CurveTo(pt(1, 1), pt(2, 1), pt(3, 0)).End(), true},
		{"no_move", New("x").LineTo(pt(1, 0)).Close(), false},
		{"two_moves", New("x").MoveTo(pt(0, 0)).MoveTo(pt(1, 0)).End(), false},
		{"unterminated", New("x").MoveTo(pt(0, 0)).LineTo(pt(1, 0)), false},
		{"close_in_middle", New("x").MoveTo(pt(0, 0)).Close().LineTo(pt(1, 0)).End(), false},
		{"bad_points", &Contour{ID: "x", Segments: []Segment{{Kind: MoveTo}, {Kind: End}}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrMalformed) {
				t.Errorf("got %v, want ErrMalformed", err)
			}
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	orig := New("o").
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		CurveTo(pt(15, 0), pt(20, 5), pt(20, 10)).
		Close()

	got, err := FromPath("o", orig.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsClosed() {
		t.Error("closed contour came back open")
	}
	if !Compatible(orig, got) {
		t.Fatalf("structure changed: %v", got.Segments)
	}
	for i := range orig.Segments {
		for j := range orig.Segments[i].Pts {
			if orig.Segments[i].Pts[j] != got.Segments[i].Pts[j] {
				t.Errorf("segment %d point %d: got %v, want %v",
					i, j, got.Segments[i].Pts[j], orig.Segments[i].Pts[j])
			}
		}
	}
}

func TestFromPathOpenAndQuadratic(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(30, 30), pt(60, 0))

	c, err := FromPath("q", p.Iter())
	if err != nil {
		t.Fatal(err)
	}
	if c.IsClosed() {
		t.Error("open path became closed")
	}
	if len(c.Segments) != 3 || c.Segments[1].Kind != CurveTo || c.Segments[2].Kind != End {
		t.Fatalf("unexpected segments %v", c.Segments)
	}
	want := []vec.Vec2{pt(20, 20), pt(40, 20), pt(60, 0)}
	for i, p := range c.Segments[1].Pts {
		if p.Sub(want[i]).Length() > 1e-12 {
			t.Errorf("point %d: got %v, want %v", i, p, want[i])
		}
	}
}

func TestFromPathRejectsSubpaths(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).LineTo(pt(1, 0)).Close().
		MoveTo(pt(5, 5)).LineTo(pt(6, 5)).Close()

	if _, err := FromPath("x", p.Iter()); !errors.Is(err, ErrMalformed) {
		t.Errorf("got %v, want ErrMalformed", err)
	}
}

func TestCompatible(t *testing.T) {
	a := New("a").MoveTo(pt(0, 0)).LineTo(pt(1, 0)).CurveTo(pt(1, 1), pt(2, 2), pt(3, 3)).Close()
	b := New("b").MoveTo(pt(5, 0)).LineTo(pt(6, 0)).CurveTo(pt(6, 1), pt(7, 2), pt(8, 3)).Close()
	c := New("c").MoveTo(pt(5, 0)).CurveTo(pt(6, 1), pt(7, 2), pt(8, 3)).LineTo(pt(6, 0)).Close()

	if !Compatible(a, b) {
		t.Error("a and b should be compatible")
	}
	if Compatible(a, c) {
		t.Error("a and c should not be compatible")
	}

	short := New("short").MoveTo(pt(0, 0)).LineTo(pt(1, 0)).End()
	cases := []struct {
		name string
		x, y *Contour
		want int
	}{
		{"equal", a, b, -1},
		{"kinds", a, c, 1},
		{"shorter", short, a, 2},
		{"longer", a, short, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstDifference(tc.x, tc.y); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFromPolylineAndBounds(t *testing.T) {
	c := FromPolyline("p", []vec.Vec2{pt(1, 2), pt(5, -3), pt(-2, 4)}, false)
	if c.IsClosed() {
		t.Error("polyline should be open")
	}
	if len(c.Segments) != 4 {
		t.Fatalf("got %d segments, want 4", len(c.Segments))
	}
	b := c.Bounds()
	if b.LLx != -2 || b.LLy != -3 || b.URx != 5 || b.URy != 4 {
		t.Errorf("unexpected bounds %v", b)
	}
	if New("e").Bounds().URx != 0 {
		t.Error("empty contour should have zero bounds")
	}
}
