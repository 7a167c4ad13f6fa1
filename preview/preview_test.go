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

package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/contour"
	"seehuhn.de/go/scribble/glyph"
)

func square(id string, x, y, side float64) *contour.Contour {
	return contour.New(id).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + side, Y: y}).
		LineTo(vec.Vec2{X: x + side, Y: y + side}).
		LineTo(vec.Vec2{X: x, Y: y + side}).
		Close()
}

func scribbled(t *testing.T) (*glyph.Glyph, []glyph.GroupStroke) {
	t.Helper()
	g := &glyph.Glyph{
		Name: "O",
		Contours: []*contour.Contour{
			square("outer", 0, 0, 400),
			square("inner", 100, 100, 200),
		},
	}
	var reg glyph.Registry
	if _, err := reg.Add(g, "outer", "inner", scribble.DefaultParams()); err != nil {
		t.Fatal(err)
	}
	res, err := g.Scribble(&reg)
	if err != nil {
		t.Fatal(err)
	}
	return g, res.Strokes
}

func TestRender(t *testing.T) {
	g, strokes := scribbled(t)
	opt := DefaultOptions()
	opt.Width, opt.Height = 200, 200
	img, err := Render(g, strokes, opt)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("got image size %v", b)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.RGBAAt(2, 2); got != white {
		t.Errorf("margin pixel is %v", got)
	}
	if got := img.RGBAAt(100, 100); got != white {
		t.Errorf("centre pixel is %v", got)
	}

	blue := 0
	for y := range 200 {
		for x := range 200 {
			c := img.RGBAAt(x, y)
			if int(c.B) > int(c.R)+40 {
				blue++
			}
		}
	}
	if blue == 0 {
		t.Error("no stroke pixels found")
	}
}

func TestRenderWithoutOutline(t *testing.T) {
	g, _ := scribbled(t)
	opt := DefaultOptions()
	opt.Width, opt.Height = 100, 100
	opt.Outline = color.NRGBA{}
	img, err := Render(g, nil, opt)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range img.Pix {
		if v != 0xff {
			t.Fatalf("byte %d is %d, want a blank canvas", i, v)
		}
	}
}

func TestRenderCanvasSize(t *testing.T) {
	g, strokes := scribbled(t)
	opt := DefaultOptions()
	opt.Width = 0
	if _, err := Render(g, strokes, opt); err == nil {
		t.Error("zero width canvas accepted")
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		name string
		box  rect.Rect
		opt  Options
		want matrix.Matrix
	}{
		{
			name: "exact",
			box:  rect.Rect{URx: 100, URy: 100},
			opt:  Options{Width: 100, Height: 100},
			want: matrix.Matrix{1, 0, 0, -1, 0, 100},
		},
		{
			name: "margin",
			box:  rect.Rect{LLx: 10, LLy: 10, URx: 90, URy: 90},
			opt:  Options{Width: 50, Height: 50, Margin: 10},
			want: matrix.Matrix{0.5, 0, 0, -0.5, 0, 50},
		},
		{
			name: "centred",
			box:  rect.Rect{URx: 100, URy: 50},
			opt:  Options{Width: 100, Height: 100},
			want: matrix.Matrix{1, 0, 0, -1, 0, 75},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := fit(tc.box, tc.opt)
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	g, strokes := scribbled(t)
	opt := DefaultOptions()
	opt.Width, opt.Height = 64, 48
	img, err := Render(g, strokes, opt)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := WritePNG(buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded size %v", b)
	}
}
