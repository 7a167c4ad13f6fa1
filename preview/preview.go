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

// Package preview draws glyph contours and their scribble strokes into an
// image.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/glyph"
	"seehuhn.de/go/scribble/raster"
)

// Options controls the appearance of a preview.
type Options struct {
	// Width and Height give the canvas size in pixels.
	Width, Height int

	// Margin is the space around the glyph, in font units.
	Margin float64

	// Stroke is the colour of the scribbles.
	Stroke color.NRGBA

	// Outline is the colour of the source contours.  Contours are not
	// drawn if Outline is fully transparent.
	Outline color.NRGBA
}

// DefaultOptions returns the settings used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Width:   600,
		Height:  600,
		Margin:  50,
		Stroke:  color.NRGBA{R: 0x1f, G: 0x3a, B: 0x93, A: 0xff},
		Outline: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	}
}

// Render draws the contours of g as hairlines and the given strokes on top,
// on a white canvas.  The glyph is scaled to fit the canvas, with the y
// axis pointing up.
func Render(g *glyph.Glyph, strokes []glyph.GroupStroke, opt Options) (*image.RGBA, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opt.Width, opt.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	ctm, scale := fit(g.Bounds(), opt)
	r := raster.NewRasteriser(rect.Rect{URx: float64(opt.Width), URy: float64(opt.Height)})

	if opt.Outline.A > 0 {
		for _, c := range g.Contours {
			r.Reset(r.Clip)
			r.CTM = ctm
			r.Width = 1 / scale
			r.Stroke(c.Path(), paint(img, opt.Outline))
		}
	}

	drawn := 0
	for _, gs := range strokes {
		if gs.Stroke.IsEmpty() {
			continue
		}
		r.Reset(r.Clip)
		r.CTM = ctm
		r.Width = gs.Stroke.Width
		r.Cap = graphics.LineCapRound
		r.Join = graphics.LineJoinRound
		r.Stroke(gs.Stroke.Path(), paint(img, opt.Stroke))
		drawn++
	}

	scribble.Logger().Debug("preview rendered",
		"glyph", g.Name, "strokes", drawn, "scale", scale)
	return img, nil
}

// fit returns a transformation which maps the bounding box b, enlarged by
// the margin, into the centre of the canvas.
func fit(b rect.Rect, opt Options) (matrix.Matrix, float64) {
	w, h := float64(opt.Width), float64(opt.Height)
	b.LLx -= opt.Margin
	b.LLy -= opt.Margin
	b.URx += opt.Margin
	b.URy += opt.Margin

	bw, bh := b.URx-b.LLx, b.URy-b.LLy
	scale := 1.0
	if bw > 0 && bh > 0 {
		scale = min(w/bw, h/bh)
	}
	dx := (w - bw*scale) / 2
	dy := (h - bh*scale) / 2

	// x' = (x - LLx)·scale + dx,  y' = h - (y - LLy)·scale - dy
	return matrix.Matrix{
		scale, 0,
		0, -scale,
		dx - b.LLx*scale, h - dy + b.LLy*scale,
	}, scale
}

// paint returns an emit function which blends col into img.
func paint(img *image.RGBA, col color.NRGBA) raster.EmitFunc {
	ca := float32(col.A) / 255
	src := [3]float32{float32(col.R), float32(col.G), float32(col.B)}
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+4*xMin:]
		for i, c := range coverage {
			a := c * ca
			px := row[4*i : 4*i+4]
			for k := range 3 {
				px[k] = uint8(float32(px[k])*(1-a) + src[k]*a + 0.5)
			}
			px[3] = uint8(float32(px[3])*(1-a) + 255*a + 0.5)
		}
	}
}

// WritePNG encodes img as a PNG file.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}
