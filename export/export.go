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

// Package export turns generated strokes into permanent output: a layer of
// open contours, or a PDF file.
package export

import (
	"fmt"
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/contour"
	"seehuhn.de/go/scribble/glyph"
)

// DefaultLayerName is the name of the layer which receives the generated
// strokes.
const DefaultLayerName = "StrokeScribbler.drawing"

// Layer is a named set of contours.
type Layer struct {
	Name     string
	Contours []*contour.Contour
}

// NewLayer converts strokes into open contours, one per non-empty stroke.
// Each contour is named after the two contours of its group, joined by a
// hyphen.
func NewLayer(name string, strokes []glyph.GroupStroke) *Layer {
	if name == "" {
		name = DefaultLayerName
	}
	l := &Layer{Name: name}
	for _, gs := range strokes {
		if gs.Stroke.IsEmpty() {
			continue
		}
		l.Contours = append(l.Contours, contour.FromPolyline(gs.Group.A+"-"+gs.Group.B, gs.Stroke.Points, false))
	}
	return l
}

// Document describes the content of a PDF file.
type Document struct {
	Glyph   *glyph.Glyph
	Strokes []glyph.GroupStroke

	// Margin is the space around the glyph, in font units.
	Margin float64

	// Outlines selects whether the source contours are drawn.
	Outlines bool

	// Colour is the stroke colour.  The alpha channel is ignored.
	Colour stdcolor.NRGBA
}

// painter is the part of a PDF page used to draw the glyph.
type painter interface {
	pathBuilder
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	Stroke()
}

// rgb converts c to a PDF colour.
func rgb(c stdcolor.NRGBA) color.Color {
	return color.DeviceRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// WritePDF writes doc as a single page PDF file.  One PDF unit corresponds
// to one font unit.
func WritePDF(fname string, doc *Document) error {
	b := doc.Glyph.Bounds()
	paper := &pdf.Rectangle{
		URx: b.URx - b.LLx + 2*doc.Margin,
		URy: b.URy - b.LLy + 2*doc.Margin,
	}
	if paper.URx <= 0 || paper.URy <= 0 {
		return fmt.Errorf("%s: glyph %q has an empty bounding box", fname, doc.Glyph.Name)
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	page.Transform(matrix.Matrix{1, 0, 0, 1, doc.Margin - b.LLx, doc.Margin - b.LLy})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	n := draw(page, doc)

	if err := page.Close(); err != nil {
		return err
	}
	scribble.Logger().Debug("pdf written", "file", fname, "strokes", n)
	return nil
}

// draw paints the outlines and strokes of doc and returns the number of
// strokes drawn.
func draw(page painter, doc *Document) int {
	if doc.Outlines {
		page.SetStrokeColor(color.DeviceGray(0.6))
		page.SetLineWidth(1)
		for _, c := range doc.Glyph.Contours {
			if len(c.Segments) == 0 {
				continue
			}
			drawPath(page, c.Path())
			page.Stroke()
		}
	}

	page.SetStrokeColor(rgb(doc.Colour))
	n := 0
	for _, gs := range doc.Strokes {
		if gs.Stroke.IsEmpty() {
			continue
		}
		page.SetLineWidth(gs.Stroke.Width)
		drawPath(page, gs.Stroke.Path())
		page.Stroke()
		n++
	}
	return n
}

// pathBuilder is the part of a PDF content stream writer which
// constructs paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends the segments of p to the current PDF path.
func drawPath(page pathBuilder, p path.Path) {
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
