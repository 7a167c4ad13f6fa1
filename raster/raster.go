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

// Package raster computes anti-aliased pixel coverage for filled and
// stroked paths.
//
// Coverage is delivered one pixel row at a time to an [EmitFunc], which
// typically blends a colour into an image.  The rasteriser itself never
// touches pixels.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage values of pixels xMin, xMin+1, ... in row
// y.  Values range from 0 (outside) to 1 (inside).  The slice is only valid
// during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser converts paths into pixel coverage.
//
// One Rasteriser should be reused for many paths: internal buffers grow as
// needed and are kept between calls.  A Rasteriser is not safe for
// concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the device space output region, with integer coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.  Must be positive.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width.  Must be at least 1.
	MiterLimit float64

	// smallArea is the largest bounding box area, in pixels, which is
	// rasterised in one pass over two-dimensional buffers.  Larger paths
	// are processed row by row with an active edge list.
	smallArea int

	edges []edge
	box   devBox

	cover   []float32
	area    []float32
	rowUsed []bool
	active  []int

	line      []vec.Vec2 // flattened vertices of the current subpath
	polys     []vec.Vec2 // stroke outline polygons, back to back
	polyStart []int      // start of each polygon in polys
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
// The other fields are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.smallArea = smallAreaThreshold
}

// FillNonZero fills p using the nonzero winding number rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.startEdges()
	r.walk(p, r.addEdge)
	r.scan(nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.startEdges()
	r.walk(p, r.addEdge)
	r.scan(evenOdd, emit)
}

// walk flattens p and calls edge for every line segment, including the
// implicit closing segment of each subpath.
func (r *Rasteriser) walk(p path.Path, edge func(a, b vec.Vec2)) {
	var current, start vec.Vec2
	open := false
	closeSubpath := func() {
		if open && current != start {
			edge(current, start)
		}
		current = start
		open = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current, start = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			edge(current, pts[0])
			current = pts[0]
			open = true
		case path.CmdQuadTo:
			r.flattenQuad(current, pts[0], pts[1], edge)
			current = pts[1]
			open = true
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], edge)
			current = pts[2]
			open = true
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// linear applies the linear part of the CTM to v.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

// device maps a user space point to device space.
func (r *Rasteriser) device(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y + m[4], Y: m[1]*v.X + m[3]*v.Y + m[5]}
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
// The segment count is chosen so that the device space deviation stays
// below the flatness.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, edge func(a, b vec.Vec2)) {
	// deviation of the chord from the curve is |P0 - 2P1 + P2| / 4
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length() / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		edge(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the segment count.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, edge func(a, b vec.Vec2)) {
	dd1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	dd2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(dd1, dd2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		edge(prev, q)
		prev = q
	}
}

// PDF default values.
const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0
)

// Numerical thresholds.
const (
	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, of an edge which contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallAreaThreshold is the default for Rasteriser.smallArea.
	smallAreaThreshold = 65536

	// zeroLengthThreshold is the length below which stroke segments are
	// ignored.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the angle below which two
	// stroke segments are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects strokes doubling back on themselves.
	cuspCosineThreshold = -0.9999
)
