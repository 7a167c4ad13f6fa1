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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p using Width, Cap, Join and MiterLimit.
//
// The stroke is assembled from simple pieces: one rectangle per segment,
// plus polygons for the joins and caps.  All pieces are oriented the same
// way and filled together with the nonzero rule, so that overlaps, which
// are frequent in zigzag strokes, are painted once.
func (r *Rasteriser) Stroke(p path.Path, emit EmitFunc) {
	r.polys = r.polys[:0]
	r.polyStart = r.polyStart[:0]

	r.line = r.line[:0]
	closed := false
	flush := func() {
		if len(r.line) > 0 {
			r.strokeLine(r.line, closed)
		}
		r.line = r.line[:0]
		closed = false
	}
	lineTo := func(a, b vec.Vec2) {
		if len(r.line) == 0 {
			// drawing continues after a closed subpath
			r.line = append(r.line, a)
		}
		if n := len(r.line); n > 0 && b.Sub(r.line[n-1]).Length() < zeroLengthThreshold {
			return
		}
		r.line = append(r.line, b)
	}

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			r.line = append(r.line, current)
		case path.CmdLineTo:
			lineTo(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(current, pts[0], pts[1], lineTo)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], lineTo)
			current = pts[2]
		case path.CmdClose:
			if len(r.line) > 0 {
				current = r.line[0]
				closed = true
			}
			flush()
		}
	}
	flush()

	r.startEdges()
	for i, start := range r.polyStart {
		end := len(r.polys)
		if i+1 < len(r.polyStart) {
			end = r.polyStart[i+1]
		}
		poly := r.polys[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(nonZero, emit)
}

// strokeLine adds the outline pieces for one flattened subpath.
func (r *Rasteriser) strokeLine(pts []vec.Vec2, closed bool) {
	d := r.Width / 2
	if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)

	if n == 1 {
		// zero length subpath: only round and square caps are visible
		switch r.Cap {
		case graphics.LineCapRound:
			r.disc(pts[0], d)
		case graphics.LineCapSquare:
			r.addCap(pts[0], vec.Vec2{X: 1, Y: 0}, d)
			r.addCap(pts[0], vec.Vec2{X: -1, Y: 0}, d)
		}
		return
	}
	if n == 2 {
		closed = false
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		t := unit(b.Sub(a))
		off := normal(t).Mul(d)
		r.polygon(a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		r.join(pts[i], unit(pts[i].Sub(prev)), unit(next.Sub(pts[i])), d)
	}

	if !closed {
		r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
		r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
	}
}

// join adds the corner piece at p, where the direction changes from t1
// to t2.
func (r *Rasteriser) join(p, t1, t2 vec.Vec2, d float64) {
	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.Dot(t2)
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.disc(p, d)
		return
	}

	// the outer side of a left turn is on the right
	side := 1.0
	if sin > 0 {
		side = -1
	}
	o1 := normal(t1).Mul(side * d)
	o2 := normal(t2).Mul(side * d)

	if r.Join == graphics.LineJoinMiter && cos > cuspCosineThreshold {
		cosHalf := math.Sqrt((1 + cos) / 2)
		const eps = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+eps {
			if bis := o1.Add(o2); bis.Length() > zeroLengthThreshold {
				tip := unit(bis).Mul(d / cosHalf)
				r.polygon(p, p.Add(o1), p.Add(tip), p.Add(o2))
				return
			}
		}
	}
	r.polygon(p, p.Add(o1), p.Add(o2))
}

// addCap adds the end piece at p.  The unit vector t points away from the
// stroke.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.disc(p, d)
	case graphics.LineCapSquare:
		off := normal(t).Mul(d)
		ext := p.Add(t.Mul(d))
		r.polygon(p.Add(off), ext.Add(off), ext.Sub(off), p.Sub(off))
	}
}

// disc adds a circle of radius rad around c, approximated within the
// flatness in device space.
func (r *Rasteriser) disc(c vec.Vec2, rad float64) {
	devRad := max(r.linear(vec.Vec2{X: rad}).Length(), r.linear(vec.Vec2{Y: rad}).Length())
	n := 4
	if devRad > r.Flatness {
		// the chord of angle θ deviates from the arc by rad·(1 - cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRad)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.polys)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, vec.Vec2{X: c.X + rad*math.Cos(phi), Y: c.Y + rad*math.Sin(phi)})
	}
	r.finishPolygon(start)
}

// polygon adds a polygon with the given vertices.
func (r *Rasteriser) polygon(pts ...vec.Vec2) {
	start := len(r.polys)
	r.polys = append(r.polys, pts...)
	r.finishPolygon(start)
}

// finishPolygon makes the polygon starting at polys[start] counter-clockwise
// and registers it.  Degenerate polygons are dropped.
func (r *Rasteriser) finishPolygon(start int) {
	poly := r.polys[start:]
	if len(poly) < 3 {
		r.polys = r.polys[:start]
		return
	}
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	switch {
	case a == 0:
		r.polys = r.polys[:start]
		return
	case a < 0:
		slices.Reverse(poly)
	}
	r.polyStart = append(r.polyStart, start)
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns v rotated by 90° counter-clockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
